// Package entrypoint locates the implementation artifact a manifest
// references and verifies that the artifact's callable signature matches the
// manifest's declared ports.
//
// The core never depends on how introspection works, only on its contract: a
// Resolver turns a manifest's entrypoint reference into the ordered parameter
// and output names of the real callable. Two resolvers exist: one introspects
// monitor handlers compiled into the binary via struct tags, the other reads
// a YAML sidecar signature file declared next to the manifest.
package entrypoint

import (
	"context"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/biogrid/internal/model"
	"github.com/vk/biogrid/internal/registry"
)

// Signature is the callable surface discovered from an implementation
// artifact: parameter names and output names, in the artifact's own order.
type Signature struct {
	Params  []string
	Outputs []string

	// ParamTypes optionally maps parameter names to their implied cty types,
	// enabling the supplementary type-compatibility warnings. Resolvers that
	// cannot determine types leave it nil.
	ParamTypes map[string]cty.Type
}

// ErrorKind classifies why an entrypoint could not be resolved.
type ErrorKind int

const (
	// NotFound: the referenced artifact does not exist.
	NotFound ErrorKind = iota
	// NotCallable: the artifact exists but exposes no invocable signature.
	NotCallable
	// IntrospectionFailed: the artifact exists but its signature could not
	// be statically determined.
	IntrospectionFailed
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case NotCallable:
		return "not-callable"
	case IntrospectionFailed:
		return "introspection-failed"
	default:
		return "unknown"
	}
}

// ResolutionError reports a failure to resolve a manifest's entrypoint. It
// is per-manifest: the checker downgrades it to an error diagnostic and the
// run continues.
type ResolutionError struct {
	Kind ErrorKind
	Ref  string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Ref, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolver resolves a manifest's entrypoint reference into the signature of
// the real implementation artifact.
type Resolver interface {
	Resolve(ctx context.Context, m *model.ModelManifest) (*Signature, error)
}

// Introspector is the default Resolver. It prefers the in-binary handler
// table and falls back to the sidecar signature file when the manifest
// declares one and no handler is registered under the referenced name.
type Introspector struct {
	reg *registry.Registry
}

// NewIntrospector builds the default resolver over the given registry.
func NewIntrospector(reg *registry.Registry) *Introspector {
	return &Introspector{reg: reg}
}

// Resolve implements Resolver.
func (in *Introspector) Resolve(ctx context.Context, m *model.ModelManifest) (*Signature, error) {
	ref := m.Entrypoint
	if ref.Handler != "" {
		sig, err := in.resolveHandler(m)
		var rerr *ResolutionError
		if err != nil && ref.SignatureFile != "" && errors.As(err, &rerr) && rerr.Kind == NotFound {
			return resolveSidecar(ctx, m)
		}
		return sig, err
	}
	return resolveSidecar(ctx, m)
}

// ResolutionDiagnostic converts a resolution failure into the error
// diagnostic surfaced in the report.
func ResolutionDiagnostic(m *model.ModelManifest, err error) model.Diagnostic {
	return model.Errorf(m.Name, "entrypoint", "entrypoint unreachable: %v", err)
}
