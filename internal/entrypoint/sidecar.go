package entrypoint

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/biogrid/internal/ctxlog"
	"github.com/vk/biogrid/internal/fsutil"
	"github.com/vk/biogrid/internal/model"
)

// sidecarFile is the on-disk shape of a YAML signature sidecar. Artifacts
// that live outside the binary (e.g. models packaged for an external
// runtime) declare their callable surface this way.
type sidecarFile struct {
	Params  []string `yaml:"params"`
	Outputs []string `yaml:"outputs"`
}

// resolveSidecar reads the signature sidecar referenced by the manifest,
// resolved relative to the manifest file itself.
func resolveSidecar(ctx context.Context, m *model.ModelManifest) (*Signature, error) {
	logger := ctxlog.FromContext(ctx)
	path := fsutil.ResolveSibling(m.FSInformation.FilePath, m.Entrypoint.SignatureFile)
	logger.Debug("Resolving sidecar signature file.", "manifest", m.Name, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ResolutionError{Kind: NotFound, Ref: path, Err: err}
		}
		return nil, &ResolutionError{Kind: IntrospectionFailed, Ref: path, Err: err}
	}

	var sidecar sidecarFile
	if err := yaml.Unmarshal(data, &sidecar); err != nil {
		return nil, &ResolutionError{Kind: IntrospectionFailed, Ref: path, Err: fmt.Errorf("invalid signature file: %w", err)}
	}

	if len(sidecar.Params) == 0 && len(sidecar.Outputs) == 0 {
		return nil, &ResolutionError{Kind: NotCallable, Ref: path, Err: fmt.Errorf("signature file declares neither params nor outputs")}
	}

	return &Signature{
		Params:  sidecar.Params,
		Outputs: sidecar.Outputs,
	}, nil
}
