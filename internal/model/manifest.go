// SPDX-License-Identifier: MIT
//
// This file defines the ModelManifest, the declarative contract of one
// monitor model, and the logic for parsing `monitor` blocks from HCL.
//
// Why parse field by field instead of decoding the whole block at once?
//
// Manifests arrive from disk with no schema guarantees, so every required
// field is checked individually against an explicit body schema before the
// typed entity is constructed. A manifest with a broken required field is
// rejected at the edge with a precise field path, while the remaining
// manifests in the same file continue to parse. Optional fields that are
// present but ill-typed only warn; they never block downstream checking.
package model

import (
	"context"
	"regexp"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/biogrid/internal/ctxlog"
)

// EntrypointRef points at the implementation artifact a manifest claims to
// be backed by. Handler names a monitor handler registered in the binary;
// SignatureFile points at a YAML sidecar declaring the callable's signature,
// relative to the manifest file. At least one must be set.
type EntrypointRef struct {
	Handler       string
	SignatureFile string
}

// ModelManifest is the format-agnostic representation of one monitor model's
// manifest. Instances are immutable after parse.
type ModelManifest struct {
	// Name is the registry-wide unique identifier, taken from the block label.
	Name string

	// Category groups related monitors, e.g. "observability".
	Category string

	// Description is an optional human-readable summary.
	Description string

	// Inputs and Outputs are the declared ports, in declaration order.
	Inputs  []Port
	Outputs []Port

	// Visualizations are the render kinds the monitor promises to emit.
	Visualizations []VisualizationSpec

	// Entrypoint references the implementation artifact.
	Entrypoint EntrypointRef

	FSInformation *FSInfo
}

var manifestNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidManifestName reports whether the identifier is kebab-case: lowercase
// alphanumeric segments separated by single hyphens, starting with a letter.
func ValidManifestName(name string) bool {
	return manifestNamePattern.MatchString(name)
}

// monitorRootSchema defines the top-level structure of a manifest file,
// expecting one or more 'monitor' blocks.
type monitorRootSchema struct {
	Monitors []*hclMonitor `hcl:"monitor,block"`
}

// hclMonitor represents a single 'monitor' block for decoding purposes.
type hclMonitor struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// monitorBodySchema defines the known content of a 'monitor' block body.
var monitorBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "category"},
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "entrypoint"},
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
		{Type: "visualization", LabelNames: []string{"kind"}},
	},
}

// entrypointBodySchema defines the content of an 'entrypoint' block body.
var entrypointBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "handler"},
		{Name: "signature_file"},
	},
}

// ParseMonitorFile decodes an HCL file that contains one or more 'monitor'
// blocks. A monitor with a broken required field is excluded and reported;
// the rest of the file still parses. Unknown attributes and blocks inside a
// monitor body are reported as warnings and ignored.
func ParseMonitorFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*ModelManifest, []Diagnostic) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing monitor manifests from file", "file_path", filePath)

	var allDiags []Diagnostic
	if hclFile == nil {
		return nil, []Diagnostic{Errorf("", filePath, "HCL file is nil")}
	}

	schema := &monitorRootSchema{}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, schema); diags.HasErrors() {
		// The file structure itself is broken; nothing in it is usable.
		return nil, []Diagnostic{Errorf("", filePath, "malformed manifest file: %s", diags.Error())}
	}

	manifests := make([]*ModelManifest, 0, len(schema.Monitors))

	for _, parsedMonitor := range schema.Monitors {
		manifest, diags := parseMonitorBlock(parsedMonitor, filePath)
		allDiags = append(allDiags, diags...)
		if manifest != nil {
			manifests = append(manifests, manifest)
		}
	}

	logger.Debug("Parsed monitor manifests", "file_path", filePath, "count", len(manifests), "diagnostics", len(allDiags))
	return manifests, allDiags
}

// parseMonitorBlock decodes the body of a single 'monitor' block. It returns
// nil when any error-severity diagnostic was produced for the block.
func parseMonitorBlock(parsedMonitor *hclMonitor, filePath string) (*ModelManifest, []Diagnostic) {
	name := parsedMonitor.Name
	var diags []Diagnostic

	bodyContent, _, contentDiags := parsedMonitor.Body.PartialContent(monitorBodySchema)
	if contentDiags.HasErrors() {
		diags = append(diags, Errorf(name, "", "malformed monitor block: %s", contentDiags.Error()))
		return nil, diags
	}

	diags = append(diags, warnUnknownContent(name, parsedMonitor.Body)...)

	manifest := &ModelManifest{
		Name:          name,
		FSInformation: NewFSInfo(filePath),
	}

	// Required: category.
	if attr, exists := bodyContent.Attributes["category"]; exists {
		if evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &manifest.Category); evalDiags.HasErrors() {
			diags = append(diags, Errorf(name, "category", "category must be a string"))
		}
	} else {
		diags = append(diags, Errorf(name, "category", "missing required 'category' attribute"))
	}

	// Optional: description. Wrong type downgrades to a warning.
	if attr, exists := bodyContent.Attributes["description"]; exists {
		if evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &manifest.Description); evalDiags.HasErrors() {
			diags = append(diags, Warnf(name, "description", "description is not a string and was ignored"))
		}
	}

	var entrypointDiags []Diagnostic
	manifest.Entrypoint, entrypointDiags = parseEntrypoint(name, bodyContent.Blocks)
	diags = append(diags, entrypointDiags...)

	var inputDiags []Diagnostic
	manifest.Inputs, inputDiags = parsePorts(name, bodyContent.Blocks, "input")
	diags = append(diags, inputDiags...)

	var outputDiags []Diagnostic
	manifest.Outputs, outputDiags = parsePorts(name, bodyContent.Blocks, "output")
	diags = append(diags, outputDiags...)

	var vizDiags []Diagnostic
	manifest.Visualizations, vizDiags = parseVisualizations(name, bodyContent.Blocks)
	diags = append(diags, vizDiags...)

	if HasErrors(diags) {
		return nil, diags
	}
	return manifest, diags
}

// parseEntrypoint decodes the single required 'entrypoint' block.
func parseEntrypoint(manifest string, blocks hcl.Blocks) (EntrypointRef, []Diagnostic) {
	var ref EntrypointRef
	var diags []Diagnostic

	entrypointBlocks := blocks.OfType("entrypoint")
	switch len(entrypointBlocks) {
	case 0:
		diags = append(diags, Errorf(manifest, "entrypoint", "missing required 'entrypoint' block"))
		return ref, diags
	case 1:
		// ok
	default:
		diags = append(diags, Errorf(manifest, "entrypoint", "only one 'entrypoint' block is allowed, found %d", len(entrypointBlocks)))
		return ref, diags
	}

	bodyContent, contentDiags := entrypointBlocks[0].Body.Content(entrypointBodySchema)
	if contentDiags.HasErrors() {
		diags = append(diags, Errorf(manifest, "entrypoint", "malformed entrypoint block: %s", contentDiags.Error()))
		return ref, diags
	}

	if attr, exists := bodyContent.Attributes["handler"]; exists {
		if evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &ref.Handler); evalDiags.HasErrors() {
			diags = append(diags, Errorf(manifest, "entrypoint.handler", "handler must be a string"))
		}
	}
	if attr, exists := bodyContent.Attributes["signature_file"]; exists {
		if evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &ref.SignatureFile); evalDiags.HasErrors() {
			diags = append(diags, Errorf(manifest, "entrypoint.signature_file", "signature_file must be a string"))
		}
	}

	if ref.Handler == "" && ref.SignatureFile == "" {
		diags = append(diags, Errorf(manifest, "entrypoint", "entrypoint must set 'handler' or 'signature_file'"))
	}

	return ref, diags
}

// warnUnknownContent reports attributes and blocks that are not part of the
// monitor schema. Unknown fields are tolerated by design choice: they warn
// and are ignored, so a manifest written for a newer registry still checks.
func warnUnknownContent(manifest string, body hcl.Body) []Diagnostic {
	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}

	knownAttrs := map[string]bool{"category": true, "description": true}
	knownBlocks := map[string]bool{"entrypoint": true, "input": true, "output": true, "visualization": true}

	var names []string
	for name := range syntaxBody.Attributes {
		if !knownAttrs[name] {
			names = append(names, "attribute "+name)
		}
	}
	for _, block := range syntaxBody.Blocks {
		if !knownBlocks[block.Type] {
			names = append(names, "block "+block.Type)
		}
	}
	sort.Strings(names)

	diags := make([]Diagnostic, 0, len(names))
	for _, n := range names {
		diags = append(diags, Warnf(manifest, "", "unknown %s ignored", n))
	}
	return diags
}
