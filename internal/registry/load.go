package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/biogrid/internal/ctxlog"
	"github.com/vk/biogrid/internal/fsutil"
	"github.com/vk/biogrid/internal/model"
)

// DiscoveryError is fatal: the manifest root itself could not be read. It is
// the only failure that aborts a run instead of becoming a diagnostic.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("manifest discovery failed for %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// LoadManifests discovers every .hcl manifest file under rootPath and parses
// its monitor blocks into the registry. Per-file and per-manifest failures
// are downgraded to diagnostics and the load continues; only an unreadable
// root is fatal.
func (r *Registry) LoadManifests(ctx context.Context, rootPath string) ([]model.Diagnostic, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading manifests from path...", "path", rootPath)

	filePaths, err := fsutil.FindFilesByExtension(rootPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory", "path", rootPath, "error", err)
		return nil, &DiscoveryError{Path: rootPath, Err: err}
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", rootPath)
		return nil, nil
	}

	logger.Debug("Found manifest files to load", "files", filePaths)

	parser := hclparse.NewParser()
	var diags []model.Diagnostic

	for _, filePath := range filePaths {
		hclFile, parseDiags := parser.ParseHCLFile(filePath)
		if parseDiags.HasErrors() {
			// Syntax-broken file: report it, skip its manifests, keep going.
			diags = append(diags, model.Errorf("", filePath, "unparseable manifest file: %s", parseDiags.Error()))
			continue
		}

		manifests, fileDiags := model.ParseMonitorFile(ctx, hclFile, filePath)
		diags = append(diags, fileDiags...)
		r.manifests = append(r.manifests, manifests...)
		logger.Debug("Loaded manifests from file", "file", filePath, "count", len(manifests))
	}

	logger.Info("Registry loaded.", "manifests_loaded", len(r.manifests), "load_diagnostics", len(diags))
	return diags, nil
}
