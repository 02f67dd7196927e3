package app

import (
	"context"

	"github.com/vk/biogrid/internal/ctxlog"
	"github.com/vk/biogrid/internal/entrypoint"
	"github.com/vk/biogrid/internal/model"
	"github.com/vk/biogrid/internal/report"
	"github.com/vk/biogrid/internal/validate"
)

// ValidateManifests runs the loader and schema validator over every
// discovered manifest and returns the combined report. Only a discovery
// failure on the root path is returned as an error; everything else is a
// diagnostic inside the report.
func (a *App) ValidateManifests(ctx context.Context) (*report.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Validate phase started.", "manifests_path", a.config.ManifestsPath)

	loadDiags, err := a.registry.LoadManifests(ctx, a.config.ManifestsPath)
	if err != nil {
		return nil, err
	}

	results := validate.Manifests(ctx, a.registry.Manifests(), a.config.Workers)

	diags := append([]model.Diagnostic{}, loadDiags...)
	for _, res := range results {
		diags = append(diags, res.Diagnostics...)
	}

	a.logger.Info("Validate phase finished.",
		"manifests", len(results), "diagnostics", len(diags))
	return report.New(diags), nil
}

// CheckEntrypoints runs the schema validation phase first, then resolves
// and checks the entrypoints of every schema-valid manifest. The returned
// report carries checker diagnostics only; schema findings belong to the
// validate-manifests report.
func (a *App) CheckEntrypoints(ctx context.Context) (*report.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Check phase started.", "manifests_path", a.config.ManifestsPath)

	loadDiags, err := a.registry.LoadManifests(ctx, a.config.ManifestsPath)
	if err != nil {
		return nil, err
	}

	results := validate.Manifests(ctx, a.registry.Manifests(), a.config.Workers)
	passing := validate.SchemaValid(results)
	if skipped := len(results) - len(passing); skipped > 0 || len(loadDiags) > 0 {
		a.logger.Warn("Schema-invalid manifests skipped by the entrypoint checker.",
			"skipped", skipped, "load_diagnostics", len(loadDiags))
	}

	resolver := entrypoint.NewIntrospector(a.registry)
	checkResults := entrypoint.CheckAll(ctx, resolver, passing, a.config.Workers)

	var diags []model.Diagnostic
	for _, res := range checkResults {
		diags = append(diags, res.Diagnostics...)
	}

	a.logger.Info("Check phase finished.",
		"manifests_checked", len(checkResults), "diagnostics", len(diags))
	return report.New(diags), nil
}
