// Package validate implements schema validation of monitor manifests.
//
// All per-manifest checks are pure and independent, so they fan out over a
// bounded worker pool. The one cross-manifest rule, identifier uniqueness,
// runs as a sequential post-pass over results sorted lexicographically by
// identifier, so duplicate detection is reproducible regardless of the order
// manifests were discovered in.
package validate

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vk/biogrid/internal/ctxlog"
	"github.com/vk/biogrid/internal/model"
)

// Result records the outcome of validating one manifest.
type Result struct {
	Manifest    *model.ModelManifest
	Status      model.Status
	Diagnostics []model.Diagnostic
}

// Manifests validates every manifest and returns one Result per manifest,
// sorted lexicographically by identifier. A manifest with any error-severity
// diagnostic ends in StatusSchemaInvalid; warnings alone leave it
// StatusSchemaValid. No failure here aborts the batch.
func Manifests(ctx context.Context, manifests []*model.ModelManifest, workers int) []Result {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(manifests))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range manifests {
		i, m := i, m
		g.Go(func() error {
			results[i] = Result{
				Manifest:    m,
				Status:      model.StatusPending,
				Diagnostics: checkManifest(m),
			}
			return nil
		})
	}
	// Workers only write their own slot and never return errors.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Manifest.Name != results[j].Manifest.Name {
			return results[i].Manifest.Name < results[j].Manifest.Name
		}
		return results[i].Manifest.FSInformation.FilePath < results[j].Manifest.FSInformation.FilePath
	})

	flagDuplicateIdentifiers(results)

	for i := range results {
		if model.HasErrors(results[i].Diagnostics) {
			results[i].Status = model.StatusSchemaInvalid
		} else {
			results[i].Status = model.StatusSchemaValid
		}
	}

	logger.Debug("Manifest validation finished.", "manifests", len(results))
	return results
}

// SchemaValid filters validation results down to the manifests the
// entrypoint checker may consume.
func SchemaValid(results []Result) []*model.ModelManifest {
	var manifests []*model.ModelManifest
	for _, res := range results {
		if res.Status == model.StatusSchemaValid {
			manifests = append(manifests, res.Manifest)
		}
	}
	return manifests
}

// checkManifest runs all order-independent, single-manifest checks.
func checkManifest(m *model.ModelManifest) []model.Diagnostic {
	var diags []model.Diagnostic

	if m.Name == "" {
		diags = append(diags, model.Errorf(m.Name, "", "identifier must not be empty"))
	} else if !model.ValidManifestName(m.Name) {
		diags = append(diags, model.Errorf(m.Name, "", "identifier %q is not kebab-case", m.Name))
	}

	if len(m.Inputs) == 0 {
		diags = append(diags, model.Errorf(m.Name, "input", "manifest must declare at least one input port"))
	}
	if len(m.Outputs) == 0 {
		diags = append(diags, model.Errorf(m.Name, "output", "manifest must declare at least one output port"))
	}

	diags = append(diags, checkPorts(m.Name, m.Inputs, "input")...)
	diags = append(diags, checkPorts(m.Name, m.Outputs, "output")...)

	for _, viz := range m.Visualizations {
		if !model.KnownVisualizationKind(viz.Kind) {
			diags = append(diags, model.Errorf(m.Name, "visualization",
				"unknown visualization kind %q: allowed kinds are %v", viz.Kind, model.AllowedVisualizationKinds()))
		}
	}

	return diags
}

// checkPorts enforces identifier-safe names and per-direction uniqueness.
// Each offending name is reported exactly once no matter how often it repeats.
func checkPorts(manifest string, ports []model.Port, direction string) []model.Diagnostic {
	var diags []model.Diagnostic
	seen := make(map[string]bool, len(ports))
	flagged := make(map[string]bool)

	for _, port := range ports {
		if !model.ValidPortName(port.Name) {
			diags = append(diags, model.Errorf(manifest, direction+"."+port.Name,
				"port name %q is not identifier-safe", port.Name))
		}
		if seen[port.Name] && !flagged[port.Name] {
			diags = append(diags, model.Errorf(manifest, direction+"."+port.Name,
				"duplicate port name %q in %s ports", port.Name, direction))
			flagged[port.Name] = true
		}
		seen[port.Name] = true
	}

	return diags
}

// flagDuplicateIdentifiers emits exactly one "duplicate identifier" error
// per colliding identifier, attributed to the lexicographically-later
// manifest. Results must already be sorted by identifier.
func flagDuplicateIdentifiers(results []Result) {
	seen := make(map[string]bool, len(results))
	flagged := make(map[string]bool)

	for i := range results {
		name := results[i].Manifest.Name
		if name == "" {
			continue
		}
		if seen[name] && !flagged[name] {
			results[i].Diagnostics = append(results[i].Diagnostics,
				model.Errorf(name, "", "duplicate identifier %q: identifiers must be unique across the registry", name))
			flagged[name] = true
		}
		seen[name] = true
	}
}
