package entrypoint

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vk/biogrid/internal/ctxlog"
	"github.com/vk/biogrid/internal/model"
)

// Check verifies a bijection between the manifest's port names and the
// signature's parameter/output names. Declaration order on either side is
// irrelevant; only set equality of names counts. Every individual mismatch
// is reported. When the resolver supplied parameter types, incompatibility
// with the declared port type is a warning, never an error.
func Check(m *model.ModelManifest, sig *Signature) []model.Diagnostic {
	var diags []model.Diagnostic
	diags = append(diags, checkNames(m, m.Inputs, sig.Params, "parameter")...)
	diags = append(diags, checkNames(m, m.Outputs, sig.Outputs, "output")...)
	diags = append(diags, checkParamTypes(m, sig)...)
	return diags
}

// checkNames reports, for one direction, every port with no matching
// signature entry and every signature entry with no matching port. surface
// names the implementation side: "parameter" for inputs, "output" for outputs.
func checkNames(m *model.ModelManifest, ports []model.Port, sigNames []string, surface string) []model.Diagnostic {
	var diags []model.Diagnostic

	declared := make(map[string]bool, len(ports))
	for _, port := range ports {
		declared[port.Name] = true
	}
	provided := make(map[string]bool, len(sigNames))
	for _, name := range sigNames {
		provided[name] = true
	}

	// Ports in manifest declaration order.
	for _, port := range ports {
		if !provided[port.Name] {
			diags = append(diags, model.Errorf(m.Name, "entrypoint",
				"missing %s for port %s", surface, port.Name))
		}
	}

	// Extra signature entries in sorted order, so reports are stable
	// whatever order introspection yielded them in.
	var extras []string
	for name := range provided {
		if !declared[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		diags = append(diags, model.Errorf(m.Name, "entrypoint",
			"undeclared %s %s: implementation surface must be fully declared", surface, name))
	}

	return diags
}

// checkParamTypes emits warnings for input ports whose declared type tag is
// incompatible with the implementation's implied type. State ports are
// dynamically typed and exempt.
func checkParamTypes(m *model.ModelManifest, sig *Signature) []model.Diagnostic {
	if sig.ParamTypes == nil {
		return nil
	}

	var diags []model.Diagnostic
	for _, port := range m.Inputs {
		if port.Type == model.PortTypeState {
			continue
		}
		declared := port.Type.CtyType()
		implied, ok := sig.ParamTypes[port.Name]
		if !ok {
			continue
		}
		if !declared.Equals(implied) {
			diags = append(diags, model.Warnf(m.Name, "input."+port.Name,
				"declared type '%s' does not match implementation type '%s'",
				declared.FriendlyName(), implied.FriendlyName()))
		}
	}
	return diags
}

// Result records the outcome of checking one schema-valid manifest.
type Result struct {
	Manifest    *model.ModelManifest
	Status      model.Status
	Diagnostics []model.Diagnostic
}

// CheckAll resolves and checks every manifest on a bounded worker pool and
// returns one Result per manifest, sorted lexicographically by identifier.
// Resolution failures become error diagnostics; nothing here aborts the run.
func CheckAll(ctx context.Context, resolver Resolver, manifests []*model.ModelManifest, workers int) []Result {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(manifests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range manifests {
		i, m := i, m
		g.Go(func() error {
			res := Result{Manifest: m, Status: model.StatusPending}

			sig, err := resolver.Resolve(gctx, m)
			if err != nil {
				res.Diagnostics = []model.Diagnostic{ResolutionDiagnostic(m, err)}
			} else {
				res.Diagnostics = Check(m, sig)
			}

			if model.HasErrors(res.Diagnostics) {
				res.Status = model.StatusEntrypointInvalid
			} else {
				res.Status = model.StatusEntrypointValid
			}

			results[i] = res
			return nil
		})
	}
	// Workers only write their own slot and never return errors.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Manifest.Name < results[j].Manifest.Name
	})

	logger.Debug("Entrypoint check finished.", "manifests", len(results))
	return results
}
