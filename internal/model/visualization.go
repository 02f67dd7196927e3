package model

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// VisualizationKind identifies one of the registry-wide allowed render kinds.
type VisualizationKind = string

const (
	VisualizationTimeseries VisualizationKind = "timeseries"
	VisualizationTable      VisualizationKind = "table"
	VisualizationScalar     VisualizationKind = "scalar"
)

// AllowedVisualizationKinds returns the registry-wide allowed set, in stable
// order for messages.
func AllowedVisualizationKinds() []VisualizationKind {
	return []VisualizationKind{VisualizationScalar, VisualizationTable, VisualizationTimeseries}
}

// KnownVisualizationKind reports whether the kind is in the allowed set.
// Membership is enforced by the schema validator, not at parse time, so the
// offending value survives into the diagnostic.
func KnownVisualizationKind(kind string) bool {
	switch kind {
	case VisualizationTimeseries, VisualizationTable, VisualizationScalar:
		return true
	default:
		return false
	}
}

// VisualizationSpec is one visualization a monitor promises to emit. Hints
// are opaque to the registry and passed through to the renderer untouched.
type VisualizationSpec struct {
	Kind  string
	Hints map[string]cty.Value
}

// visualizationBodySchema is the HCL schema for the body of a `visualization` block.
var visualizationBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "hints"},
	},
}

// parseVisualizations decodes all `visualization` blocks from a monitor's
// body content, preserving declaration order. Hints are optional; a hints
// attribute that is not an object only warns and is dropped.
func parseVisualizations(manifest string, blocks hcl.Blocks) ([]VisualizationSpec, []Diagnostic) {
	var diags []Diagnostic
	var specs []VisualizationSpec

	for _, block := range blocks.OfType("visualization") {
		kind := block.Labels[0]
		fieldPath := fmt.Sprintf("visualization.%s", kind)

		bodyContent, contentDiags := block.Body.Content(visualizationBodySchema)
		if contentDiags.HasErrors() {
			diags = append(diags, Errorf(manifest, fieldPath, "malformed visualization block: %s", contentDiags.Error()))
			continue
		}

		spec := VisualizationSpec{Kind: kind}
		if hintsAttr, exists := bodyContent.Attributes["hints"]; exists {
			// Hints must be literal values; no eval context is provided.
			val, valDiags := hintsAttr.Expr.Value(nil)
			if valDiags.HasErrors() || !val.Type().IsObjectType() && !val.Type().IsMapType() {
				diags = append(diags, Warnf(manifest, fieldPath+".hints",
					"hints must be an object of literal values and were ignored"))
			} else {
				spec.Hints = val.AsValueMap()
			}
		}

		specs = append(specs, spec)
	}

	return specs, diags
}

// HintKeys returns the hint keys in sorted order. Useful for deterministic
// logging and tests; hint values themselves stay opaque.
func (v VisualizationSpec) HintKeys() []string {
	keys := make([]string, 0, len(v.Hints))
	for k := range v.Hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
