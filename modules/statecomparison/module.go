// Package statecomparison declares the interface surface of the
// observability-state-comparison-monitor model. The monitor itself runs in
// the external biosim runtime; this package only registers the signature the
// registry cross-checks against the model's manifest.
package statecomparison

import (
	"reflect"

	"github.com/vk/biogrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input declares the monitor's parameter surface: up to four incoming state
// streams, each an opaque snapshot the runtime projects to scalars.
type Input struct {
	StateA map[string]any `bio:"state_a"`
	StateB map[string]any `bio:"state_b"`
	StateC map[string]any `bio:"state_c"`
	StateD map[string]any `bio:"state_d"`
}

// Output declares the monitor's output surface: a comparison summary with
// the latest scalar per stream and the pairwise deltas between streams.
type Output struct {
	ComparisonState map[string]any `bio:"comparison_state"`
}

// Register registers the signature surface with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMonitor("StateComparisonMonitor", &registry.RegisteredMonitor{
		NewInput:   func() any { return new(Input) },
		NewOutput:  func() any { return new(Output) },
		InputType:  reflect.TypeOf(Input{}),
		OutputType: reflect.TypeOf(Output{}),
	})
}
