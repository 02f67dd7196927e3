// Package statemetrics declares the interface surface of the
// observability-state-metrics-monitor model: descriptive metrics (count,
// mean, min, max) over up to four state streams. Execution happens in the
// external biosim runtime; only the signature is registered here.
package statemetrics

import (
	"reflect"

	"github.com/vk/biogrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input declares the monitor's parameter surface.
type Input struct {
	StateA map[string]any `bio:"state_a"`
	StateB map[string]any `bio:"state_b"`
	StateC map[string]any `bio:"state_c"`
	StateD map[string]any `bio:"state_d"`
}

// Output declares the monitor's output surface: per-stream descriptive
// metrics keyed by stream name.
type Output struct {
	Metrics map[string]any `bio:"metrics"`
}

// Register registers the signature surface with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMonitor("StateMetricsMonitor", &registry.RegisteredMonitor{
		NewInput:   func() any { return new(Input) },
		NewOutput:  func() any { return new(Output) },
		InputType:  reflect.TypeOf(Input{}),
		OutputType: reflect.TypeOf(Output{}),
	})
}
