package testutil

import (
	"reflect"

	"github.com/vk/biogrid/internal/registry"
)

// NoopModule registers no handlers. It keeps the app from falling back to
// the bundled core modules when a test wants a truly empty registry.
type NoopModule struct{}

// Register implements registry.Module.
func (m *NoopModule) Register(r *registry.Registry) {}

// MonitorModule registers a single monitor handler under Name whose
// signature surface is taken from the Input and Output struct values.
type MonitorModule struct {
	Name   string
	Input  any
	Output any
}

// Register implements registry.Module. A nil Input or Output leaves the
// corresponding type unset, which lets tests exercise not-callable handlers.
func (m *MonitorModule) Register(r *registry.Registry) {
	handler := &registry.RegisteredMonitor{}
	if m.Input != nil {
		inputType := reflect.TypeOf(m.Input)
		handler.NewInput = func() any { return reflect.New(inputType).Interface() }
		handler.InputType = inputType
	}
	if m.Output != nil {
		outputType := reflect.TypeOf(m.Output)
		handler.NewOutput = func() any { return reflect.New(outputType).Interface() }
		handler.OutputType = outputType
	}
	r.RegisterMonitor(m.Name, handler)
}
