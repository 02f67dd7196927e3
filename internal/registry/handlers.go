package registry

import (
	"fmt"
	"log/slog"
	"reflect"
)

// RegisteredMonitor holds the compiled Go surface of a monitor
// implementation: constructors and reflect types for the structs whose
// tagged fields declare the callable's parameter and output names. The
// registry never invokes the implementation; it only introspects it.
type RegisteredMonitor struct {
	NewInput   func() any
	NewOutput  func() any
	InputType  reflect.Type
	OutputType reflect.Type
}

// RegisterMonitor registers the Go signature surface for a monitor handler.
func (r *Registry) RegisterMonitor(name string, handler *RegisteredMonitor) {
	if _, exists := r.MonitorRegistry[name]; exists {
		panic(fmt.Sprintf("monitor handler with name '%s' already registered", name))
	}
	slog.Debug("Registering monitor handler.", "name", name)
	r.MonitorRegistry[name] = handler
}

// Monitor looks up a registered monitor handler by name.
func (r *Registry) Monitor(name string) (*RegisteredMonitor, bool) {
	handler, ok := r.MonitorRegistry[name]
	return handler, ok
}
