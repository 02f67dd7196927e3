package registry

import (
	"github.com/vk/biogrid/internal/model"
)

// Module is the interface that all bundled monitor modules must implement to
// be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered monitor handlers and the manifests
// discovered on disk for a single run.
type Registry struct {
	MonitorRegistry map[string]*RegisteredMonitor

	manifests []*model.ModelManifest
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		MonitorRegistry: make(map[string]*RegisteredMonitor),
	}
}

// Manifests returns the manifests loaded for this run, in discovery order.
func (r *Registry) Manifests() []*model.ModelManifest {
	return r.manifests
}
