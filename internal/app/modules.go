package app

import (
	"github.com/vk/biogrid/internal/registry"
	"github.com/vk/biogrid/modules/statecomparison"
	"github.com/vk/biogrid/modules/statemetrics"
)

// coreModules is the definitive list of all monitor modules that are
// compiled into the biogrid binary.
var coreModules = []registry.Module{
	&statecomparison.Module{},
	&statemetrics.Module{},
}
