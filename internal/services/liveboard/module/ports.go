package module

import (
	"liveboard/internal/services/liveboard/domain"
)

// Ports exposed by the liveboard module
type Ports struct {
	// Board serves on demand snapshot and collect calls
	Board domain.ServicePort
	// Runner is the scheduled collector loop
	Runner domain.RunnerPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
