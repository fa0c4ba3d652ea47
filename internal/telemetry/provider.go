// internal/telemetry/provider.go
package telemetry

import "github.com/Slimey-dev/rustmark/internal/model"

// Snapshot is one on-demand reading of the machine: aggregate usage,
// the per-core breakdown, and the (mostly invariant) metadata list.
type Snapshot struct {
	CPUPercent    float64 // mean across logical cores
	MemoryPercent float64
	Cores         []model.CoreStat
	SystemInfo    []model.InfoEntry
}

// Provider supplies OS telemetry on demand. The interface exists so
// the dashboard can be tested against a fake.
type Provider interface {
	Snapshot() Snapshot
}

// Varmista että System toteuttaa interfacen
var _ Provider = (*System)(nil)
