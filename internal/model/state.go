// internal/model/state.go
package model

import (
	"math"
	"time"
)

// Sample is a single point of a telemetry time series: seconds elapsed
// since the run started, and a percentage value.
type Sample struct {
	Elapsed float64
	Value   float64
}

// CoreStat holds one logical core's reading for the current tick.
type CoreStat struct {
	Label    string
	UsagePct float64
	FreqMHz  float64
}

// InfoEntry is a static machine-metadata key/value pair.
type InfoEntry struct {
	Key   string
	Value string
}

// AppState is the display snapshot handed to the renderer. It is
// rebuilt from scratch on every tick; only the two history windows
// carry over between ticks.
type AppState struct {
	TotalOperations uint64
	Target          uint64
	Elapsed         time.Duration
	CPUUsage        float64
	MemoryUsage     float64
	CPUHistory      []Sample
	MemoryHistory   []Sample
	Cores           []CoreStat
	SystemInfo      []InfoEntry
}

// Progress returns the completed fraction of the work budget. It can
// exceed 1.0 briefly once the workers have overshot the target.
func (s AppState) Progress() float64 {
	if s.Target == 0 {
		return 0
	}
	return float64(s.TotalOperations) / float64(s.Target)
}

// Round2 rounds a percentage to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
