package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/Slimey-dev/rustmark/internal/bench"
	"github.com/Slimey-dev/rustmark/internal/model"
	"github.com/Slimey-dev/rustmark/internal/telemetry"
)

// Phase is the dashboard lifecycle. It only moves forward.
type Phase int

const (
	// PhaseRunning: ticking, sampling, redrawing.
	PhaseRunning Phase = iota
	// PhaseStopping: a quit command arrived or the counter reached
	// the target; the dashboard is tearing down while the workers
	// drain to their next batch boundary.
	PhaseStopping
)

// Model represents the dashboard state.
type Model struct {
	provider telemetry.Provider
	counter  *bench.Counter
	target   uint64
	start    time.Time
	interval time.Duration

	phase Phase
	state model.AppState

	// Only the two history windows survive between ticks; everything
	// else in state is rebuilt from the next sample.
	cpuHistory *model.History
	memHistory *model.History

	gauge  progress.Model
	width  int
	height int
}

// Message types for the Bubbletea update loop
type tickMsg time.Time

// sampleMsg carries one tick's worth of raw readings: the counter
// snapshot, the elapsed time, and the telemetry query result.
type sampleMsg struct {
	operations uint64
	elapsed    time.Duration
	snap       telemetry.Snapshot
}

// NewModel creates the dashboard model.
func NewModel(provider telemetry.Provider, counter *bench.Counter, target uint64, interval time.Duration, start time.Time) Model {
	gauge := progress.New(progress.WithDefaultGradient())
	return Model{
		provider:   provider,
		counter:    counter,
		target:     target,
		start:      start,
		interval:   interval,
		cpuHistory: model.NewHistory(model.HistoryCap),
		memHistory: model.NewHistory(model.HistoryCap),
		gauge:      gauge,
	}
}

// Phase returns the current lifecycle phase.
func (m Model) Phase() Phase {
	return m.phase
}

// State returns the current display snapshot.
func (m Model) State() model.AppState {
	return m.state
}
