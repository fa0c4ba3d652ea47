package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Slimey-dev/rustmark/internal/bench"
	"github.com/Slimey-dev/rustmark/internal/telemetry"
)

// tickCmd creates a command that sends a tick message on the sampling
// cadence.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd reads the shared counter and queries the telemetry
// provider. The readings travel back into Update as one message, so
// a whole tick's snapshot is applied atomically to the model.
func sampleCmd(provider telemetry.Provider, counter *bench.Counter, start time.Time) tea.Cmd {
	return func() tea.Msg {
		return sampleMsg{
			operations: counter.Load(),
			elapsed:    time.Since(start),
			snap:       provider.Snapshot(),
		}
	}
}
