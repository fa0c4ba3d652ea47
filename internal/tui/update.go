package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Slimey-dev/rustmark/internal/model"
)

// Init starts the tick loop and takes the first sample immediately.
func (m Model) Init() tea.Cmd {
	return tea.Batch(sampleCmd(m.provider, m.counter, m.start), tickCmd(m.interval))
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gauge.Width = msg.Width - 6
		if m.gauge.Width < 10 {
			m.gauge.Width = 10
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Quit tears the dashboard down right away; the workers
			// are not signaled and keep running until the counter
			// reaches the target. main joins them before the summary.
			m.phase = PhaseStopping
			return m, tea.Quit
		}
		// Every other key is ignored.

	case tickMsg:
		if m.phase != PhaseRunning {
			return m, nil
		}
		return m, tea.Batch(sampleCmd(m.provider, m.counter, m.start), tickCmd(m.interval))

	case sampleMsg:
		if m.phase != PhaseRunning {
			return m, nil
		}
		m.apply(msg)
		if msg.operations >= m.target {
			m.phase = PhaseStopping
			return m, tea.Quit
		}
	}

	return m, nil
}

// apply rebuilds the display snapshot from one tick's readings. The
// history windows are the only carried-over state; they get one new
// sample each, rounded to two decimals.
func (m *Model) apply(msg sampleMsg) {
	elapsed := msg.elapsed.Seconds()
	cpuUsage := model.Round2(msg.snap.CPUPercent)
	memUsage := model.Round2(msg.snap.MemoryPercent)

	m.cpuHistory.Push(model.Sample{Elapsed: elapsed, Value: cpuUsage})
	m.memHistory.Push(model.Sample{Elapsed: elapsed, Value: memUsage})

	m.state = model.AppState{
		TotalOperations: msg.operations,
		Target:          m.target,
		Elapsed:         msg.elapsed,
		CPUUsage:        cpuUsage,
		MemoryUsage:     memUsage,
		CPUHistory:      m.cpuHistory.Samples(),
		MemoryHistory:   m.memHistory.Samples(),
		Cores:           msg.snap.Cores,
		SystemInfo:      msg.snap.SystemInfo,
	}
}
