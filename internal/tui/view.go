package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Slimey-dev/rustmark/internal/model"
)

// View renders the dashboard: the progress header on top, the two
// usage charts below it, and the detail panels on the bottom row.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting benchmark..."
	}

	header := m.renderProgressPanel(m.width)

	chartHeight := int(float64(m.height) * 0.35)
	if chartHeight < 8 {
		chartHeight = 8
	}
	detailHeight := m.height - lipgloss.Height(header) - chartHeight
	if detailHeight < 8 {
		detailHeight = 8
	}

	halfWidth := m.width / 2
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderChartPanel("CPU Usage", m.state.CPUHistory, cpuChartStyle, halfWidth, chartHeight),
		m.renderChartPanel("Memory Usage", m.state.MemoryHistory, memChartStyle, m.width-halfWidth, chartHeight),
	)

	thirdWidth := m.width / 3
	details := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderStatsPanel(thirdWidth, detailHeight),
		m.renderCoresPanel(thirdWidth, detailHeight),
		m.renderInfoPanel(m.width-2*thirdWidth, detailHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, charts, details)
}

// renderProgressPanel renders the operations/target gauge
func (m Model) renderProgressPanel(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Progress") + "  ")
	s.WriteString(fmt.Sprintf("%d / %d ops", m.state.TotalOperations, m.state.Target))
	s.WriteString("\n")
	s.WriteString(m.gauge.ViewAs(m.state.Progress()))

	return panelStyle.Width(width - 2).Render(s.String())
}

// renderChartPanel renders one bounded time-series chart.
func (m Model) renderChartPanel(title string, samples []model.Sample, style lipgloss.Style, width, height int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(title))
	if len(samples) > 0 {
		latest := samples[len(samples)-1]
		s.WriteString("  " + style.Render(fmt.Sprintf("%.2f%%", latest.Value)))
	}
	s.WriteString("\n")
	s.WriteString(renderGraph(samples, width-6, height-5, style))

	return panelStyle.Width(width - 2).Height(height - 2).Render(s.String())
}

// renderStatsPanel renders the aggregate statistics.
func (m Model) renderStatsPanel(width, height int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Statistics") + "\n\n")
	s.WriteString("Time: " + valueStyle.Render(fmt.Sprintf("%.2fs", m.state.Elapsed.Seconds())) + "\n")
	s.WriteString("Operations: " + valueStyle.Render(fmt.Sprintf("%d", m.state.TotalOperations)) + "\n")
	s.WriteString("CPU Usage: " + valueStyle.Render(fmt.Sprintf("%.2f%%", m.state.CPUUsage)) + "\n")
	s.WriteString("Memory Usage: " + valueStyle.Render(fmt.Sprintf("%.2f%%", m.state.MemoryUsage)) + "\n")
	s.WriteString(helpStyle.Render("[q] quit"))

	return panelStyle.Width(width - 2).Height(height - 2).Render(s.String())
}

// renderCoresPanel renders the per-core list.
func (m Model) renderCoresPanel(width, height int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("CPU Details") + "\n\n")

	if len(m.state.Cores) == 0 {
		s.WriteString("No per-core data")
	}

	maxRows := height - 5
	for i, core := range m.state.Cores {
		if i >= maxRows {
			s.WriteString(axisStyle.Render(fmt.Sprintf("… %d more", len(m.state.Cores)-i)))
			break
		}
		s.WriteString(fmt.Sprintf("%s: ", core.Label))
		s.WriteString(coreStyle.Render(fmt.Sprintf("%.2f%% @ %.0f MHz", core.UsagePct, core.FreqMHz)))
		s.WriteString("\n")
	}

	return panelStyle.Width(width - 2).Height(height - 2).Render(s.String())
}

// renderInfoPanel renders the system metadata list.
func (m Model) renderInfoPanel(width, height int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("System Information") + "\n\n")

	for _, entry := range m.state.SystemInfo {
		s.WriteString(fmt.Sprintf("%s: ", entry.Key))
		s.WriteString(infoStyle.Render(entry.Value))
		s.WriteString("\n")
	}

	return panelStyle.Width(width - 2).Height(height - 2).Render(s.String())
}
