package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	valueStyle = lipgloss.NewStyle().Bold(true)

	coreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))

	cpuChartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

	memChartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7"))

	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(1, 0)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585B70")).
		Padding(0, 1)
)
