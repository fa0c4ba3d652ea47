package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Slimey-dev/rustmark/internal/model"
)

// renderGraph draws one percentage time series as a filled block
// graph on a fixed 0-100 scale, newest sample at the right edge.
func renderGraph(samples []model.Sample, width, height int, style lipgloss.Style) string {
	if height < 3 {
		height = 3
	}
	if width < 12 {
		width = 12
	}

	if len(samples) == 0 {
		return axisStyle.Render("Waiting for data...")
	}

	// Leave room for the Y-axis labels, then show the newest samples
	// that fit.
	plotWidth := width - 6
	display := samples
	if len(display) > plotWidth {
		display = display[len(display)-plotWidth:]
	}

	var s strings.Builder
	for row := height; row >= 1; row-- {
		var line strings.Builder

		switch row {
		case height:
			line.WriteString(axisStyle.Render("100% "))
		case (height + 1) / 2:
			line.WriteString(axisStyle.Render(" 50% "))
		case 1:
			line.WriteString(axisStyle.Render("  0% "))
		default:
			line.WriteString("     ")
		}
		line.WriteString(axisStyle.Render("│"))

		// A cell is filled when the sample reaches this row's band.
		threshold := float64(row-1) / float64(height) * 100
		gridRow := row == height || row == (height+1)/2

		for _, sample := range display {
			switch {
			case sample.Value > threshold:
				line.WriteString(style.Render("█"))
			case gridRow:
				line.WriteString(axisStyle.Render("·"))
			default:
				line.WriteString(" ")
			}
		}

		s.WriteString(line.String() + "\n")
	}

	s.WriteString("     " + axisStyle.Render("└"+strings.Repeat("─", len(display))) + "\n")
	s.WriteString(axisStyle.Render(timeSpanLabel(display)))
	return s.String()
}

// timeSpanLabel tells how much wall-clock time the visible window
// covers, using the elapsed stamps carried by the samples.
func timeSpanLabel(display []model.Sample) string {
	if len(display) < 2 {
		return "      now"
	}
	span := display[len(display)-1].Elapsed - display[0].Elapsed
	return fmt.Sprintf("      ◄─ %.0fs ago", span)
}
