package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sikshya/internal/ui/theme"
)

// CoverageBar displays the diagnosed-coverage bar on the dashboard.
// When HasData is false it renders a "no data" note instead of 0%.
type CoverageBar struct {
	Percent int
	HasData bool
	Width   int
}

// View renders the bar.
func (b CoverageBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render("Coverage") + "  "

	if !b.HasData {
		return label + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("no data — add a subject to begin")
	}

	percentWidth := 6 // " 100%"
	barWidth := b.Width - lipgloss.Width(label) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * b.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().
		Background(theme.Passed).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", barWidth-filled))

	return label + bar + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", b.Percent))
}
