package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — warm study-room tones on a dark terminal
var (
	Primary = lipgloss.Color("#F59E0B") // Amber
	Passed  = lipgloss.Color("#34D399") // Emerald
	Review  = lipgloss.Color("#FBBF24") // Gold
	Error   = lipgloss.Color("#F87171") // Red
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// StatusColor maps a progress status string to its display color.
func StatusColor(status string) color.Color {
	switch status {
	case "passed":
		return Passed
	case "needs_review":
		return Review
	default:
		return TextDim
	}
}
