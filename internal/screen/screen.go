package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/ui/layout"
)

// Screen defines the interface for all dashboard screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that want custom
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SessionMsg announces the active learner session to the outer model, so
// the header can show who is logged in. A nil session means logged out.
type SessionMsg struct {
	Session *auth.Session
}
