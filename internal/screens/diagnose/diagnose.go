// Package diagnose is the hand-off point into the diagnostic flow. The
// diagnostic engine itself lives behind the backend; the dashboard only
// routes here.
package diagnose

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sikshya/internal/api"
	"github.com/abhisek/sikshya/internal/screen"
	"github.com/abhisek/sikshya/internal/ui/theme"
)

// conceptMsg carries the resolved display name for the concept ID.
type conceptMsg struct {
	name string
}

// DiagnoseScreen presents the entry into a diagnostic session.
type DiagnoseScreen struct {
	client    *api.Client
	conceptID string
	// conceptName is resolved from the catalog; until then (or when the
	// lookup fails) the raw ID is shown.
	conceptName string
}

var _ screen.Screen = (*DiagnoseScreen)(nil)

// New creates a DiagnoseScreen for the given concept ID.
// An empty ID starts a general diagnostic.
func New(client *api.Client, conceptID string) *DiagnoseScreen {
	return &DiagnoseScreen{
		client:      client,
		conceptID:   conceptID,
		conceptName: conceptID,
	}
}

func (d *DiagnoseScreen) Init() tea.Cmd {
	if d.conceptID == "" || d.client == nil {
		return nil
	}
	return d.resolveName()
}

// resolveName looks the concept up in the catalog. Failure is cosmetic;
// the ID stays on screen.
func (d *DiagnoseScreen) resolveName() tea.Cmd {
	return func() tea.Msg {
		cat, err := d.client.Concepts(context.Background())
		if err != nil {
			return nil
		}
		record, err := cat.Get(d.conceptID)
		if err != nil {
			return nil
		}
		return conceptMsg{name: record.Name}
	}
}

func (d *DiagnoseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(conceptMsg); ok {
		d.conceptName = msg.name
	}
	return d, nil
}

func (d *DiagnoseScreen) View(width, height int) string {
	subject := "your gaps"
	if d.conceptName != "" {
		subject = d.conceptName
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ Diagnostic ╌╌\n\nA diagnostic session on " + subject + "\nwill open in your browser.\n\nPress Esc to go back.")
}

func (d *DiagnoseScreen) Title() string {
	return "Diagnose"
}
