// Package app wires the screens, router and access gate into the root
// Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sikshya/internal/api"
	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/gate"
	"github.com/abhisek/sikshya/internal/prefs"
	"github.com/abhisek/sikshya/internal/router"
	"github.com/abhisek/sikshya/internal/screen"
	"github.com/abhisek/sikshya/internal/screens/dashboard"
	"github.com/abhisek/sikshya/internal/screens/diagnose"
	"github.com/abhisek/sikshya/internal/screens/login"
	"github.com/abhisek/sikshya/internal/screens/onboarding"
	"github.com/abhisek/sikshya/internal/ui/layout"
)

// learnerXP is shown in the header badge. XP totals are not exposed by
// the backend yet.
// TODO: replace with the per-learner total once /api/auth/me carries it.
const learnerXP = 0

// Options carries the wired dependencies the app needs.
type Options struct {
	Client *api.Client
	Tokens *auth.TokenCache
	Prefs  *prefs.Service
}

// bootScreen is the empty screen below everything else on the stack. The
// first navigation replaces it through the gate.
type bootScreen struct{}

func (bootScreen) Init() tea.Cmd                             { return nil }
func (b bootScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return b, nil }
func (bootScreen) View(int, int) string                      { return "" }
func (bootScreen) Title() string                             { return "" }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	learner string
	width   int
	height  int
}

// newAppModel builds the router and registers one factory per gated
// destination.
func newAppModel(opts Options) AppModel {
	r := router.New(bootScreen{}, opts.Client)

	r.Register(gate.DestLogin, func(req router.Request) screen.Screen {
		return login.New(opts.Client, opts.Tokens, req.Resume)
	})
	r.Register(gate.DestOnboarding, func(router.Request) screen.Screen {
		return onboarding.New(opts.Client)
	})
	dashFactory := func(router.Request) screen.Screen {
		return dashboard.New(opts.Client, opts.Prefs)
	}
	r.Register(gate.DestDashboard, dashFactory)
	r.Register(gate.DestProgress, dashFactory)
	r.Register(gate.DestDiagnose, func(req router.Request) screen.Screen {
		return diagnose.New(opts.Client, req.Param)
	})

	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	// Entry runs through the gate like every other navigation.
	return func() tea.Msg {
		return router.NavigateMsg{Dest: gate.DestDashboard, Replace: true}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SessionMsg:
		if msg.Session != nil {
			m.learner = msg.Session.Name
		} else {
			m.learner = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.learner, learnerXP, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hinter.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
