package login

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sikshya/internal/api"
	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/gate"
	"github.com/abhisek/sikshya/internal/router"
	"github.com/abhisek/sikshya/internal/screen"
	"github.com/abhisek/sikshya/internal/ui/components"
	"github.com/abhisek/sikshya/internal/ui/layout"
	"github.com/abhisek/sikshya/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
)

// loginDoneMsg reports the result of a login attempt.
type loginDoneMsg struct {
	session *auth.Session
	err     error
}

// LoginScreen collects credentials and resumes the originally intended
// destination after a successful login.
type LoginScreen struct {
	client *api.Client
	tokens *auth.TokenCache
	resume gate.Destination

	email    components.TextInput
	password components.TextInput
	focus    int
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen. resume is the gated destination to return to;
// the zero Destination falls back to the dashboard.
func New(client *api.Client, tokens *auth.TokenCache, resume gate.Destination) *LoginScreen {
	if resume.Path == "" {
		resume = gate.DestDashboard
	}
	return &LoginScreen{
		client:   client,
		tokens:   tokens,
		resume:   resume,
		email:    components.NewTextInput("email", 64),
		password: components.NewPasswordInput("password"),
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.email.Focus()
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		l.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrBadCredentials) {
				l.errMsg = "Invalid email or password."
			} else {
				l.errMsg = "Could not reach the server. Try again."
			}
			return l, nil
		}
		return l, func() tea.Msg {
			return router.NavigateMsg{Dest: l.resume, Replace: true}
		}

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			l.toggleFocus()
			return l, nil
		case "enter":
			if l.focus == fieldEmail {
				l.toggleFocus()
				return l, nil
			}
			return l, l.submit()
		}
	}

	var cmd tea.Cmd
	if l.focus == fieldEmail {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) toggleFocus() {
	if l.focus == fieldEmail {
		l.focus = fieldPassword
		l.email.Blur()
		l.password.Focus()
	} else {
		l.focus = fieldEmail
		l.password.Blur()
		l.email.Focus()
	}
}

func (l *LoginScreen) submit() tea.Cmd {
	email, password := l.email.Value(), l.password.Value()
	if email == "" || password == "" {
		l.errMsg = "Enter your email and password."
		return nil
	}
	l.busy = true
	l.errMsg = ""
	return func() tea.Msg {
		session, err := l.client.Login(context.Background(), email, password)
		if err == nil {
			l.tokens.Save(context.Background(), l.client.Token())
		}
		return loginDoneMsg{session: session, err: err}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var b []string
	b = append(b, theme.Title.Render("Welcome back"))
	b = append(b, theme.Subtitle.Render("Log in to see your progress"))
	b = append(b, "")
	b = append(b, theme.Body.Render("Email:    ")+l.email.View())
	b = append(b, theme.Body.Render("Password: ")+l.password.View())

	if l.busy {
		b = append(b, "", theme.Hint.Render("Logging in…"))
	}
	if l.errMsg != "" {
		b = append(b, "", theme.ErrorText.Render(l.errMsg))
	}

	content := ""
	for _, line := range b {
		content += line + "\n"
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (l *LoginScreen) Title() string {
	return "Log In"
}

// KeyHints returns the footer hints for this screen.
func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Log in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
