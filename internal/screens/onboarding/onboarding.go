package onboarding

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sikshya/internal/api"
	"github.com/abhisek/sikshya/internal/gate"
	"github.com/abhisek/sikshya/internal/router"
	"github.com/abhisek/sikshya/internal/screen"
	"github.com/abhisek/sikshya/internal/ui/components"
	"github.com/abhisek/sikshya/internal/ui/layout"
	"github.com/abhisek/sikshya/internal/ui/theme"
)

// doneMsg reports the result of completing onboarding.
type doneMsg struct {
	err error
}

// OnboardingScreen asks for the learner's class before the dashboard is
// reachable. The gate routes incomplete sessions here; requesting this
// screen directly is always allowed, so there is no redirect loop.
type OnboardingScreen struct {
	client *api.Client

	class  components.TextInput
	busy   bool
	errMsg string
}

var _ screen.Screen = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen.
func New(client *api.Client) *OnboardingScreen {
	class := components.NewTextInput("e.g. 11", 2)
	class.NumericOnly = true
	return &OnboardingScreen{
		client: client,
		class:  class,
	}
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.class.Focus()
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		o.busy = false
		if msg.err != nil {
			o.errMsg = "Could not save. Try again."
			return o, nil
		}
		return o, func() tea.Msg {
			return router.NavigateMsg{Dest: gate.DestDashboard, Replace: true}
		}

	case tea.KeyMsg:
		if o.busy {
			return o, nil
		}
		if msg.String() == "enter" {
			return o, o.submit()
		}
	}

	var cmd tea.Cmd
	o.class, cmd = o.class.Update(msg)
	return o, cmd
}

func (o *OnboardingScreen) submit() tea.Cmd {
	class, err := o.class.NumericValue()
	if err != nil || class < 1 || class > 12 {
		o.errMsg = "Enter a class between 1 and 12."
		return nil
	}
	o.busy = true
	o.errMsg = ""
	return func() tea.Msg {
		_, err := o.client.CompleteOnboarding(context.Background(), class)
		return doneMsg{err: err}
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	content := theme.Title.Render("One quick thing") + "\n" +
		theme.Subtitle.Render("Which class are you in?") + "\n\n" +
		theme.Body.Render("Class: ") + o.class.View() + "\n"

	if o.busy {
		content += "\n" + theme.Hint.Render("Saving…")
	}
	if o.errMsg != "" {
		content += "\n" + theme.ErrorText.Render(o.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (o *OnboardingScreen) Title() string {
	return "Getting Started"
}

// KeyHints returns the footer hints for this screen.
func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
