package router

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/gate"
	"github.com/abhisek/sikshya/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	resume  gate.Destination
	param   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// stubProvider serves a mutable session.
type stubProvider struct {
	session *auth.Session
}

func (p *stubProvider) Current(context.Context) (*auth.Session, error) {
	return p.session, nil
}

func newTestRouter(session *auth.Session) *Router {
	r := New(&stubScreen{title: "root"}, &stubProvider{session: session})
	r.Register(gate.DestLogin, func(req Request) screen.Screen {
		return &stubScreen{title: "login", resume: req.Resume}
	})
	r.Register(gate.DestOnboarding, func(Request) screen.Screen {
		return &stubScreen{title: "onboarding"}
	})
	r.Register(gate.DestProgress, func(req Request) screen.Screen {
		return &stubScreen{title: "progress", param: req.Param}
	})
	return r
}

// resolve runs a Navigate command and applies its resulting message.
func resolve(t *testing.T, r *Router, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	if msg == nil {
		t.Fatal("expected a navigation message")
	}
	r.Update(msg)
}

func TestPushPop(t *testing.T) {
	r := newTestRouter(nil)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}

	r.Pop()
	if r.Active().Title() != "root" {
		t.Errorf("active = %q, want root", r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplacePreservesDepth(t *testing.T) {
	r := newTestRouter(nil)
	r.Push(&stubScreen{title: "second"})

	s3 := &stubScreen{title: "third"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("active = %q, want third", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestNavigate_NoSessionRedirectsToLoginWithResume(t *testing.T) {
	r := newTestRouter(nil)
	resolve(t, r, r.Navigate(NavigateMsg{Dest: gate.DestProgress}))

	active, ok := r.Active().(*stubScreen)
	if !ok || active.title != "login" {
		t.Fatalf("active = %q, want login", r.Active().Title())
	}
	if active.resume.Path != "/progress" {
		t.Errorf("resume = %q, want /progress", active.resume.Path)
	}
}

func TestNavigate_OnboardingIncompleteRedirects(t *testing.T) {
	r := newTestRouter(&auth.Session{ID: "u1", OnboardingDone: false})
	resolve(t, r, r.Navigate(NavigateMsg{Dest: gate.DestProgress}))

	if r.Active().Title() != "onboarding" {
		t.Errorf("active = %q, want onboarding", r.Active().Title())
	}
}

func TestNavigate_OnboardingDestinationAdmitted(t *testing.T) {
	r := newTestRouter(&auth.Session{ID: "u1", OnboardingDone: false})
	resolve(t, r, r.Navigate(NavigateMsg{Dest: gate.DestOnboarding}))

	if r.Active().Title() != "onboarding" {
		t.Errorf("active = %q, want onboarding (no redirect loop)", r.Active().Title())
	}
}

func TestNavigate_AdmittedSessionReachesDestination(t *testing.T) {
	r := newTestRouter(&auth.Session{ID: "u1", OnboardingDone: true})
	resolve(t, r, r.Navigate(NavigateMsg{Dest: gate.DestProgress}))

	if r.Active().Title() != "progress" {
		t.Errorf("active = %q, want progress", r.Active().Title())
	}
}

func TestNavigate_RegatedAfterExternalLogout(t *testing.T) {
	provider := &stubProvider{session: &auth.Session{ID: "u1", OnboardingDone: true}}
	r := New(&stubScreen{title: "root"}, provider)
	r.Register(gate.DestLogin, func(req Request) screen.Screen {
		return &stubScreen{title: "login", resume: req.Resume}
	})
	r.Register(gate.DestProgress, func(Request) screen.Screen {
		return &stubScreen{title: "progress"}
	})

	resolve(t, r, r.Navigate(NavigateMsg{Dest: gate.DestProgress}))
	if r.Active().Title() != "progress" {
		t.Fatalf("active = %q, want progress", r.Active().Title())
	}

	// Session invalidated externally; next attempt must be re-gated.
	provider.session = nil
	resolve(t, r, r.Navigate(NavigateMsg{Dest: gate.DestProgress}))
	if r.Active().Title() != "login" {
		t.Errorf("active = %q, want login after session loss", r.Active().Title())
	}
}

func TestNavigate_ReplaceSwapsActiveScreen(t *testing.T) {
	r := newTestRouter(&auth.Session{ID: "u1", OnboardingDone: true})
	r.Push(&stubScreen{title: "second"})

	resolve(t, r, r.Navigate(NavigateMsg{Dest: gate.DestProgress, Replace: true}))
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "progress" {
		t.Errorf("active = %q, want progress", r.Active().Title())
	}
}

func TestNavigate_UnregisteredDestinationIsNoop(t *testing.T) {
	r := newTestRouter(&auth.Session{ID: "u1", OnboardingDone: true})
	cmd := r.Navigate(NavigateMsg{Dest: gate.DestDiagnose})
	if msg := cmd(); msg != nil {
		t.Errorf("msg = %v, want nil for unregistered destination", msg)
	}
}
