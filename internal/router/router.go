// Package router manages the screen stack and runs every navigation
// attempt through the access gate before a screen is reached.
package router

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/gate"
	"github.com/abhisek/sikshya/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to replace the active screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg requests gated navigation to a destination. The gate is
// evaluated against the current session before any screen is built.
type NavigateMsg struct {
	Dest gate.Destination
	// Replace swaps the active screen instead of stacking on top of it.
	Replace bool
	// Param is an optional destination-specific argument, e.g. the
	// concept a diagnostic should start from.
	Param string
}

// Request carries the context a screen factory may need.
type Request struct {
	// Resume is the destination to return to after a redirect flow
	// completes; zero for direct admissions.
	Resume gate.Destination
	// Param is the NavigateMsg parameter, forwarded on admission.
	Param string
}

// Factory builds the screen for a destination.
type Factory func(req Request) screen.Screen

// Router manages a stack of screens behind the access gate.
type Router struct {
	stack     []screen.Screen
	provider  auth.Provider
	factories map[string]Factory
}

// New creates a Router with the given initial screen and session provider.
func New(initial screen.Screen, provider auth.Provider) *Router {
	return &Router{
		stack:     []screen.Screen{initial},
		provider:  provider,
		factories: make(map[string]Factory),
	}
}

// Register binds a destination to its screen factory.
func (r *Router) Register(dest gate.Destination, f Factory) {
	r.factories[dest.Path] = f
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the active screen and calls the new screen's Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Navigate returns a command that gates the attempt and resolves the
// resulting screen. The session is fetched fresh on every attempt; there
// is no cached admission.
func (r *Router) Navigate(msg NavigateMsg) tea.Cmd {
	return func() tea.Msg {
		session, err := r.provider.Current(context.Background())
		if err != nil {
			// An unreadable session cannot admit anyone.
			session = nil
		}

		target := msg.Dest
		req := Request{Param: msg.Param}
		switch decision := gate.Evaluate(session, msg.Dest); decision.Outcome {
		case gate.RedirectLogin:
			target = decision.Redirect
			req.Resume = decision.Resume
			req.Param = ""
		case gate.RedirectOnboarding:
			target = decision.Redirect
			req.Param = ""
		}

		f, ok := r.factories[target.Path]
		if !ok {
			return nil
		}
		if msg.Replace {
			return ReplaceScreenMsg{Screen: f(req)}
		}
		return PushScreenMsg{Screen: f(req)}
	}
}

// Update forwards a message to the active screen and handles navigation
// messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg)
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
