// Package gate decides, per navigation attempt, whether the session may
// reach a destination, must authenticate first, or must finish onboarding.
// The decision is a pure function of (session, destination); nothing is
// persisted and no admission is ever cached.
package gate

import "github.com/abhisek/sikshya/internal/auth"

// Destination identifies a navigable screen and its access requirements.
type Destination struct {
	Path string
	// Public destinations are reachable without a session.
	Public bool
	// RequiresOnboarding marks destinations that need a completed
	// onboarding. Protected destinations default to true; the onboarding
	// destination itself must keep this false to avoid a redirect loop.
	RequiresOnboarding bool
}

// The client's navigable destinations.
var (
	DestLogin      = Destination{Path: "/login", Public: true}
	DestOnboarding = Destination{Path: "/onboarding"}
	DestDashboard  = Destination{Path: "/", RequiresOnboarding: true}
	DestProgress   = Destination{Path: "/progress", RequiresOnboarding: true}
	DestDiagnose   = Destination{Path: "/diagnose", RequiresOnboarding: true}
)

// Outcome tags a gate decision.
type Outcome int

const (
	// Admitted renders the requested destination.
	Admitted Outcome = iota
	// RedirectLogin sends the session to the login surface; Decision.Resume
	// carries the originally intended destination.
	RedirectLogin
	// RedirectOnboarding sends the session to the onboarding flow.
	RedirectOnboarding
)

// Decision is the result of evaluating one navigation attempt.
type Decision struct {
	Outcome  Outcome
	Redirect Destination
	// Resume is the destination to return to after the redirect flow
	// succeeds. Set for RedirectLogin.
	Resume Destination
}

// Evaluate gates a navigation attempt. It is re-run on every attempt: a
// session invalidated elsewhere is caught the very next time it navigates.
func Evaluate(session *auth.Session, dest Destination) Decision {
	if session == nil {
		if dest.Public {
			return Decision{Outcome: Admitted}
		}
		return Decision{Outcome: RedirectLogin, Redirect: DestLogin, Resume: dest}
	}

	if !session.OnboardingDone && dest.RequiresOnboarding {
		return Decision{Outcome: RedirectOnboarding, Redirect: DestOnboarding}
	}

	return Decision{Outcome: Admitted}
}
