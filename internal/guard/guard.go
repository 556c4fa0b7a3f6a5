package guard

// Package guard decides what protected navigation may render. It layers on
// the session store: nothing is decided until bootstrap resolves, and
// per-path access follows the same permission rules the menu uses.

import (
	"github.com/hajzi/admin-console/internal/domain/auth"
	"github.com/hajzi/admin-console/internal/nav"
)

// Decision is the outcome of evaluating protected access.
type Decision string

const (
	// DecisionPending means bootstrap has not resolved; render nothing.
	DecisionPending Decision = "pending"
	// DecisionAuthenticated admits the user to protected content.
	DecisionAuthenticated Decision = "authenticated"
	// DecisionUnauthenticated redirects to the sign-in screen.
	DecisionUnauthenticated Decision = "unauthenticated"
)

// SessionState is the slice of the session store the guard reads.
type SessionState interface {
	Current() (auth.Session, bool)
	Bootstrapped() bool
}

// Guard gates protected routes on session state.
type Guard struct {
	sessions SessionState
}

// New constructs a Guard.
func New(sessions SessionState) *Guard {
	return &Guard{sessions: sessions}
}

// Evaluate returns the coarse access decision for any protected route.
func (g *Guard) Evaluate() Decision {
	if !g.sessions.Bootstrapped() {
		return DecisionPending
	}
	if _, ok := g.sessions.Current(); !ok {
		return DecisionUnauthenticated
	}
	return DecisionAuthenticated
}

// Allow reports whether the signed-in user may open the given path. It is
// only meaningful once Evaluate returns DecisionAuthenticated.
func (g *Guard) Allow(path string) bool {
	sess, ok := g.sessions.Current()
	if !ok {
		return false
	}
	switch path {
	case nav.PathDashboard:
		return true
	case nav.PathSystemAdmin:
		return sess.IsSuperadmin()
	}
	if sess.IsSuperadmin() {
		return true
	}
	key, ok := nav.PermissionFor(path)
	if !ok {
		// Paths without a mapped permission stay superadmin-only.
		return false
	}
	return sess.Can(key)
}
