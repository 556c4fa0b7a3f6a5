package memnav

// Package memnav is the in-process navigator used by the console shell. It
// tracks the current route and lets the shell observe forced redirects, such
// as the jump to the login screen after an auth failure.

import (
	"sync"

	"github.com/hajzi/admin-console/internal/nav"
	"github.com/hajzi/admin-console/internal/ports"
)

var _ ports.Navigator = (*Navigator)(nil)

// Navigator is a mutex-guarded route holder.
type Navigator struct {
	mu       sync.Mutex
	path     string
	onChange func(path string)
}

// New starts at the dashboard root.
func New() *Navigator {
	return &Navigator{path: nav.PathDashboard}
}

// SetOnChange registers an observer for route changes. One observer only;
// the shell owns it.
func (n *Navigator) SetOnChange(fn func(path string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// CurrentPath returns the active route.
func (n *Navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

// Navigate switches routes and notifies the observer. Navigating to the
// current route is a no-op.
func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	if n.path == path {
		n.mu.Unlock()
		return
	}
	n.path = path
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(path)
	}
}
