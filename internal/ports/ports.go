package ports

// Package ports defines interfaces (hexagonal ports) for the client runtime's
// external effects. Implementations live in internal/adapters; orchestration
// in internal/session and internal/api.

// TokenStore persists the single process-wide bearer token. Absence is
// reported as an empty string, not an error. The session store is the sole
// writer; the HTTP client and realtime bridge are readers only.
type TokenStore interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)

	// Save durably replaces the persisted token.
	Save(token string) error

	// Clear removes the persisted token. Clearing an absent token is a no-op.
	Clear() error
}

// Navigator abstracts the host shell's routing. The runtime only ever needs
// to know where it is and to force a jump to the login screen; everything
// else about routing stays outside the core.
type Navigator interface {
	// CurrentPath returns the path currently displayed.
	CurrentPath() string

	// Navigate switches the shell to the given path.
	Navigate(path string)
}
