package mocks

// Hand-written stateful doubles. These are lightweight and suitable for unit
// tests that care about end state rather than call choreography.

import (
	"sync"

	"github.com/hajzi/admin-console/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenStore = (*MemoryTokenStore)(nil)
	_ ports.Navigator  = (*StubNavigator)(nil)
)

// MemoryTokenStore keeps the token in memory. Error fields allow fault
// injection per operation.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string

	LoadErr  error
	SaveErr  error
	ClearErr error
}

// NewMemoryTokenStore creates a store pre-seeded with token (may be empty).
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (m *MemoryTokenStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	return m.token, nil
}

func (m *MemoryTokenStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.token = ""
	return nil
}

// StubNavigator records navigations and reports a settable current path.
type StubNavigator struct {
	mu   sync.Mutex
	path string

	Navigations []string
}

// NewStubNavigator creates a navigator positioned at path.
func NewStubNavigator(path string) *StubNavigator {
	return &StubNavigator{path: path}
}

func (s *StubNavigator) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

func (s *StubNavigator) Navigate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.Navigations = append(s.Navigations, path)
}
