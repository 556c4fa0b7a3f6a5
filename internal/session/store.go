package session

// Package session owns the authenticated identity: token persistence, the
// login/logout transitions, and the one-shot bootstrap verification at
// startup. Every other component treats this store as the single source of
// truth for who is signed in; nothing else caches the token.

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hajzi/admin-console/internal/api"
	"github.com/hajzi/admin-console/internal/domain/auth"
	apperrors "github.com/hajzi/admin-console/internal/errors"
	"github.com/hajzi/admin-console/internal/ports"
)

// AuthAPI is the slice of the HTTP client the store needs.
type AuthAPI interface {
	Get(ctx context.Context, path string) (*api.Result, error)
	Post(ctx context.Context, path string, body any) (*api.Result, error)
}

// Options groups dependencies for Store.
type Options struct {
	Client AuthAPI
	Tokens ports.TokenStore
	Logger *slog.Logger
}

// Store is the session store. All mutation goes through Bootstrap, Login,
// Logout, and Invalidate; readers use Current and Bootstrapped.
type Store struct {
	client AuthAPI
	tokens ports.TokenStore
	logger *slog.Logger

	mu           sync.Mutex
	session      *auth.Session
	bootstrapped bool
	subscribers  []subscriber
}

type subscriber struct {
	id string
	fn func(*auth.Session)
}

// New constructs a Store.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: opts.Client,
		tokens: opts.Tokens,
		logger: logger,
	}
}

// userPayload is the identity shape shared by /admin/me and /admin/login.
type userPayload struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        auth.Role       `json:"role"`
	Permissions map[string]bool `json:"permissions"`
}

func (u userPayload) toSession(token string) auth.Session {
	return auth.Session{
		Token:       token,
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}

// Bootstrap validates any persisted token against the identity endpoint.
// It resolves the bootstrap state exactly once, on success or failure alike,
// so protected UI never blocks on a broken startup. A failed verification
// clears the persisted token and leaves the session empty; the error comes
// back for logging only.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	defer s.resolve()

	token, err := s.tokens.Load()
	if err != nil {
		s.logger.WarnContext(ctx, "load persisted token", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	res, err := s.client.Get(ctx, "/admin/me")
	if err != nil {
		// The HTTP client already ran the destructive auth contract for
		// 401s; clear here as well so network failures don't leave a token
		// that was never verified.
		s.clearToken(ctx)
		return err
	}

	var user userPayload
	if decodeErr := res.Decode(&user); decodeErr != nil {
		s.clearToken(ctx)
		return decodeErr
	}

	s.setSession(user.toSession(token))
	return nil
}

// loginPayload is the data field of a successful /admin/login response.
type loginPayload struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// Login exchanges credentials for a token and populates the session. Server
// rejections surface their message unchanged so screens can display them.
func (s *Store) Login(ctx context.Context, email, password string) error {
	res, err := s.client.Post(ctx, "/admin/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	var payload loginPayload
	if decodeErr := res.Decode(&payload); decodeErr != nil {
		return decodeErr
	}
	if payload.Token == "" {
		return apperrors.Auth("login response did not include a token")
	}

	if saveErr := s.tokens.Save(payload.Token); saveErr != nil {
		return saveErr
	}

	s.setSession(payload.User.toSession(payload.Token))
	return nil
}

// Logout clears the session and the persisted token synchronously. It never
// navigates; redirecting is the caller's job.
func (s *Store) Logout() {
	s.clearToken(context.Background())
	s.setSession(auth.Session{})
}

// Invalidate drops the in-memory session after the HTTP client has already
// cleared the persisted token. Wired as the client's auth-failure hook.
func (s *Store) Invalidate() {
	s.setSession(auth.Session{})
}

// Current returns the session, if one exists.
func (s *Store) Current() (auth.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return auth.Session{}, false
	}
	return *s.session, true
}

// Bootstrapped reports whether the startup verification has resolved.
// Protected UI must render nothing until this is true.
func (s *Store) Bootstrapped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bootstrapped
}

// Subscribe registers fn to run on every session change; it receives the new
// session or nil on sign-out. Subscribers are invoked synchronously in
// registration order, so components wired earlier observe changes first (the
// realtime bridge relies on this to close its channel before anyone else
// sees the session disappear). The returned function unregisters; callers
// must invoke it on teardown.
func (s *Store) Subscribe(fn func(*auth.Session)) func() {
	s.mu.Lock()
	id := uuid.NewString()
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// setSession replaces the session (empty means signed out) and notifies
// subscribers. Notification happens outside the lock so handlers may call
// back into the store.
func (s *Store) setSession(sess auth.Session) {
	s.mu.Lock()
	if sess.Token == "" && sess.ID == "" {
		s.session = nil
	} else {
		copied := sess
		s.session = &copied
	}
	current := s.session
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(current)
	}
}

func (s *Store) resolve() {
	s.mu.Lock()
	s.bootstrapped = true
	s.mu.Unlock()
}

func (s *Store) clearToken(ctx context.Context) {
	if err := s.tokens.Clear(); err != nil {
		s.logger.WarnContext(ctx, "clear persisted token", "error", err)
	}
}
