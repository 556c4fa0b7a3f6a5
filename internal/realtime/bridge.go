package realtime

// Package realtime owns the push channel that keeps dashboards live. The
// channel's lifetime is strictly tied to the session that opened it: the
// bridge connects only for a qualifying signed-in role and tears the channel
// down the moment that stops being true, so no connection ever outlives an
// account switch. There is no automatic reconnect; the channel reopens only
// on the next session change.

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hajzi/admin-console/internal/domain/auth"
	"github.com/hajzi/admin-console/internal/domain/model"
	apperrors "github.com/hajzi/admin-console/internal/errors"
)

// State is the bridge's connection state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnected    State = "connected"
)

// Conn is the subset of a websocket connection the bridge uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

// Dialer opens the push channel.
type Dialer interface {
	Dial(ctx context.Context, rawURL string) (Conn, error)
}

// SessionSource is the slice of the session store the bridge watches.
type SessionSource interface {
	Current() (auth.Session, bool)
	Subscribe(fn func(*auth.Session)) func()
}

// Handler consumes one push notification.
type Handler func(model.Notification)

// WebsocketDialer dials with gorilla/websocket.
type WebsocketDialer struct {
	HandshakeTimeout time.Duration
	ReadLimit        int64
}

// Dial implements Dialer.
func (d *WebsocketDialer) Dial(ctx context.Context, rawURL string) (Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: d.HandshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, rawURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, apperrors.Network("dial push channel", err)
	}
	if d.ReadLimit > 0 {
		conn.SetReadLimit(d.ReadLimit)
	}
	return conn, nil
}

// Options groups dependencies for Bridge.
type Options struct {
	// BaseURL is the backend origin; the scheme is rewritten to ws/wss.
	BaseURL string
	// Sessions drives connect/disconnect transitions.
	Sessions SessionSource
	// Dialer opens connections. Defaults to a WebsocketDialer.
	Dialer Dialer
	// Logger receives lifecycle diagnostics. Optional.
	Logger *slog.Logger
}

// Bridge is the push-channel state machine.
type Bridge struct {
	baseURL  string
	sessions SessionSource
	dialer   Dialer
	logger   *slog.Logger

	mu         sync.Mutex
	state      State
	conn       Conn
	connUserID string
	gen        uint64
	handlers   map[model.EventKind]map[string]Handler
	unwatch    func()
}

// New constructs a Bridge. Call Start to begin tracking the session.
func New(opts Options) *Bridge {
	dialer := opts.Dialer
	if dialer == nil {
		dialer = &WebsocketDialer{HandshakeTimeout: 10 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		baseURL:  opts.BaseURL,
		sessions: opts.Sessions,
		dialer:   dialer,
		logger:   logger,
		state:    StateDisconnected,
		handlers: make(map[model.EventKind]map[string]Handler),
	}
}

// Start subscribes to session changes and evaluates the current session.
// It must run before any other session subscriber is registered so the
// channel closes before later observers see the session disappear.
func (b *Bridge) Start() {
	unwatch := b.sessions.Subscribe(b.onSessionChange)
	b.mu.Lock()
	b.unwatch = unwatch
	b.mu.Unlock()

	if sess, ok := b.sessions.Current(); ok {
		b.onSessionChange(&sess)
	}
}

// Stop detaches from the session store and closes any open channel.
func (b *Bridge) Stop() {
	b.mu.Lock()
	unwatch := b.unwatch
	b.unwatch = nil
	b.mu.Unlock()

	if unwatch != nil {
		unwatch()
	}
	b.disconnect()
}

// State returns the current connection state.
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Subscribe registers a handler for one event kind and returns its release
// function. A component that subscribes while mounted must call the release
// on unmount; otherwise events keep dispatching into a disposed handler.
func (b *Bridge) Subscribe(kind model.EventKind, fn Handler) func() {
	b.mu.Lock()
	id := uuid.NewString()
	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[string]Handler)
	}
	b.handlers[kind][id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[kind], id)
	}
}

// onSessionChange drives the two-state machine. Any transition into
// disconnected closes the previous channel first.
func (b *Bridge) onSessionChange(sess *auth.Session) {
	if sess == nil || !sess.QualifiesForLiveUpdates() {
		b.disconnect()
		return
	}

	b.mu.Lock()
	sameIdentity := b.state == StateConnected && b.connUserID == sess.ID
	b.mu.Unlock()
	if sameIdentity {
		return
	}

	// Identity changed under an open channel: close before reopening.
	b.disconnect()
	b.connect(*sess)
}

func (b *Bridge) connect(sess auth.Session) {
	channelURL, err := b.channelURL(sess.ID)
	if err != nil {
		b.logger.Warn("build push channel url", "error", err)
		return
	}

	conn, err := b.dialer.Dial(context.Background(), channelURL)
	if err != nil {
		// Stay disconnected; retry is never automatic.
		b.logger.Warn("open push channel", "error", err, "user_id", sess.ID)
		return
	}

	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.conn = conn
	b.connUserID = sess.ID
	b.state = StateConnected
	b.mu.Unlock()

	b.logger.Info("push channel open", "user_id", sess.ID)
	go b.readLoop(conn, gen)
}

// disconnect closes the open channel, if any, before the state flips. Safe
// to call repeatedly.
func (b *Bridge) disconnect() {
	b.mu.Lock()
	conn := b.conn
	b.conn = nil
	b.connUserID = ""
	wasConnected := b.state == StateConnected
	b.state = StateDisconnected
	b.gen++
	b.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if wasConnected {
		b.logger.Info("push channel closed")
	}
}

// readLoop pumps frames until the connection dies. gen guards against a
// stale loop touching state that belongs to a newer connection.
func (b *Bridge) readLoop(conn Conn, gen uint64) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			b.mu.Lock()
			if b.gen == gen {
				b.conn = nil
				b.connUserID = ""
				b.state = StateDisconnected
			}
			b.mu.Unlock()
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				b.logger.Warn("push channel read", "error", err)
			}
			return
		}

		var event model.Notification
		if err := json.Unmarshal(data, &event); err != nil {
			b.logger.Warn("drop undecodable push frame", "error", err)
			continue
		}
		b.dispatch(event)
	}
}

func (b *Bridge) dispatch(event model.Notification) {
	b.mu.Lock()
	registered := b.handlers[event.Kind]
	handlers := make([]Handler, 0, len(registered))
	for _, fn := range registered {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(event)
	}
}

// channelURL rewrites the REST origin into the websocket endpoint, carrying
// the identity as a connect-time correlation key. Events themselves never
// repeat it.
func (b *Bridge) channelURL(userID string) (string, error) {
	parsed, err := url.Parse(b.baseURL)
	if err != nil {
		return "", err
	}
	switch parsed.Scheme {
	case "https":
		parsed.Scheme = "wss"
	default:
		parsed.Scheme = "ws"
	}
	parsed.Path = "/socket"
	q := parsed.Query()
	q.Set("userId", userID)
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}
