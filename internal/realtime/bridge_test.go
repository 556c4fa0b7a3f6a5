package realtime

import (
	"context"
	"errors"
	"io"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajzi/admin-console/internal/domain/auth"
	"github.com/hajzi/admin-console/internal/domain/model"
)

// fakeSessions lets tests drive session transitions by hand.
type fakeSessions struct {
	mu      sync.Mutex
	current *auth.Session
	watcher func(*auth.Session)
}

func (f *fakeSessions) Current() (auth.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return auth.Session{}, false
	}
	return *f.current, true
}

func (f *fakeSessions) Subscribe(fn func(*auth.Session)) func() {
	f.mu.Lock()
	f.watcher = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.watcher = nil
		f.mu.Unlock()
	}
}

func (f *fakeSessions) emit(sess *auth.Session) {
	f.mu.Lock()
	f.current = sess
	fn := f.watcher
	f.mu.Unlock()
	if fn != nil {
		fn(sess)
	}
}

// fakeConn feeds frames to the read loop until closed.
type fakeConn struct {
	frames chan []byte
	done   chan struct{}
	once   sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{frames: make(chan []byte, 8), done: make(chan struct{})}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case frame := <-c.frames:
		return 1, frame, nil
	case <-c.done:
		return 0, nil, io.ErrClosedPipe
	}
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *fakeConn) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

type fakeDialer struct {
	mu    sync.Mutex
	urls  []string
	conns []*fakeConn
	err   error
}

func (d *fakeDialer) Dial(_ context.Context, rawURL string) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.urls = append(d.urls, rawURL)
	if d.err != nil {
		return nil, d.err
	}
	conn := newFakeConn()
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *fakeDialer) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.urls)
}

func (d *fakeDialer) lastConn() *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.conns) == 0 {
		return nil
	}
	return d.conns[len(d.conns)-1]
}

func adminSession(id string) *auth.Session {
	return &auth.Session{Token: "tok", ID: id, Role: auth.RoleAdmin}
}

func newBridge(t *testing.T) (*Bridge, *fakeSessions, *fakeDialer) {
	t.Helper()
	sessions := &fakeSessions{}
	dialer := &fakeDialer{}
	bridge := New(Options{
		BaseURL:  "http://localhost:5000",
		Sessions: sessions,
		Dialer:   dialer,
	})
	bridge.Start()
	t.Cleanup(bridge.Stop)
	return bridge, sessions, dialer
}

func TestBridge_NonQualifyingRoleNeverConnects(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleEmployee, auth.RoleClient, auth.RolePhotographer} {
		t.Run(string(role), func(t *testing.T) {
			bridge, sessions, dialer := newBridge(t)

			sessions.emit(&auth.Session{Token: "tok", ID: "u1", Role: role})

			assert.Equal(t, StateDisconnected, bridge.State())
			assert.Zero(t, dialer.dialCount())
		})
	}
}

func TestBridge_ConnectsWithIdentityInURL(t *testing.T) {
	bridge, sessions, dialer := newBridge(t)

	sessions.emit(adminSession("a1"))

	require.Equal(t, StateConnected, bridge.State())
	require.Equal(t, 1, dialer.dialCount())

	dialed, err := url.Parse(dialer.urls[0])
	require.NoError(t, err)
	assert.Equal(t, "ws", dialed.Scheme)
	assert.Equal(t, "/socket", dialed.Path)
	assert.Equal(t, "a1", dialed.Query().Get("userId"))
}

func TestBridge_SuperadminQualifies(t *testing.T) {
	bridge, sessions, _ := newBridge(t)

	sessions.emit(&auth.Session{Token: "tok", ID: "s1", Role: auth.RoleSuperadmin})

	assert.Equal(t, StateConnected, bridge.State())
}

func TestBridge_SignOutClosesChannel(t *testing.T) {
	bridge, sessions, dialer := newBridge(t)
	sessions.emit(adminSession("a1"))
	conn := dialer.lastConn()
	require.NotNil(t, conn)

	sessions.emit(nil)

	assert.Equal(t, StateDisconnected, bridge.State())
	assert.True(t, conn.closed(), "channel must not outlive the session")
}

func TestBridge_IdentityChangeReopensChannel(t *testing.T) {
	bridge, sessions, dialer := newBridge(t)
	sessions.emit(adminSession("a1"))
	first := dialer.lastConn()

	sessions.emit(adminSession("a2"))

	assert.True(t, first.closed(), "old identity's channel must close first")
	require.Equal(t, 2, dialer.dialCount())
	dialed, err := url.Parse(dialer.urls[1])
	require.NoError(t, err)
	assert.Equal(t, "a2", dialed.Query().Get("userId"))
	assert.Equal(t, StateConnected, bridge.State())
}

func TestBridge_SameIdentityDoesNotRedial(t *testing.T) {
	_, sessions, dialer := newBridge(t)

	sessions.emit(adminSession("a1"))
	sessions.emit(adminSession("a1"))

	assert.Equal(t, 1, dialer.dialCount())
}

func TestBridge_DialFailureStaysDisconnected(t *testing.T) {
	sessions := &fakeSessions{}
	dialer := &fakeDialer{err: errors.New("refused")}
	bridge := New(Options{BaseURL: "http://localhost:5000", Sessions: sessions, Dialer: dialer})
	bridge.Start()
	t.Cleanup(bridge.Stop)

	sessions.emit(adminSession("a1"))

	assert.Equal(t, StateDisconnected, bridge.State())
	assert.Equal(t, 1, dialer.dialCount(), "no automatic retry")
}

func TestBridge_DispatchesByKind(t *testing.T) {
	bridge, sessions, dialer := newBridge(t)
	sessions.emit(adminSession("a1"))
	conn := dialer.lastConn()
	require.NotNil(t, conn)

	bookings := make(chan model.Notification, 1)
	users := make(chan model.Notification, 1)
	unsubBooking := bridge.Subscribe(model.EventNewBooking, func(n model.Notification) { bookings <- n })
	defer unsubBooking()
	unsubUser := bridge.Subscribe(model.EventNewUser, func(n model.Notification) { users <- n })
	defer unsubUser()

	conn.frames <- []byte(`{"event":"new_booking","payload":{"_id":"b9"}}`)

	select {
	case got := <-bookings:
		assert.Equal(t, model.EventNewBooking, got.Kind)
		assert.JSONEq(t, `{"_id":"b9"}`, string(got.Payload))
	case <-time.After(time.Second):
		t.Fatal("booking handler never ran")
	}
	select {
	case <-users:
		t.Fatal("user handler must not see booking events")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBridge_UnsubscribeStopsDelivery(t *testing.T) {
	bridge, sessions, dialer := newBridge(t)
	sessions.emit(adminSession("a1"))
	conn := dialer.lastConn()

	got := make(chan model.Notification, 2)
	unsub := bridge.Subscribe(model.EventNewUser, func(n model.Notification) { got <- n })

	conn.frames <- []byte(`{"event":"new_user","payload":{}}`)
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}

	unsub()
	conn.frames <- []byte(`{"event":"new_user","payload":{}}`)
	select {
	case <-got:
		t.Fatal("released handler must not fire")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBridge_UndecodableFrameIsSkipped(t *testing.T) {
	bridge, sessions, dialer := newBridge(t)
	sessions.emit(adminSession("a1"))
	conn := dialer.lastConn()

	got := make(chan model.Notification, 1)
	unsub := bridge.Subscribe(model.EventNewBooking, func(n model.Notification) { got <- n })
	defer unsub()

	conn.frames <- []byte(`not json`)
	conn.frames <- []byte(`{"event":"new_booking","payload":{}}`)

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("valid frame after a bad one never dispatched")
	}
	assert.Equal(t, StateConnected, bridge.State())
}

func TestBridge_ReadErrorFlipsStateWithoutRedial(t *testing.T) {
	bridge, sessions, dialer := newBridge(t)
	sessions.emit(adminSession("a1"))
	conn := dialer.lastConn()

	conn.Close()

	require.Eventually(t, func() bool {
		return bridge.State() == StateDisconnected
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, dialer.dialCount(), "a dropped connection never reopens on its own")
}

func TestBridge_StartConnectsForExistingSession(t *testing.T) {
	sessions := &fakeSessions{current: adminSession("a1")}
	dialer := &fakeDialer{}
	bridge := New(Options{BaseURL: "https://api.example.com", Sessions: sessions, Dialer: dialer})

	bridge.Start()
	t.Cleanup(bridge.Stop)

	require.Equal(t, 1, dialer.dialCount())
	dialed, err := url.Parse(dialer.urls[0])
	require.NoError(t, err)
	assert.Equal(t, "wss", dialed.Scheme, "https origins upgrade to wss")
	assert.Equal(t, StateConnected, bridge.State())
}
