package listctl

// Package listctl implements the shared list screen behavior: debounced
// search, immediate pagination with bounds clamping, a monotonic guard that
// drops stale responses, and optimistic mutations. Every resource list in
// the console runs on one Controller instance parameterized by its row type.

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Query is one page request as the fetcher sees it.
type Query struct {
	Page   int
	Limit  int
	Search string
}

// Page is one fetched page plus its server-reported shape.
type Page[T any] struct {
	Items     []T
	Page      int
	Limit     int
	Total     int
	PageCount int
}

// Fetcher loads one page of rows.
type Fetcher[T any] func(ctx context.Context, q Query) (Page[T], error)

// State is a consistent snapshot of the list.
type State[T any] struct {
	Items     []T
	Page      int
	Limit     int
	Total     int
	PageCount int
	Search    string
	Loading   bool
	Err       error
	// Loaded reports whether at least one fetch has resolved. Screens show
	// their skeleton until then and keep previous rows on later failures.
	Loaded bool
}

// Mutation describes an optimistic local change paired with its backend
// call. Patch transforms matched rows; a nil Patch removes them.
type Mutation[T any] struct {
	Match Matcher[T]
	Patch func(T) T
	Do    func(ctx context.Context) error
	// OnError receives the backend failure. The local change is never
	// rolled back; callers refresh to re-sync.
	OnError func(error)
}

// Matcher selects rows a mutation applies to.
type Matcher[T any] func(T) bool

// Options configures a Controller.
type Options[T any] struct {
	Fetch Fetcher[T]
	// Limit is the fixed page size sent with every query.
	Limit int
	// Debounce is how long search input must settle before a fetch fires.
	Debounce time.Duration
	Logger   *slog.Logger
	// OnChange observes every state transition. Optional; invoked outside
	// the controller lock with a snapshot.
	OnChange func(State[T])
}

// Controller drives one resource list.
type Controller[T any] struct {
	fetch    Fetcher[T]
	limit    int
	debounce time.Duration
	logger   *slog.Logger
	onChange func(State[T])

	mu      sync.Mutex
	state   State[T]
	seq     uint64
	pending *time.Timer
	closed  bool
}

// New constructs a Controller. No fetch happens until Reload, SetSearch, or
// SetPage is called.
func New[T any](opts Options[T]) *Controller[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	return &Controller[T]{
		fetch:    opts.Fetch,
		limit:    limit,
		debounce: opts.Debounce,
		logger:   logger,
		onChange: opts.OnChange,
		state:    State[T]{Page: 1, Limit: limit},
	}
}

// State returns a snapshot; Items is shared and must be treated read-only.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reload fetches the current page and search immediately.
func (c *Controller[T]) Reload(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelPendingLocked()
	q := Query{Page: c.state.Page, Limit: c.limit, Search: c.state.Search}
	seq := c.beginFetchLocked()
	c.mu.Unlock()

	c.runFetch(ctx, seq, q)
}

// SetSearch records the new term and schedules a fetch of page one after the
// debounce interval. Each keystroke restarts the clock, so only the settled
// value reaches the backend.
func (c *Controller[T]) SetSearch(ctx context.Context, term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.state.Search = term
	c.state.Page = 1
	c.cancelPendingLocked()

	if c.debounce <= 0 {
		q := Query{Page: 1, Limit: c.limit, Search: term}
		seq := c.beginFetchLocked()
		go c.runFetch(ctx, seq, q)
		return
	}

	c.pending = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		q := Query{Page: 1, Limit: c.limit, Search: c.state.Search}
		seq := c.beginFetchLocked()
		c.mu.Unlock()
		c.runFetch(ctx, seq, q)
	})
}

// SetPage navigates immediately, clamping the target into the known range.
// A request for a page past the end fetches the last page instead of
// surfacing an empty screen.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelPendingLocked()

	page = clampPage(page, c.state.PageCount)
	c.state.Page = page
	q := Query{Page: page, Limit: c.limit, Search: c.state.Search}
	seq := c.beginFetchLocked()
	c.mu.Unlock()

	c.runFetch(ctx, seq, q)
}

// Apply runs a mutation: the local change lands first, the backend call
// follows. On backend failure the rows keep the optimistic shape and the
// error goes to OnError; the controller never rolls back.
func (c *Controller[T]) Apply(ctx context.Context, m Mutation[T]) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	items := make([]T, 0, len(c.state.Items))
	removed := 0
	for _, item := range c.state.Items {
		if m.Match != nil && m.Match(item) {
			if m.Patch == nil {
				removed++
				continue
			}
			item = m.Patch(item)
		}
		items = append(items, item)
	}
	c.state.Items = items
	if removed > 0 {
		c.state.Total -= removed
		if c.state.Total < 0 {
			c.state.Total = 0
		}
		c.state.PageCount = pageCount(c.state.Total, c.limit)
		// Removing the last rows of the final page shrinks the range; the
		// current page must follow so a later fetch never targets past the end.
		c.state.Page = clampPage(c.state.Page, c.state.PageCount)
	}
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)

	if m.Do == nil {
		return
	}
	if err := m.Do(ctx); err != nil {
		c.logger.WarnContext(ctx, "list mutation failed after local apply", "error", err)
		if m.OnError != nil {
			m.OnError(err)
		}
	}
}

// Close cancels any pending debounce and makes every later fetch a no-op.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.cancelPendingLocked()
	c.seq++
}

// beginFetchLocked claims the next sequence number and flips Loading. Any
// in-flight response with an older number will be discarded on arrival.
func (c *Controller[T]) beginFetchLocked() uint64 {
	c.seq++
	c.state.Loading = true
	return c.seq
}

func (c *Controller[T]) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// runFetch executes one page load and commits the result only if it is
// still the newest request. Responses racing in out of order therefore can
// never clobber fresher rows.
func (c *Controller[T]) runFetch(ctx context.Context, seq uint64, q Query) {
	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.state.Loading = false
	c.state.Loaded = true
	if err != nil {
		// Previous rows stay on screen; only the error slot changes.
		c.state.Err = err
		snapshot := c.state
		c.mu.Unlock()
		c.logger.WarnContext(ctx, "list fetch failed", "page", q.Page, "search", q.Search, "error", err)
		c.notify(snapshot)
		return
	}

	c.state.Err = nil
	c.state.Items = page.Items
	c.state.Total = page.Total
	if page.Page > 0 {
		c.state.Page = page.Page
	}
	if page.PageCount > 0 {
		c.state.PageCount = page.PageCount
	} else {
		c.state.PageCount = pageCount(page.Total, c.limit)
	}
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
}

func (c *Controller[T]) notify(s State[T]) {
	if c.onChange != nil {
		c.onChange(s)
	}
}

// clampPage bounds a requested page to [1, max(pageCount, 1)].
func clampPage(page, count int) int {
	if count < 1 {
		count = 1
	}
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

func pageCount(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
