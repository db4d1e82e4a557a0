// Package ratelimit provides per-client request limiting for the HTTP
// layer. The server depends only on the Limiter capability so that a
// multi-process deployment can substitute an implementation backed by a
// shared store.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Unlimited is a Limiter that admits everything.
type Unlimited struct{}

func (Unlimited) Allow(string) bool { return true }

// Window is an in-memory sliding-window Limiter: at most Limit requests
// per key within the trailing window. Safe for concurrent use.
type Window struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

// Status is a point-in-time snapshot of limiter state.
type Status struct {
	Limit      int           `json:"limit"`
	Window     time.Duration `json:"window"`
	ActiveKeys int           `json:"active_keys"`
}

// NewWindow creates a sliding-window limiter admitting limit requests
// per key over the given window.
func NewWindow(limit int, window time.Duration) *Window {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Hour
	}
	return &Window{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow records a request for key and reports whether it is within the
// limit. Denied requests are not recorded.
func (w *Window) Allow(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	cutoff := now.Add(-w.window)

	recent := w.hits[key][:0]
	for _, t := range w.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= w.limit {
		w.hits[key] = recent
		return false
	}

	w.hits[key] = append(recent, now)
	return true
}

// Prune drops keys with no requests inside the window. Callers may run
// it periodically to bound memory on long-lived servers.
func (w *Window) Prune() {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := w.now().Add(-w.window)
	for key, times := range w.hits {
		live := false
		for _, t := range times {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(w.hits, key)
		}
	}
}

// Status returns the current limiter state.
func (w *Window) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Status{Limit: w.limit, Window: w.window, ActiveKeys: len(w.hits)}
}
