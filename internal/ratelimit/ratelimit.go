// Package ratelimit provides a sliding-window request limiter.
package ratelimit

import (
	"sync"
	"time"
)

// State is a snapshot of limiter usage, suitable for response metadata.
type State struct {
	Current    int `json:"current"`
	Limit      int `json:"limit"`
	Remaining  int `json:"remaining"`
	ResetIn    int `json:"reset_in"`
	RetryAfter int `json:"retry_after,omitempty"`
}

// Limiter tracks request timestamps in a sliding window, oldest first.
// Eviction only removes from the front, so Admit is O(1) amortized.
// State is process-lifetime only; nothing is shared across restarts or
// processes. Safe for concurrent use.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	stamps []time.Time
	now    func() time.Time
}

// New creates a limiter allowing max requests per window.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Admit evicts expired timestamps, then either rejects (window full) or
// records the current request and admits it. On rejection the returned
// State carries a retry-after estimate in whole seconds.
func (l *Limiter) Admit() (bool, State) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	if len(l.stamps) >= l.max {
		st := l.state(now)
		st.RetryAfter = st.ResetIn
		return false, st
	}

	l.stamps = append(l.stamps, now)
	return true, l.state(now)
}

// Snapshot returns current usage without recording a request.
func (l *Limiter) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)
	return l.state(now)
}

func (l *Limiter) evict(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	l.stamps = l.stamps[i:]
}

// state must be called with the mutex held and the window already evicted.
func (l *Limiter) state(now time.Time) State {
	st := State{
		Current:   len(l.stamps),
		Limit:     l.max,
		Remaining: l.max - len(l.stamps),
	}
	if st.Remaining < 0 {
		st.Remaining = 0
	}
	if len(l.stamps) > 0 {
		until := l.stamps[0].Add(l.window).Sub(now)
		st.ResetIn = int((until + time.Second - 1) / time.Second)
		if st.ResetIn < 0 {
			st.ResetIn = 0
		}
	}
	return st
}
