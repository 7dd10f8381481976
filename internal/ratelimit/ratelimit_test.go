package ratelimit

import (
	"testing"
	"time"
)

// fakeClock lets tests advance time deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(max int, window time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := New(max, window)
	l.now = clock.now
	return l, clock
}

func TestAdmitWithinLimit(t *testing.T) {
	l, clock := newTestLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		ok, st := l.Admit()
		if !ok {
			t.Fatalf("Request %d should be admitted", i+1)
		}
		if st.Current != i+1 {
			t.Errorf("Expected current %d, got %d", i+1, st.Current)
		}
		clock.advance(100 * time.Millisecond)
	}

	ok, st := l.Admit()
	if ok {
		t.Fatal("Fourth request within the window should be rejected")
	}
	if st.RetryAfter <= 0 {
		t.Errorf("Rejected request should carry a positive retry-after, got %d", st.RetryAfter)
	}
	if st.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", st.Remaining)
	}
}

func TestAdmitAfterWindowElapses(t *testing.T) {
	l, clock := newTestLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		if ok, _ := l.Admit(); !ok {
			t.Fatalf("Request %d should be admitted", i+1)
		}
	}
	if ok, _ := l.Admit(); ok {
		t.Fatal("Request over the limit should be rejected")
	}

	clock.advance(time.Second + time.Millisecond)

	ok, st := l.Admit()
	if !ok {
		t.Fatal("Request after the window elapsed should be admitted")
	}
	if st.Current != 1 {
		t.Errorf("Expected current 1 after eviction, got %d", st.Current)
	}
}

func TestRetryAfterEstimate(t *testing.T) {
	l, clock := newTestLimiter(1, time.Minute)

	if ok, _ := l.Admit(); !ok {
		t.Fatal("First request should be admitted")
	}

	clock.advance(30 * time.Second)
	ok, st := l.Admit()
	if ok {
		t.Fatal("Second request should be rejected")
	}
	// 30s of a 60s window remain, rounded up.
	if st.RetryAfter != 30 {
		t.Errorf("Expected retry-after 30, got %d", st.RetryAfter)
	}
}

func TestSnapshotDoesNotConsume(t *testing.T) {
	l, _ := newTestLimiter(2, time.Minute)

	l.Admit()
	if st := l.Snapshot(); st.Current != 1 {
		t.Errorf("Expected snapshot current 1, got %d", st.Current)
	}
	for i := 0; i < 10; i++ {
		l.Snapshot()
	}
	if ok, _ := l.Admit(); !ok {
		t.Fatal("Snapshot must not count against the limit")
	}
}

func TestConcurrentAdmitNeverOverAdmits(t *testing.T) {
	l := New(10, time.Minute)

	results := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		go func() {
			ok, _ := l.Admit()
			results <- ok
		}()
	}

	admitted := 0
	for i := 0; i < 100; i++ {
		if <-results {
			admitted++
		}
	}
	if admitted != 10 {
		t.Errorf("Expected exactly 10 admitted, got %d", admitted)
	}
}
