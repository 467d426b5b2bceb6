package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Waiter is the limiter surface lookup clients depend on.
type Waiter interface {
	Wait(ctx context.Context, source string) error
}

// Limiter spaces out calls per source identifier.
type Limiter struct {
	mu        sync.Mutex
	intervals map[string]time.Duration
	lastCall  map[string]time.Time
	now       func() time.Time
	sleep     func(context.Context, time.Duration) error
}

// New creates a Limiter with no registered sources.
func New() *Limiter {
	return &Limiter{
		intervals: make(map[string]time.Duration),
		lastCall:  make(map[string]time.Time),
		now:       time.Now,
		sleep:     SleepWithContext,
	}
}

// SetInterval registers the minimum interval for a source. A zero or negative
// interval disables limiting for that source.
func (l *Limiter) SetInterval(source string, interval time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intervals[source] = interval
}

// Wait blocks until at least the configured interval has elapsed since the
// previous Wait for the same source, then records the call.
func (l *Limiter) Wait(ctx context.Context, source string) error {
	l.mu.Lock()
	interval := l.intervals[source]
	last, seen := l.lastCall[source]
	now := l.now()

	var wait time.Duration
	if seen && interval > 0 {
		if elapsed := now.Sub(last); elapsed < interval {
			wait = interval - elapsed
		}
	}
	l.lastCall[source] = now.Add(wait)
	l.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	return l.sleep(ctx, wait)
}

// SleepWithContext blocks for the given duration, returning early if the
// context is cancelled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
