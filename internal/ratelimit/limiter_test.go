package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClock drives the limiter deterministically: sleeps advance the clock
// instead of blocking.
type fakeClock struct {
	current time.Time
	slept   []time.Duration
}

func newFakeLimiter() (*Limiter, *fakeClock) {
	clock := &fakeClock{current: time.Unix(1000, 0)}
	l := New()
	l.now = func() time.Time { return clock.current }
	l.sleep = func(_ context.Context, d time.Duration) error {
		clock.slept = append(clock.slept, d)
		clock.current = clock.current.Add(d)
		return nil
	}
	return l, clock
}

func TestWaitSpacesCallsPerSource(t *testing.T) {
	l, clock := newFakeLimiter()
	l.SetInterval("pubchem", 200*time.Millisecond)

	if err := l.Wait(context.Background(), "pubchem"); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}
	if len(clock.slept) != 0 {
		t.Fatalf("first call should not sleep, slept %v", clock.slept)
	}

	clock.current = clock.current.Add(50 * time.Millisecond)
	if err := l.Wait(context.Background(), "pubchem"); err != nil {
		t.Fatalf("second Wait failed: %v", err)
	}
	if len(clock.slept) != 1 || clock.slept[0] != 150*time.Millisecond {
		t.Fatalf("expected 150ms sleep, got %v", clock.slept)
	}
}

func TestWaitIsolatesSources(t *testing.T) {
	l, clock := newFakeLimiter()
	l.SetInterval("pubchem", time.Second)
	l.SetInterval("wikidata", time.Second)

	if err := l.Wait(context.Background(), "pubchem"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if err := l.Wait(context.Background(), "wikidata"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if len(clock.slept) != 0 {
		t.Fatalf("distinct sources should not delay each other, slept %v", clock.slept)
	}
}

func TestWaitUnregisteredSourceNeverSleeps(t *testing.T) {
	l, clock := newFakeLimiter()
	for i := 0; i < 3; i++ {
		if err := l.Wait(context.Background(), "cactus"); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	if len(clock.slept) != 0 {
		t.Fatalf("unregistered source slept %v", clock.slept)
	}
}

func TestSleepWithContextHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := SleepWithContext(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
