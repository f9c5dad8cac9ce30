package resilience

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

var errRegistryDown = errors.New("registry down")

func failing() error { return errRegistryDown }

func succeeding() error { return nil }

func TestBreaker_TripsAndRecovers(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenTrials: 1})

	now := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Call(failing, nil); !errors.Is(err, errRegistryDown) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if state := b.State(); state != BreakerClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}
	_ = b.Call(failing, nil)
	if state := b.State(); state != BreakerOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	called := false
	err := b.Call(func() error { called = true; return nil }, nil)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open, got %v", err)
	}
	if called {
		t.Fatalf("open breaker must not run the call")
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != BreakerHalfOpen {
		t.Fatalf("expected half-open after timeout, got %s", state)
	}
	if err := b.Call(succeeding, nil); err != nil {
		t.Fatalf("expected trial to pass, got %v", err)
	}
	if state := b.State(); state != BreakerClosed {
		t.Fatalf("expected closed after successful trial, got %s", state)
	}
}

func TestBreaker_FailedTrialReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenTrials: 1})
	now := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	_ = b.Call(failing, nil)
	now = now.Add(2 * time.Second)
	_ = b.Call(failing, nil)
	if state := b.State(); state != BreakerOpen {
		t.Fatalf("expected open after failed trial, got %s", state)
	}
}

func TestBreaker_IgnoresNonFailures(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1})
	notFailure := func(error) bool { return false }

	for i := 0; i < 3; i++ {
		if err := b.Call(failing, notFailure); !errors.Is(err, errRegistryDown) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	}
	if state := b.State(); state != BreakerClosed {
		t.Fatalf("expected closed, got %s", state)
	}
}

func TestBreaker_DisabledAndNil(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		_ = b.Call(failing, nil)
	}
	if err := b.Call(succeeding, nil); err != nil {
		t.Fatalf("disabled breaker must allow calls, got %v", err)
	}

	var nilBreaker *Breaker
	if err := nilBreaker.Call(succeeding, nil); err != nil {
		t.Fatalf("nil breaker must allow calls, got %v", err)
	}
	if state := nilBreaker.State(); state != BreakerClosed {
		t.Fatalf("expected closed for nil breaker, got %s", state)
	}
}
