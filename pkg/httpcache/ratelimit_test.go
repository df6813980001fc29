package httpcache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHostLimiterNil(t *testing.T) {
	if l := NewHostLimiter(0); l != nil {
		t.Fatalf("NewHostLimiter(0) = %v, want nil", l)
	}
	var l *HostLimiter
	if err := l.Wait(context.Background(), "http://us.battle.net/sc2/en/status"); err != nil {
		t.Errorf("nil Wait() error = %v", err)
	}
}

func TestHostLimiterSpacing(t *testing.T) {
	const delay = 50 * time.Millisecond
	l := NewHostLimiter(delay)
	ctx := context.Background()

	start := time.Now()
	for range 3 {
		if err := l.Wait(ctx, "http://us.battle.net/sc2/en/status"); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 2*delay {
		t.Errorf("three requests took %v, want at least %v", elapsed, 2*delay)
	}

	start = time.Now()
	if err := l.Wait(ctx, "http://eu.battle.net/sc2/en/status"); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed >= delay {
		t.Errorf("first request to a new host waited %v", elapsed)
	}
}

func TestHostLimiterContext(t *testing.T) {
	l := NewHostLimiter(time.Hour)
	if err := l.Wait(context.Background(), "http://kr.battle.net/"); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Wait(ctx, "http://kr.battle.net/"); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}
