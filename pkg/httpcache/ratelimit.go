package httpcache

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// HostLimiter enforces a minimum delay between requests to the same host.
// It is safe for concurrent use. A nil *HostLimiter never waits.
type HostLimiter struct {
	lastRequest map[string]time.Time
	mu          sync.Mutex
	minDelay    time.Duration
}

// NewHostLimiter returns a limiter spacing requests to each host by minDelay.
// It returns nil when minDelay is not positive.
func NewHostLimiter(minDelay time.Duration) *HostLimiter {
	if minDelay <= 0 {
		return nil
	}
	return &HostLimiter{minDelay: minDelay, lastRequest: make(map[string]time.Time)}
}

// Wait blocks until a request to rawURL's host may be sent, or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	if l == nil {
		return nil
	}
	host := hostOf(rawURL)
	if host == "" {
		return nil
	}

	// Reserve the next slot under the lock, then sleep outside it.
	l.mu.Lock()
	now := time.Now()
	slot := now
	if last, ok := l.lastRequest[host]; ok && last.Add(l.minDelay).After(now) {
		slot = last.Add(l.minDelay)
	}
	l.lastRequest[host] = slot
	l.mu.Unlock()

	wait := slot.Sub(now)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
