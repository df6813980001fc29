// Package httpcache fetches Battle.net pages with optional response caching.
package httpcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/codeGROOVE-dev/sfcache"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/localfs"
)

// UserAgent is sent with every request.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:146.0) Gecko/20100101 Firefox/146.0"

// DefaultTimeout bounds a single request when no client is supplied.
const DefaultTimeout = 10 * time.Second

// Stats tracks cache hit/miss statistics.
type Stats struct {
	Hits   int64
	Misses int64
}

var globalStats atomic.Pointer[Stats]

func init() {
	globalStats.Store(&Stats{})
}

// CacheStats returns the current cache statistics.
func CacheStats() Stats {
	return *globalStats.Load()
}

// ResetStats resets the cache statistics.
func ResetStats() {
	globalStats.Store(&Stats{})
}

func recordHit() {
	for {
		old := globalStats.Load()
		updated := &Stats{Hits: old.Hits + 1, Misses: old.Misses}
		if globalStats.CompareAndSwap(old, updated) {
			return
		}
	}
}

func recordMiss() {
	for {
		old := globalStats.Load()
		updated := &Stats{Hits: old.Hits, Misses: old.Misses + 1}
		if globalStats.CompareAndSwap(old, updated) {
			return
		}
	}
}

// Cacher allows external cache implementations.
type Cacher interface {
	GetSet(ctx context.Context, key string, fetch func(context.Context) ([]byte, error), ttl ...time.Duration) ([]byte, error)
	TTL() time.Duration
}

// Cache wraps sfcache for page caching.
type Cache struct {
	*sfcache.TieredCache[string, []byte]

	ttl time.Duration
}

// New creates a new Cache with disk persistence at ~/.cache/bnetscraper.
func New(ttl time.Duration) (*Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return NewWithPath(ttl, filepath.Join(cacheDir, "bnetscraper"))
}

// NewWithPath creates a new Cache with disk persistence at the specified path.
func NewWithPath(ttl time.Duration, cachePath string) (*Cache, error) {
	if err := os.MkdirAll(cachePath, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	persist, err := localfs.New[string, []byte]("bnetscraper", cachePath)
	if err != nil {
		return nil, fmt.Errorf("create persistence layer: %w", err)
	}

	tc, err := sfcache.NewTiered[string, []byte](persist, sfcache.TTL(ttl))
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &Cache{TieredCache: tc, ttl: ttl}, nil
}

// TTL returns the default TTL for cache entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// URLToKey converts a URL to a cache key using SHA256 hash.
func URLToKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(hash[:])
}

// HTTPError represents a non-2xx response.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// Success reports whether status is in the 2xx range.
func Success(status int) bool {
	return status >= 200 && status < 300
}

// Fetcher issues GET requests. The zero value is usable: it makes one attempt
// per request, caches nothing, and uses a client with DefaultTimeout.
type Fetcher struct {
	Client *http.Client
	Cache  Cacher
	Logger *slog.Logger

	// Limiter spaces requests to the same host. Nil disables it.
	Limiter *HostLimiter

	// Attempts is the total number of tries for transient failures.
	// Values below 2 disable retrying.
	Attempts uint
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: DefaultTimeout}
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

// Get fetches rawURL and returns the body of a 2xx response.
// Any other status yields an *HTTPError.
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := newRequest(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	logger := f.logger()

	if f.Cache == nil {
		logger.DebugContext(ctx, "cache disabled", "url", rawURL)
		recordMiss()
		return f.doFetch(ctx, req)
	}

	var wasFetched bool
	data, err := f.Cache.GetSet(ctx, URLToKey(rawURL), func(ctx context.Context) ([]byte, error) {
		wasFetched = true
		recordMiss()
		logger.InfoContext(ctx, "CACHE MISS", "url", rawURL)
		body, fetchErr := f.doFetch(ctx, req)
		if fetchErr != nil {
			// Cache permanent HTTP errors to avoid hammering the armory.
			// Transient ones (5xx, 429) are returned uncached.
			var httpErr *HTTPError
			if errors.As(fetchErr, &httpErr) && !isRetryableError(httpErr) {
				return fmt.Appendf(nil, "ERROR:%d", httpErr.StatusCode), nil
			}
			// Network errors are not cached.
			return nil, fetchErr
		}
		return body, nil
	}, f.Cache.TTL())
	if err != nil {
		return nil, err
	}

	if !wasFetched {
		recordHit()
		logger.DebugContext(ctx, "cache hit", "url", rawURL)
	}

	if errCode, found := strings.CutPrefix(string(data), "ERROR:"); found {
		code, _ := strconv.Atoi(errCode) //nolint:errcheck // 0 is acceptable default
		return nil, &HTTPError{StatusCode: code, URL: rawURL}
	}
	return data, nil
}

// Probe issues a single uncached GET and returns the response status.
// Network failures are returned as errors.
func (f *Fetcher) Probe(ctx context.Context, rawURL string) (int, error) {
	req, err := newRequest(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	f.logger().DebugContext(ctx, "probing", "url", rawURL)
	if err := f.Limiter.Wait(ctx, rawURL); err != nil {
		return 0, err
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close() //nolint:errcheck // intentional

	_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
	return resp.StatusCode, nil
}

func newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	return req, nil
}

func (f *Fetcher) doFetch(ctx context.Context, req *http.Request) ([]byte, error) {
	attempts := max(f.Attempts, 1)
	client := f.client()
	logger := f.logger()

	return retry.DoWithData(
		func() ([]byte, error) {
			if err := f.Limiter.Wait(ctx, req.URL.String()); err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close() //nolint:errcheck // intentional

			if !Success(resp.StatusCode) {
				return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.String()}
			}

			return io.ReadAll(resp.Body)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(200*time.Millisecond),
		retry.MaxJitter(100*time.Millisecond),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			logger.DebugContext(ctx, "retrying HTTP request", "attempt", n+1, "url", req.URL.String(), "error", err)
		}),
	)
}

// isRetryableError returns true for transient errors that should be retried.
func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
	return true
}
