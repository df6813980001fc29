// Package starcraft2 scrapes StarCraft II account pages from the Battle.net armory.
//
// Accounts are resolved from a profile URL or from discrete fields:
//
//	acct, _ := starcraft2.NewAccount(starcraft2.Ref{URL: "http://us.battle.net/sc2/en/profile/2377239/1/Demon/"})
//	acct, _ := starcraft2.NewAccount(starcraft2.Ref{BnetID: "2377239", Name: "Demon"})
//
// Each page type has its own Client method (Profile, League, Achievements,
// MatchHistory, Status). Scrape dispatches by Page tag.
package starcraft2

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/htmlutil"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/httpcache"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
)

// Client handles armory requests.
type Client struct {
	fetcher *httpcache.Fetcher
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*config)

type config struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	timeout    time.Duration
	rateLimit  time.Duration
	attempts   uint
}

// WithHTTPCache sets the HTTP cache. Pages are not cached by default.
func WithHTTPCache(httpCache httpcache.Cacher) Option {
	return func(c *config) { c.cache = httpCache }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithHTTPClient replaces the HTTP client used for every request.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) { c.httpClient = client }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithRetries sets the total attempts for transient page fetch failures.
// The default of 1 never retries. Liveness probes are never retried.
func WithRetries(attempts uint) Option {
	return func(c *config) { c.attempts = attempts }
}

// WithRateLimit spaces requests to the same host by at least d.
func WithRateLimit(d time.Duration) Option {
	return func(c *config) { c.rateLimit = d }
}

// New creates an armory client.
func New(_ context.Context, opts ...Option) (*Client, error) {
	cfg := &config{
		logger:   slog.Default(),
		timeout:  httpcache.DefaultTimeout,
		attempts: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.timeout < 0 {
		return nil, fmt.Errorf("negative timeout %v", cfg.timeout)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		fetcher: &httpcache.Fetcher{
			Client:   httpClient,
			Cache:    cfg.cache,
			Logger:   cfg.logger,
			Limiter:  httpcache.NewHostLimiter(cfg.rateLimit),
			Attempts: cfg.attempts,
		},
		logger: cfg.logger,
	}, nil
}

// Valid reports whether the account's canonical profile page responds with a
// 2xx status. Network failures are returned as errors, not as false.
func (c *Client) Valid(ctx context.Context, acct *Account) (bool, error) {
	u := acct.ProfileURL()
	status, err := c.fetcher.Probe(ctx, u)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", u, err)
	}
	c.logger.DebugContext(ctx, "profile liveness", "url", u, "status", status)
	return httpcache.Success(status), nil
}

// document fetches a page and parses it. Non-2xx responses and armory error
// pages fail with profile.ErrProfileNotFound.
func (c *Client) document(ctx context.Context, page Page, rawURL string) (*goquery.Document, error) {
	c.logger.InfoContext(ctx, "fetching sc2 page", "page", string(page), "url", rawURL)

	body, err := c.fetcher.Get(ctx, rawURL)
	if err != nil {
		var httpErr *httpcache.HTTPError
		if errors.As(err, &httpErr) {
			return nil, fmt.Errorf("%w: %w", profile.ErrProfileNotFound, err)
		}
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	if htmlutil.IsNotFound(htmlutil.SelectText(doc, "title")) {
		return nil, fmt.Errorf("%w: armory error page at %s", profile.ErrProfileNotFound, rawURL)
	}
	return doc, nil
}
