// Package bnetscraper provides a unified API for scraping StarCraft II accounts
// from the Battle.net armory.
//
// Basic usage:
//
//	p, err := bnetscraper.FullProfileScrape(ctx, "2377239", "Demon", "us")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, lg := range p.Leagues {
//	    fmt.Println(lg.Size, lg.League, lg.Division)
//	}
//
// Or use the page client directly:
//
//	import "github.com/codeGROOVE-dev/bnetscraper/pkg/starcraft2"
//	client, _ := starcraft2.New(ctx)
//	acct, _ := starcraft2.NewAccount(starcraft2.Ref{URL: "http://us.battle.net/sc2/en/profile/2377239/1/Demon/"})
//	p, _ := client.Profile(ctx, acct)
package bnetscraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/bnetscraper/pkg/httpcache"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/starcraft2"
	"golang.org/x/sync/errgroup"
)

type (
	// Profile re-exports profile.Profile for convenience.
	Profile = profile.Profile
	// League re-exports profile.League for convenience.
	League = profile.League
	// Ref re-exports starcraft2.Ref for convenience.
	Ref = starcraft2.Ref
	// LeagueRef re-exports starcraft2.LeagueRef for convenience.
	LeagueRef = starcraft2.LeagueRef
	// Page re-exports starcraft2.Page for convenience.
	Page = starcraft2.Page
	// HTTPCache re-exports httpcache.Cache for convenience.
	HTTPCache = httpcache.Cache
)

// Re-export common errors.
var (
	ErrInvalidReference   = profile.ErrInvalidReference
	ErrUnresolvableRegion = profile.ErrUnresolvableRegion
	ErrUnknownHost        = profile.ErrUnknownHost
	ErrProfileNotFound    = profile.ErrProfileNotFound
	ErrNotImplemented     = profile.ErrNotImplemented
	ErrUnexpectedMarkup   = profile.ErrUnexpectedMarkup
)

// Option configures a scrape call.
type Option func(*config)

type config struct {
	cache       httpcache.Cacher
	logger      *slog.Logger
	httpClient  *http.Client
	timeout     time.Duration
	rateLimit   time.Duration
	retries     uint
	concurrency int
}

// WithHTTPCache sets the HTTP cache for responses.
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

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithRetries sets the total attempts per page fetch. The default is 1.
func WithRetries(attempts uint) Option {
	return func(c *config) { c.retries = attempts }
}

// WithRateLimit spaces requests to the same host by at least d.
func WithRateLimit(d time.Duration) Option {
	return func(c *config) { c.rateLimit = d }
}

// WithConcurrency sets how many league pages a full scrape fetches at once.
// Values below 2 keep the scrape sequential. Results keep link order either way.
func WithConcurrency(n int) Option {
	return func(c *config) { c.concurrency = n }
}

func newClient(ctx context.Context, opts []Option) (*starcraft2.Client, *config, error) {
	cfg := &config{logger: slog.Default(), concurrency: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	clientOpts := []starcraft2.Option{starcraft2.WithLogger(cfg.logger)}
	if cfg.cache != nil {
		clientOpts = append(clientOpts, starcraft2.WithHTTPCache(cfg.cache))
	}
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, starcraft2.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout != 0 {
		clientOpts = append(clientOpts, starcraft2.WithTimeout(cfg.timeout))
	}
	if cfg.rateLimit > 0 {
		clientOpts = append(clientOpts, starcraft2.WithRateLimit(cfg.rateLimit))
	}
	if cfg.retries > 0 {
		clientOpts = append(clientOpts, starcraft2.WithRetries(cfg.retries))
	}

	client, err := starcraft2.New(ctx, clientOpts...)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// FullProfileScrape scrapes an account's profile and then every league it
// links to. The returned profile carries Leagues in link order and no
// LeagueLinks. Any failure aborts the scrape and no profile is returned.
// An empty gateway means "us".
func FullProfileScrape(ctx context.Context, bnetID, name, gateway string, opts ...Option) (*profile.Profile, error) {
	client, cfg, err := newClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	if gateway == "" {
		gateway = starcraft2.DefaultGateway
	}

	acct, err := starcraft2.NewAccount(starcraft2.Ref{BnetID: bnetID, Name: name, Gateway: gateway})
	if err != nil {
		return nil, err
	}

	p, err := client.Profile(ctx, acct) //nolint:varnamelen // p is idiomatic for profile
	if err != nil {
		return nil, err
	}

	leagues, err := scrapeLeagues(ctx, client, p.LeagueLinks, cfg.concurrency)
	if err != nil {
		return nil, err
	}
	cfg.logger.InfoContext(ctx, "full profile scraped", "url", p.URL, "leagues", len(leagues))

	p.Leagues = leagues
	p.LeagueLinks = nil
	return p, nil
}

// scrapeLeagues fetches each linked league, writing results by index so the
// output order matches links regardless of concurrency.
func scrapeLeagues(ctx context.Context, client *starcraft2.Client, links []profile.LeagueLink, concurrency int) ([]profile.League, error) {
	if len(links) == 0 {
		return nil, nil
	}
	out := make([]profile.League, len(links))

	if concurrency < 2 {
		for i, link := range links {
			lg, err := client.League(ctx, starcraft2.LeagueRef{Ref: starcraft2.Ref{URL: link.Href}})
			if err != nil {
				return nil, fmt.Errorf("league %s: %w", link.ID, err)
			}
			out[i] = *lg
		}
		return out, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, link := range links {
		g.Go(func() error {
			lg, err := client.League(gCtx, starcraft2.LeagueRef{Ref: starcraft2.Ref{URL: link.Href}})
			if err != nil {
				return fmt.Errorf("league %s: %w", link.ID, err)
			}
			out[i] = *lg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidProfile reports whether the referenced profile page exists.
func ValidProfile(ctx context.Context, ref starcraft2.Ref, opts ...Option) (bool, error) {
	acct, err := starcraft2.NewAccount(ref)
	if err != nil {
		return false, err
	}
	client, _, err := newClient(ctx, opts)
	if err != nil {
		return false, err
	}
	return client.Valid(ctx, acct)
}

// Scrape scrapes a single page type. See starcraft2.Pages for the supported pages.
func Scrape(ctx context.Context, page starcraft2.Page, ref starcraft2.LeagueRef, opts ...Option) (any, error) {
	client, _, err := newClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	return client.Scrape(ctx, page, ref)
}
