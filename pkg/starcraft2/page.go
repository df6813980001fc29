package starcraft2

import (
	"context"
	"fmt"
	"slices"

	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
)

// Page names a scrapeable page type.
type Page string

// Page types. PageBase is the bare identity and has no page of its own.
const (
	PageBase         Page = ""
	PageProfile      Page = "profile"
	PageLeague       Page = "league"
	PageAchievements Page = "achievements"
	PageMatches      Page = "matches"
	PageStatus       Page = "status"
)

// ScrapeFunc scrapes one page type for a reference.
type ScrapeFunc func(ctx context.Context, c *Client, ref LeagueRef) (any, error)

// pages maps each page type to its scraper. Every page type must supply one.
var pages = map[Page]ScrapeFunc{
	PageProfile: func(ctx context.Context, c *Client, ref LeagueRef) (any, error) {
		acct, err := NewAccount(ref.Ref)
		if err != nil {
			return nil, err
		}
		return c.Profile(ctx, acct)
	},
	PageLeague: func(ctx context.Context, c *Client, ref LeagueRef) (any, error) {
		return c.League(ctx, ref)
	},
	PageAchievements: func(ctx context.Context, c *Client, ref LeagueRef) (any, error) {
		acct, err := NewAccount(ref.Ref)
		if err != nil {
			return nil, err
		}
		return c.Achievements(ctx, acct)
	},
	PageMatches: func(ctx context.Context, c *Client, ref LeagueRef) (any, error) {
		acct, err := NewAccount(ref.Ref)
		if err != nil {
			return nil, err
		}
		return c.MatchHistory(ctx, acct)
	},
	PageStatus: func(ctx context.Context, c *Client, ref LeagueRef) (any, error) {
		return c.Status(ctx, ref.Gateway)
	},
}

// Pages returns the page types that can be scraped, sorted by name.
func Pages() []Page {
	out := make([]Page, 0, len(pages))
	for p := range pages {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Scrape dispatches to the scraper for page. PageBase and unknown pages fail
// with profile.ErrNotImplemented.
func (c *Client) Scrape(ctx context.Context, page Page, ref LeagueRef) (any, error) {
	fn, ok := pages[page]
	if !ok {
		return nil, fmt.Errorf("%w: page %q", profile.ErrNotImplemented, page)
	}
	return fn(ctx, c, ref)
}
