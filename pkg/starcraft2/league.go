package starcraft2

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/codeGROOVE-dev/bnetscraper/pkg/htmlutil"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
)

const leagueHeaderSelector = ".data-title .data-label h3"

var (
	ladderIDPattern = regexp.MustCompile(`/profile/[^/]+/\d/[^/]+/ladder/([^/#?]+)`)

	// "<season> - <NvN>[ Random] <League> Division <Division>".
	leagueHeaderPattern = regexp.MustCompile(`^(.+) -\s+(\d+v\d+)( Random)? (\w+)\s+Division (.+)$`)
)

// LeagueRef identifies one league page. Either Ref.URL is a league URL, or
// Ref names the account and LeagueID names the league.
type LeagueRef struct {
	Ref

	LeagueID string `json:"league_id,omitempty"`
}

// LeagueID extracts the league ID from a league page URL such as
// http://us.battle.net/sc2/en/profile/2377239/1/Demon/ladder/12345#current-rank.
func LeagueID(rawURL string) (string, bool) {
	m := ladderIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// leagueTarget resolves a league reference into its account, ID and page URL.
func leagueTarget(ref LeagueRef) (acct *Account, id, pageURL string, err error) {
	acct, err = NewAccount(ref.Ref)
	if err != nil {
		return nil, "", "", err
	}

	if ref.URL != "" {
		id, ok := LeagueID(ref.URL)
		if !ok {
			return nil, "", "", fmt.Errorf("%w: no league in URL %q", profile.ErrInvalidReference, ref.URL)
		}
		pageURL, _, _ = strings.Cut(ref.URL, "#")
		return acct, id, pageURL, nil
	}

	if ref.LeagueID == "" {
		return nil, "", "", fmt.Errorf("%w: league id is required", profile.ErrInvalidReference)
	}
	return acct, ref.LeagueID, acct.ProfileURL() + "ladder/" + ref.LeagueID, nil
}

// League scrapes a league page.
func (c *Client) League(ctx context.Context, ref LeagueRef) (*profile.League, error) {
	acct, id, pageURL, err := leagueTarget(ref)
	if err != nil {
		return nil, err
	}

	doc, err := c.document(ctx, PageLeague, pageURL)
	if err != nil {
		return nil, err
	}

	header := htmlutil.SelectText(doc, leagueHeaderSelector)
	lg, err := parseLeagueHeader(header)
	if err != nil {
		c.logger.WarnContext(ctx, "league header did not parse", "url", pageURL, "header", header)
		return nil, err
	}
	lg.ID = id
	lg.BnetID = acct.BnetID
	lg.Name = acct.Name
	return lg, nil
}

func parseLeagueHeader(header string) (*profile.League, error) {
	m := leagueHeaderPattern.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil {
		return nil, fmt.Errorf("%w: league header %q", profile.ErrUnexpectedMarkup, header)
	}
	return &profile.League{
		Season:   m[1],
		Size:     m[2],
		Random:   m[3] != "",
		League:   m[4],
		Division: m[5],
	}, nil
}
