package starcraft2

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/htmlutil"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
)

// MatchHistory scrapes the recent match list.
func (c *Client) MatchHistory(ctx context.Context, acct *Account) (*profile.MatchHistory, error) {
	pageURL := acct.ProfileURL() + "matches"
	doc, err := c.document(ctx, PageMatches, pageURL)
	if err != nil {
		return nil, err
	}
	if doc.Find("#match-history").Length() == 0 {
		return nil, fmt.Errorf("%w: no match history at %s", profile.ErrUnexpectedMarkup, pageURL)
	}

	h := parseMatches(doc)
	h.BnetID = acct.BnetID
	h.Name = acct.Name
	return h, nil
}

func parseMatches(doc *goquery.Document) *profile.MatchHistory {
	h := &profile.MatchHistory{}
	doc.Find("#match-history .match-row").Each(func(_ int, s *goquery.Selection) {
		m := profile.Match{
			Map:     htmlutil.Text(s.Find("td:nth-child(2)")),
			Type:    htmlutil.Text(s.Find(".match-type")),
			Date:    htmlutil.Text(s.Find(".match-date")),
			Outcome: profile.OutcomeUnknown,
		}
		switch {
		case s.HasClass("win"):
			m.Outcome = profile.OutcomeWin
			h.Wins++
		case s.HasClass("loss"):
			m.Outcome = profile.OutcomeLoss
			h.Losses++
		default:
		}
		h.Matches = append(h.Matches, m)
	})
	return h
}
