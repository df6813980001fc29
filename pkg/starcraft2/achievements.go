package starcraft2

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/htmlutil"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
)

// achievementDateLayout is the armory's M/D/YYYY date format.
const achievementDateLayout = "1/2/2006"

// Achievements scrapes the achievements page.
func (c *Client) Achievements(ctx context.Context, acct *Account) (*profile.Achievements, error) {
	pageURL := acct.ProfileURL() + "achievements/"
	doc, err := c.document(ctx, PageAchievements, pageURL)
	if err != nil {
		return nil, err
	}
	if doc.Find("#recent-achievements, #progress-module, #showcase-module").Length() == 0 {
		return nil, fmt.Errorf("%w: no achievement modules at %s", profile.ErrUnexpectedMarkup, pageURL)
	}

	out := parseAchievements(doc)
	out.BnetID = acct.BnetID
	out.Name = acct.Name
	return out, nil
}

func parseAchievements(doc *goquery.Document) *profile.Achievements {
	out := &profile.Achievements{Progress: make(map[string]int)}

	doc.Find("#recent-achievements .achievement").Each(func(_ int, s *goquery.Selection) {
		a := profile.Achievement{
			Title:       htmlutil.Text(s.Find(".title")),
			Description: htmlutil.Text(s.Find(".description")),
			Earned:      htmlutil.Text(s.Find(".date")),
		}
		if t, err := time.Parse(achievementDateLayout, a.Earned); err == nil {
			a.EarnedAt = t
		}
		out.Recent = append(out.Recent, a)
	})

	doc.Find("#progress-module .progress-category").Each(func(_ int, s *goquery.Selection) {
		name := htmlutil.Text(s.Find(".category-name"))
		if name == "" {
			return
		}
		if n, ok := htmlutil.FirstInt(htmlutil.Text(s.Find(".points"))); ok {
			out.Progress[name] = n
		}
	})

	doc.Find("#showcase-module .progress-tile .tooltip-title").Each(func(_ int, s *goquery.Selection) {
		if title := htmlutil.Text(s); title != "" {
			out.Showcase = append(out.Showcase, title)
		}
	})
	return out
}
