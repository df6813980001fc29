package starcraft2

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/htmlutil"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/portrait"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
)

// portraitStylePattern matches the sprite reference in the portrait frame style, e.g.
// background: url('/sc2/static/.../portraits/2-90.jpg?v42') -180px -90px no-repeat.
var portraitStylePattern = regexp.MustCompile(`portraits/(\d+)-(\d+)\.jpg[^)]*\)\s*(-?\d+)(?:px)?\s+(-?\d+)(?:px)?`)

// Profile scrapes the profile page and the league list.
func (c *Client) Profile(ctx context.Context, acct *Account) (*profile.Profile, error) {
	doc, err := c.document(ctx, PageProfile, acct.ProfileURL())
	if err != nil {
		return nil, err
	}
	if doc.Find("#profile-header").Length() == 0 {
		return nil, fmt.Errorf("%w: no profile header at %s", profile.ErrUnexpectedMarkup, acct.ProfileURL())
	}

	p := parseProfile(doc) //nolint:varnamelen // p is idiomatic for profile
	p.BnetID = acct.BnetID
	p.Name = acct.Name
	p.URL = acct.ProfileURL()
	p.Region = acct.Region

	if style, ok := doc.Find("#portrait .icon-frame").Attr("style"); ok {
		name, err := portraitName(style)
		if err != nil {
			c.logger.DebugContext(ctx, "portrait not identified", "style", style, "error", err)
		}
		p.Portrait = name
	}

	links, err := c.leagueLinks(ctx, acct)
	if err != nil {
		return nil, err
	}
	p.LeagueLinks = links
	return p, nil
}

func parseProfile(doc *goquery.Document) *profile.Profile {
	p := &profile.Profile{} //nolint:varnamelen // p is idiomatic for profile

	p.AchievementPoints, _ = htmlutil.FirstInt(htmlutil.SelectText(doc, "#profile-header h3"))

	p.SwarmLevels.Zerg = swarmLevel(doc, "zerg")
	p.SwarmLevels.Protoss = swarmLevel(doc, "protoss")
	p.SwarmLevels.Terran = swarmLevel(doc, "terran")

	doc.Find("#career-stats .stat-block").Each(func(_ int, s *goquery.Selection) {
		label := strings.ToLower(htmlutil.Text(s.Find("h4")))
		value := htmlutil.Text(s.Find("h2"))
		switch label {
		case "career games":
			p.CareerGames, _ = htmlutil.FirstInt(value)
		case "games this season":
			p.GamesThisSeason, _ = htmlutil.FirstInt(value)
		case "most played":
			p.MostPlayed = value
		default:
		}
	})

	p.HighestSoloLeague = htmlutil.SelectText(doc, "#best-finish-SOLO .league-name")
	p.HighestTeamLeague = htmlutil.SelectText(doc, "#best-finish-TEAM .league-name")
	return p
}

func swarmLevel(doc *goquery.Document, race string) int {
	n, _ := htmlutil.FirstInt(htmlutil.SelectText(doc, "#swarm-levels .race-"+race+" .level-value"))
	return n
}

// portraitName decodes the portrait frame's sprite offset into a portrait name.
func portraitName(style string) (string, error) {
	m := portraitStylePattern.FindStringSubmatch(style)
	if m == nil {
		return "", fmt.Errorf("%w: portrait style %q", profile.ErrUnexpectedMarkup, style)
	}
	var nums [4]int
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return "", fmt.Errorf("portrait style %q: %w", style, err)
		}
		nums[i] = n
	}
	coord, err := portrait.FromOffset(nums[0], nums[1], nums[2], nums[3])
	if err != nil {
		return "", err
	}
	name, _ := portrait.Name(coord)
	return name, nil
}

// leagueLinks reads the ladder overview, returning links in page order.
func (c *Client) leagueLinks(ctx context.Context, acct *Account) ([]profile.LeagueLink, error) {
	listURL := acct.ProfileURL() + "ladder/leagues"
	doc, err := c.document(ctx, PageProfile, listURL)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(listURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", listURL, err)
	}

	var links []profile.LeagueLink
	doc.Find(`a[href*="#current-rank"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			c.logger.DebugContext(ctx, "skipping malformed league link", "href", href, "error", err)
			return
		}
		abs := base.ResolveReference(ref).String()
		id, ok := LeagueID(abs)
		if !ok {
			c.logger.DebugContext(ctx, "skipping league link without ladder id", "href", abs)
			return
		}
		links = append(links, profile.LeagueLink{
			Name: htmlutil.Text(s),
			ID:   id,
			Href: abs,
		})
	})
	c.logger.DebugContext(ctx, "found league links", "url", listURL, "count", len(links))
	return links, nil
}
