package starcraft2

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/htmlutil"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/region"
)

// StatusURL returns the server status page for a gateway.
func StatusURL(gateway string) (string, error) {
	if gateway == "" {
		gateway = DefaultGateway
	}
	r, ok := region.ByGateway(gateway, DefaultSubregion)
	if !ok {
		return "", fmt.Errorf("%w: unknown gateway %q", profile.ErrUnresolvableRegion, gateway)
	}
	return fmt.Sprintf("http://%s.battle.net/sc2/%s/status", r.Gateway, r.Locale), nil
}

// Status scrapes the server status page served by gateway.
func (c *Client) Status(ctx context.Context, gateway string) ([]profile.ServerStatus, error) {
	pageURL, err := StatusURL(gateway)
	if err != nil {
		return nil, err
	}
	doc, err := c.document(ctx, PageStatus, pageURL)
	if err != nil {
		return nil, err
	}

	var out []profile.ServerStatus
	doc.Find(".server-list .server").Each(func(_ int, s *goquery.Selection) {
		name := htmlutil.Text(s.Find(".server-name"))
		if name == "" {
			return
		}
		out = append(out, profile.ServerStatus{Region: name, Online: s.HasClass("up")})
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no servers listed at %s", profile.ErrUnexpectedMarkup, pageURL)
	}
	return out, nil
}
