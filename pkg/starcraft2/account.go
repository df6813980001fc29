package starcraft2

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/region"
)

// Defaults applied when an account is built from discrete fields.
const (
	DefaultGateway   = "us"
	DefaultSubregion = 1
)

// profileURLPattern matches http://<host>/sc2/<locale>/profile/<bnet id>/<subregion>/<name>/
// as a prefix, so league and sub-page URLs decompose as well.
var profileURLPattern = regexp.MustCompile(`^https?://([^/]+)/sc2/([^/]+)/profile/([^/]+)/(\d)/([^/]+)/`)

// Ref identifies an account either by profile URL or by discrete fields.
// When URL is set the other fields are ignored.
type Ref struct {
	URL       string `json:"url,omitempty"`
	BnetID    string `json:"bnet_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Gateway   string `json:"gateway,omitempty"`
	Subregion int    `json:"subregion,omitempty"`
}

// Account is a resolved Battle.net identity.
type Account struct {
	BnetID    string `json:"bnet_id"`
	Name      string `json:"name"`
	Gateway   string `json:"gateway"`
	Subregion int    `json:"subregion"`
	Region    string `json:"region"`
	Locale    string `json:"locale"`
	URL       string `json:"url,omitempty"` // URL the account was parsed from, if any
}

// NewAccount resolves ref into an Account. It fails with
// profile.ErrInvalidReference for malformed input and
// profile.ErrUnresolvableRegion when the gateway and subregion are unknown.
func NewAccount(ref Ref) (*Account, error) {
	var a *Account
	var err error
	if ref.URL != "" {
		a, err = parseURL(ref.URL)
	} else {
		a, err = fromFields(ref)
	}
	if err != nil {
		return nil, err
	}

	r, ok := region.ByGateway(a.Gateway, a.Subregion)
	if !ok {
		return nil, fmt.Errorf("%w: could not identify region from gateway %q and subregion %d",
			profile.ErrUnresolvableRegion, a.Gateway, a.Subregion)
	}
	a.Region = r.Code
	if a.Locale == "" {
		a.Locale = r.Locale
	}
	return a, nil
}

func parseURL(rawURL string) (*Account, error) {
	m := profileURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, fmt.Errorf("%w: URL %q does not match Battle.net format", profile.ErrInvalidReference, rawURL)
	}
	host := m[1]
	gateway, ok := region.GatewayForHost(host)
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", profile.ErrUnresolvableRegion, profile.ErrUnknownHost, host)
	}
	subregion, err := strconv.Atoi(m[4])
	if err != nil {
		return nil, fmt.Errorf("%w: subregion %q: %w", profile.ErrInvalidReference, m[4], err)
	}
	return &Account{
		BnetID:    m[3],
		Name:      m[5],
		Gateway:   gateway,
		Subregion: subregion,
		Locale:    m[2],
		URL:       rawURL,
	}, nil
}

func fromFields(ref Ref) (*Account, error) {
	if ref.BnetID == "" || ref.Name == "" {
		return nil, fmt.Errorf("%w: bnet id and name are required", profile.ErrInvalidReference)
	}
	a := &Account{
		BnetID:    ref.BnetID,
		Name:      ref.Name,
		Gateway:   ref.Gateway,
		Subregion: ref.Subregion,
	}
	if a.Gateway == "" {
		a.Gateway = DefaultGateway
	}
	if a.Subregion == 0 {
		a.Subregion = DefaultSubregion
	}
	return a, nil
}

// RegionInfo returns the registry entry the account resolved to.
func (a *Account) RegionInfo() region.Region {
	r, _ := region.ByCode(a.Region)
	return r
}

// ProfileURL returns the canonical profile URL. It always uses the region's
// locale and subregion, not the literal values of a parsed URL.
func (a *Account) ProfileURL() string {
	r := a.RegionInfo()
	return fmt.Sprintf("http://%s.battle.net/sc2/%s/profile/%s/%d/%s/", a.Gateway, r.Locale, a.BnetID, r.Subregion, a.Name)
}
