package starcraft2

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/codeGROOVE-dev/bnetscraper/pkg/profile"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/region"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewAccountFromURL(t *testing.T) {
	acct, err := NewAccount(Ref{URL: "http://us.battle.net/sc2/en/profile/2377239/1/Demon/"})
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}

	want := &Account{
		BnetID:    "2377239",
		Name:      "Demon",
		Gateway:   "us",
		Subregion: 1,
		Region:    "na",
		Locale:    "en",
		URL:       "http://us.battle.net/sc2/en/profile/2377239/1/Demon/",
	}
	if diff := cmp.Diff(want, acct); diff != "" {
		t.Errorf("NewAccount() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewAccountFromFieldsDefaults(t *testing.T) {
	acct := demon(t)
	if acct.Gateway != "us" {
		t.Errorf("Gateway = %q, want us", acct.Gateway)
	}
	if acct.Subregion != 1 {
		t.Errorf("Subregion = %d, want 1", acct.Subregion)
	}
	if got, want := acct.ProfileURL(), "http://us.battle.net/sc2/en/profile/2377239/1/Demon/"; got != want {
		t.Errorf("ProfileURL() = %q, want %q", got, want)
	}
	want := region.Region{Code: "na", Gateway: "us", Subregion: 1, Locale: "en", Label: "North America"}
	if got := acct.RegionInfo(); got != want {
		t.Errorf("RegionInfo() = %+v, want %+v", got, want)
	}
}

func TestURLAndFieldsAgree(t *testing.T) {
	tests := []struct {
		url    string
		fields Ref
	}{
		{"http://us.battle.net/sc2/en/profile/2377239/1/Demon/", Ref{BnetID: "2377239", Name: "Demon"}},
		{"http://us.battle.net/sc2/en/profile/42/2/Rico/", Ref{BnetID: "42", Name: "Rico", Subregion: 2}},
		{"http://eu.battle.net/sc2/en/profile/315071/1/MaNa/", Ref{BnetID: "315071", Name: "MaNa", Gateway: "eu"}},
		{"http://eu.battle.net/sc2/ru/profile/99/2/Sasha/", Ref{BnetID: "99", Name: "Sasha", Gateway: "eu", Subregion: 2}},
		{"http://kr.battle.net/sc2/ko/profile/7/1/Flash/", Ref{BnetID: "7", Name: "Flash", Gateway: "kr"}},
		{"http://tw.battle.net/sc2/zh/profile/8/2/Sen/", Ref{BnetID: "8", Name: "Sen", Gateway: "kr", Subregion: 2}},
		{"http://www.battlenet.com.cn/sc2/zh/profile/1/1/Jim/", Ref{BnetID: "1", Name: "Jim", Gateway: "cn"}},
		{"http://sea.battle.net/sc2/en/profile/5/1/Moon/", Ref{BnetID: "5", Name: "Moon", Gateway: "sea"}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			fromURL, err := NewAccount(Ref{URL: tt.url})
			if err != nil {
				t.Fatalf("NewAccount(url) error = %v", err)
			}
			fromFields, err := NewAccount(tt.fields)
			if err != nil {
				t.Fatalf("NewAccount(fields) error = %v", err)
			}
			opts := cmpopts.IgnoreFields(Account{}, "URL", "Locale")
			if diff := cmp.Diff(fromFields, fromURL, opts); diff != "" {
				t.Errorf("url and field construction differ (-fields +url):\n%s", diff)
			}
		})
	}
}

func TestProfileURLNormalizesLocale(t *testing.T) {
	acct, err := NewAccount(Ref{URL: "http://eu.battle.net/sc2/ru/profile/99/2/Sasha/"})
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if acct.Locale != "ru" {
		t.Errorf("Locale = %q, want the URL's ru", acct.Locale)
	}
	if got, want := acct.ProfileURL(), "http://eu.battle.net/sc2/en/profile/99/2/Sasha/"; got != want {
		t.Errorf("ProfileURL() = %q, want %q", got, want)
	}
}

func TestNewAccountFromLeagueURL(t *testing.T) {
	acct, err := NewAccount(Ref{URL: "http://us.battle.net/sc2/en/profile/2377239/1/Demon/ladder/12345#current-rank"})
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if acct.BnetID != "2377239" || acct.Name != "Demon" {
		t.Errorf("NewAccount() = %+v", acct)
	}
}

func TestNewAccountErrors(t *testing.T) {
	tests := []struct {
		name string
		ref  Ref
		want []error
	}{
		{"malformed url", Ref{URL: "http://us.battle.net/wow/en/character/x"}, []error{profile.ErrInvalidReference}},
		{"two digit subregion", Ref{URL: "http://us.battle.net/sc2/en/profile/1/12/Demon/"}, []error{profile.ErrInvalidReference}},
		{"missing trailing slash", Ref{URL: "http://us.battle.net/sc2/en/profile/1/1/Demon"}, []error{profile.ErrInvalidReference}},
		{"missing name", Ref{BnetID: "2377239"}, []error{profile.ErrInvalidReference}},
		{"missing bnet id", Ref{Name: "Demon"}, []error{profile.ErrInvalidReference}},
		{"empty", Ref{}, []error{profile.ErrInvalidReference}},
		{"unknown subregion", Ref{BnetID: "1", Name: "x", Gateway: "us", Subregion: 99}, []error{profile.ErrUnresolvableRegion}},
		{"unknown gateway", Ref{BnetID: "1", Name: "x", Gateway: "moon"}, []error{profile.ErrUnresolvableRegion}},
		{
			"unknown host",
			Ref{URL: "http://example.com/sc2/en/profile/1/1/Demon/"},
			[]error{profile.ErrUnresolvableRegion, profile.ErrUnknownHost},
		},
		{"url subregion without region", Ref{URL: "http://sea.battle.net/sc2/en/profile/1/2/Demon/"}, []error{profile.ErrUnresolvableRegion}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct, err := NewAccount(tt.ref)
			if err == nil {
				t.Fatalf("NewAccount() = %+v, want error", acct)
			}
			if acct != nil {
				t.Errorf("NewAccount() returned partial account %+v", acct)
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("NewAccount() error = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestValid(t *testing.T) {
	client := newTestClient(t, newArmory())
	ctx := context.Background()

	ok, err := client.Valid(ctx, demon(t))
	if err != nil || !ok {
		t.Errorf("Valid(Demon) = %v, %v; want true, nil", ok, err)
	}

	someDude, err := NewAccount(Ref{URL: "http://us.battle.net/sc2/en/profile/2377239/1/SomeDude/"})
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	ok, err = client.Valid(ctx, someDude)
	if err != nil || ok {
		t.Errorf("Valid(SomeDude) = %v, %v; want false, nil", ok, err)
	}
}

func TestValidNetworkError(t *testing.T) {
	client, err := New(context.Background(), WithHTTPClient(&http.Client{
		Transport: &mockTransport{mockURL: "http://127.0.0.1:1"},
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if ok, err := client.Valid(context.Background(), demon(t)); err == nil {
		t.Errorf("Valid() = %v, nil; want network error", ok)
	}
}
