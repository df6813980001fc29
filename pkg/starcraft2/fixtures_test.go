package starcraft2

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const demonPath = "/sc2/en/profile/2377239/1/Demon/"

const profileHTML = `<!DOCTYPE html>
<html><head><title>Demon - StarCraft II</title></head>
<body>
<div id="profile-header">
	<h2><a href="/sc2/en/profile/2377239/1/Demon/">Demon</a></h2>
	<h3>3,660</h3>
</div>
<div id="portrait">
	<span class="icon-frame" style="background: url('/sc2/static/local-common/images/sc2/portraits/2-90.jpg?v42') -180px -90px no-repeat; width: 90px; height: 90px;"></span>
</div>
<div id="swarm-levels">
	<div class="swarm-level race-zerg"><span class="level-value">Level 25</span></div>
	<div class="swarm-level race-protoss"><span class="level-value">12</span></div>
	<div class="swarm-level race-terran"><span class="level-value">3</span></div>
</div>
<div id="career-stats">
	<div class="stat-block"><h4>Career Games</h4><h2>1,568</h2></div>
	<div class="stat-block"><h4>Games This Season</h4><h2>0</h2></div>
	<div class="stat-block"><h4>Most Played</h4><h2>Protoss</h2></div>
</div>
<div id="best-finish-SOLO"><span class="league-name">Master</span></div>
<div id="best-finish-TEAM"><span class="league-name">Diamond</span></div>
</body></html>`

const leaguesHTML = `<html><head><title>Leagues - StarCraft II</title></head><body>
<ul class="leagues">
	<li><a href="12345#current-rank">1v1 Diamond</a></li>
	<li><a href="67890#current-rank">
		4v4 Random Diamond
	</a></li>
	<li><a href="/sc2/en/profile/2377239/1/Demon/ladder/">Ladder home</a></li>
</ul>
</body></html>`

const achievementsHTML = `<html><head><title>Achievements - StarCraft II</title></head><body>
<div id="recent-achievements">
	<div class="achievement">
		<span class="title">Hot Shot</span>
		<span class="description">Finish a Practice League game in under 10 minutes.</span>
		<span class="date">3/12/2011</span>
	</div>
	<div class="achievement">
		<span class="title">Mass Recall</span>
		<span class="description">Win 10 games as Protoss.</span>
		<span class="date">sometime</span>
	</div>
</div>
<div id="progress-module">
	<div class="progress-category"><span class="category-name">Liberty Campaign</span><span class="points">1,150 / 1,540</span></div>
	<div class="progress-category"><span class="category-name">Exploration</span><span class="points">370 / 450</span></div>
	<div class="progress-category"><span class="category-name"></span><span class="points">5</span></div>
</div>
<div id="showcase-module">
	<div class="progress-tile"><span class="tooltip-title">FFA Destroyer</span></div>
	<div class="progress-tile"><span class="tooltip-title">Veteran of the Sands</span></div>
</div>
</body></html>`

const matchesHTML = `<html><head><title>Match History - StarCraft II</title></head><body>
<table id="match-history">
	<tr class="match-row solo win"><td>icon</td><td>Shakuras Plateau</td><td class="match-type">1v1</td><td class="match-date">3/12/2011</td></tr>
	<tr class="match-row team loss"><td>icon</td><td>Tarsonis Assault</td><td class="match-type">4v4</td><td class="match-date">3/11/2011</td></tr>
	<tr class="match-row custom"><td>icon</td><td>Desert Strike</td><td class="match-type">Custom</td><td class="match-date">3/10/2011</td></tr>
	<tr class="match-row solo win"><td>icon</td><td>Metalopolis</td><td class="match-type">1v1</td><td class="match-date">3/9/2011</td></tr>
</table>
</body></html>`

const statusHTML = `<html><head><title>Server Status - StarCraft II</title></head><body>
<ul class="server-list">
	<li class="server up"><span class="server-name">North America</span></li>
	<li class="server down"><span class="server-name">Latin America</span></li>
	<li class="server up"><span class="server-name">Europe</span></li>
</ul>
</body></html>`

func leagueHTML(header string) string {
	return `<html><head><title>League - StarCraft II</title></head><body>
<div class="data-title"><div class="data-label"><h3>
	` + header + `
</h3></div></div></body></html>`
}

// armory serves canned pages keyed by path. Unknown paths return 404.
type armory struct {
	pages  map[string]string
	status map[string]int
}

func newArmory() *armory {
	return &armory{
		pages: map[string]string{
			demonPath:                             profileHTML,
			demonPath + "ladder/leagues":          leaguesHTML,
			demonPath + "ladder/12345":            leagueHTML("6 - 1v1 Diamond Division Tassadar Kilo"),
			demonPath + "ladder/67890":            leagueHTML("6 - 4v4 Random Diamond Division Aleksander Pepper"),
			demonPath + "achievements/":           achievementsHTML,
			demonPath + "matches":                 matchesHTML,
			"/sc2/en/status":                      statusHTML,
			"/sc2/en/profile/1/1/Broken/":         `<html><body><p>maintenance</p></body></html>`,
			"/sc2/en/profile/1/1/Gone/":           `<html><head><title>Page Not Found</title></head></html>`,
			"/sc2/en/profile/1/1/Broken/ladder/5": leagueHTML("not a league header"),
		},
		status: map[string]int{},
	}
}

func (a *armory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if code, ok := a.status[r.URL.Path]; ok {
		w.WriteHeader(code)
		return
	}
	body, ok := a.pages[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
}

type mockTransport struct {
	mockURL string
}

func (t *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = strings.TrimPrefix(t.mockURL, "http://")
	return http.DefaultTransport.RoundTrip(req)
}

// newTestClient returns a client whose battle.net requests are served by a.
func newTestClient(t *testing.T, a *armory) *Client {
	t.Helper()
	server := httptest.NewServer(a)
	t.Cleanup(server.Close)

	client, err := New(context.Background(), WithHTTPClient(&http.Client{
		Transport: &mockTransport{mockURL: server.URL},
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func demon(t *testing.T) *Account {
	t.Helper()
	acct, err := NewAccount(Ref{BnetID: "2377239", Name: "Demon"})
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	return acct
}
