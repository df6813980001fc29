// Package region holds the static Battle.net region and hostname tables.
package region

// Region identifies one (gateway, subregion) partition of Battle.net.
type Region struct {
	Code      string `json:"code"`
	Gateway   string `json:"gateway"`
	Subregion int    `json:"subregion"`
	Locale    string `json:"locale"`
	Label     string `json:"label"`
}

// table is ordered; the first region for a gateway is its default.
var table = []Region{
	{Code: "na", Gateway: "us", Subregion: 1, Locale: "en", Label: "North America"},
	{Code: "la", Gateway: "us", Subregion: 2, Locale: "en", Label: "Latin America"},
	{Code: "eu", Gateway: "eu", Subregion: 1, Locale: "en", Label: "Europe"},
	{Code: "ru", Gateway: "eu", Subregion: 2, Locale: "en", Label: "Russia"},
	{Code: "cn", Gateway: "cn", Subregion: 1, Locale: "zh", Label: "China"},
	{Code: "sea", Gateway: "sea", Subregion: 1, Locale: "en", Label: "South-East Asia"},
	{Code: "fea", Gateway: "kr", Subregion: 1, Locale: "ko", Label: "Korea"},
	{Code: "tw", Gateway: "kr", Subregion: 2, Locale: "zh", Label: "Taiwan"},
}

// hostnames maps profile hostnames to gateway codes.
var hostnames = map[string]string{
	"us.battle.net":        "us",
	"eu.battle.net":        "eu",
	"www.battlenet.com.cn": "cn",
	"cn.battle.net":        "cn",
	"sea.battle.net":       "sea",
	"kr.battle.net":        "kr",
	"tw.battle.net":        "kr",
}

var (
	byCode    = make(map[string]Region, len(table))
	byGateway = make(map[key]Region, len(table))
)

type key struct {
	gateway   string
	subregion int
}

func init() {
	for _, r := range table {
		byCode[r.Code] = r
		byGateway[key{r.Gateway, r.Subregion}] = r
	}
}

// ByCode returns the region with the given code, such as "na".
func ByCode(code string) (Region, bool) {
	r, ok := byCode[code]
	return r, ok
}

// ByGateway returns the region for a gateway and subregion pair.
func ByGateway(gateway string, subregion int) (Region, bool) {
	r, ok := byGateway[key{gateway, subregion}]
	return r, ok
}

// GatewayForHost returns the gateway code served by a profile hostname.
func GatewayForHost(host string) (string, bool) {
	g, ok := hostnames[host]
	return g, ok
}

// All returns every known region in table order.
func All() []Region {
	out := make([]Region, len(table))
	copy(out, table)
	return out
}
