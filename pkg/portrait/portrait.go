// Package portrait maps StarCraft II portrait sprite-sheet coordinates to names.
//
// The armory serves portraits from sequentially numbered sprite sheets laid out
// as fixed 6x6 grids. Names are listed left to right, top to bottom.
package portrait

import (
	"fmt"
	"regexp"
)

// GridSize is the number of rows and columns in every sprite sheet.
const GridSize = 6

// Coordinate locates a portrait inside the sprite sheets.
type Coordinate struct {
	Sheet int `json:"sheet"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// sheets must keep every non-placeholder name unique so a name can be
// reversed into its coordinate.
var sheets = [][GridSize * GridSize]string{
	// portraits/0-75.jpg
	{
		"Kachinsky", "Cade", "Thatcher", "Hall", "Tiger Marine", "Panda Marine",
		"General Warfield", "Jim Raynor", "Arcturus Mengsk", "Sarah Kerrigan", "Kate Lockwell", "Rory Swann",
		"Egon Stetmann", "Hill", "Adjutant", "Dr. Ariel Hanson", "Gabriel Tosh", "Matt Horner",
		"Tychus Findlay", "Zeratul", "Valerian Mengsk", "Spectre", "Jim Raynor Marine", "Tauren Marine",
		"Night Elf Banshee", "Diablo Marine", "SCV", "Firebat", "Vulture", "Hellion",
		"Medic", "Spartan Company", "Wraith", "Diamondback", "Probe", "Scout",
	},
	// portraits/1-75.jpg
	{
		"Korea Tauren Marine", "Korea Night Elf Banshee", "Korea Diablo Marine", "Korea Worgen Marine", "Korea Goblin Marine", "PanTerran Marine",
		"Wizard Templar", "Tyrael Marine", "Witch Doctor Zergling", "Unknown1", "Night Elf Templar", "Infested Orc",
		"Unknown2", "Unknown3", "Unknown4", "Unknown5", "Unknown6", "Unknown7",
		"Unknown8", "Unknown9", "Unknown10", "Unknown11", "Unknown12", "Unknown13",
		"Unknown14", "Unknown15", "Unknown16", "Unknown17", "Unknown18", "Unknown19",
		"Unknown20", "Unknown21", "Unknown22", "Unknown23", "Unknown24", "Unknown25",
	},
	// portraits/2-75.jpg
	{
		"Ghost", "Thor", "Battlecruiser", "Nova", "Zealot", "Stalker",
		"Phoenix", "Immortal", "Void Ray", "Colossus", "Carrier", "Tassadar",
		"Reaper", "Sentry", "Overseer", "Viking", "High Templar", "Mutalisk",
		"Banshee", "Hybrid Destroyer", "Dark Voice", "Unknown26", "Unknown27", "Unknown28",
		"Orian", "Wolf Marine", "Murloc Marine", "Unknown29", "Unknown30", "Zealot Chef",
		"Stank", "Ornatus", "China Facebook Corps Members", "China Lion Marines", "China Dragons", "Korea Raynor Marine",
	},
	// portraits/3-75.jpg
	{
		"Urun", "Nyon", "Executor", "Mohandar", "Selendis", "Artanis",
		"Drone", "Infested Colonist", "Infested Marine", "Corruptor", "Aberration", "Broodlord",
		"Overmind", "Leviathan", "Overlord", "Hydralisk Marine", "Zer'atai Dark Templar", "Goliath",
		"Lenassa Dark Templar", "Mira Han", "Archon", "Hybrid Reaver", "Predator", "Unknown29",
		"Zergling", "Roach", "Baneling", "Hydralisk", "Queen", "Infestor",
		"Ultralisk", "Queen of Blades", "Marine", "Marauder", "Medivac", "Siege Tank",
	},
}

var placeholderPattern = regexp.MustCompile(`^Unknown\d+$`)

var byName = make(map[string]Coordinate)

func init() {
	for s, sheet := range sheets {
		for i, name := range sheet {
			if IsPlaceholder(name) {
				continue
			}
			if prev, ok := byName[name]; ok {
				panic(fmt.Sprintf("portrait %q listed at %v and %d/%d", name, prev, s, i))
			}
			byName[name] = Coordinate{Sheet: s, Row: i / GridSize, Col: i % GridSize}
		}
	}
}

// Sheets returns the number of known sprite sheets.
func Sheets() int { return len(sheets) }

// Name returns the portrait at a coordinate. Unidentified slots return their
// placeholder name; out-of-range coordinates return false.
func Name(c Coordinate) (string, bool) {
	if c.Sheet < 0 || c.Sheet >= len(sheets) {
		return "", false
	}
	if c.Row < 0 || c.Row >= GridSize || c.Col < 0 || c.Col >= GridSize {
		return "", false
	}
	return sheets[c.Sheet][c.Row*GridSize+c.Col], true
}

// Lookup returns the coordinate of a named portrait. Placeholders never resolve.
func Lookup(name string) (Coordinate, bool) {
	c, ok := byName[name]
	return c, ok
}

// IsPlaceholder reports whether name marks an unidentified slot.
func IsPlaceholder(name string) bool {
	return placeholderPattern.MatchString(name)
}

// FromOffset converts a sprite background offset in pixels into a coordinate.
// The armory renders offsets as non-positive values, so both signs are accepted.
func FromOffset(sheet, size, x, y int) (Coordinate, error) {
	if size <= 0 {
		return Coordinate{}, fmt.Errorf("invalid portrait size %d", size)
	}
	x, y = abs(x), abs(y)
	if x%size != 0 || y%size != 0 {
		return Coordinate{}, fmt.Errorf("offset %d,%d is not aligned to %dpx grid", x, y, size)
	}
	c := Coordinate{Sheet: sheet, Row: y / size, Col: x / size}
	if _, ok := Name(c); !ok {
		return Coordinate{}, fmt.Errorf("coordinate %+v outside portrait table", c)
	}
	return c, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
