// Package named exposes the CSS named colours as a case-insensitive,
// lazily built table, with forward lookup by name, exact reverse lookup,
// and a memoized nearest-colour search.
package named

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/zjrosen/prism/cache"
	"github.com/zjrosen/prism/config"
	"github.com/zjrosen/prism/structures"
)

// ErrUnknownColour reports a name with no entry in the table.
var ErrUnknownColour = errors.New("unknown colour name")

var (
	tableOnce sync.Once
	table     *structures.LazyCaseInsensitiveMap[colorful.Color]
)

// Colours returns the named colour table. Entries are deferred: each hex
// value is parsed on first access, unless lazy loading is disabled in
// configuration, in which case the whole table is built eagerly.
func Colours() *structures.LazyCaseInsensitiveMap[colorful.Color] {
	tableOnce.Do(buildTable)
	return table
}

func buildTable() {
	table = structures.NewLazyCaseInsensitiveMap[colorful.Color]()
	eager := config.Current().DisableLazyLoad

	names := make([]string, 0, len(cssColours))
	for name := range cssColours {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hex := cssColours[name]
		if eager {
			table.Set(name, mustHex(hex))
			continue
		}
		table.SetDeferred(name, func() colorful.Color {
			return mustHex(hex)
		})
	}
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		// The table is a compile-time constant; a bad entry is a bug.
		panic(fmt.Sprintf("named: invalid hex %q: %v", hex, err))
	}
	return c
}

// resetTable rebuilds the table on next use. Intended for tests.
func resetTable() {
	tableOnce = sync.Once{}
	table = nil
}

// ByName returns the colour registered under name, case-insensitively.
func ByName(name string) (colorful.Color, error) {
	c, ok := Colours().Get(name)
	if !ok {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColour, name)
	}
	return c, nil
}

// NameOf returns the first name (alphabetically) whose colour equals c
// exactly. Resolves the full table.
func NameOf(c colorful.Color) (string, bool) {
	return lookup().FirstKeyForValue(c)
}

// NamesOf returns every name whose colour equals c exactly, sorted.
// Aliases such as Aqua/Cyan map to the same colour.
func NamesOf(c colorful.Color) []string {
	return lookup().KeysForValue(c)
}

func lookup() *structures.Lookup[colorful.Color] {
	t := Colours()
	snapshot := make(map[string]colorful.Color, t.Len())
	for _, name := range t.Keys() {
		if c, ok := t.Get(name); ok {
			snapshot[name] = c
		}
	}
	return structures.NewLookup(snapshot)
}

var nearestCache = cache.Default().MustRegister("named/nearest")

// Nearest returns the named colour perceptually closest to c, by CIE Lab
// distance. Results are memoized per colour in the default cache registry
// under "named/nearest".
func Nearest(c colorful.Color) (string, colorful.Color) {
	type match struct {
		Name   string
		Colour colorful.Color
	}

	m, _ := cache.Memoize(context.Background(), nearestCache, c.Hex(),
		func(context.Context) (match, error) {
			t := Colours()
			best := match{}
			bestDistance := -1.0
			for _, name := range t.Keys() {
				candidate, ok := t.Get(name)
				if !ok {
					continue
				}
				d := c.DistanceLab(candidate)
				if bestDistance < 0 || d < bestDistance {
					best = match{Name: name, Colour: candidate}
					bestDistance = d
				}
			}
			return best, nil
		})
	return m.Name, m.Colour
}

// cssColours maps CSS colour names to their sRGB hex values.
var cssColours = map[string]string{
	"AliceBlue":    "#F0F8FF",
	"Aqua":         "#00FFFF",
	"Black":        "#000000",
	"Blue":         "#0000FF",
	"Brown":        "#A52A2A",
	"Chartreuse":   "#7FFF00",
	"Chocolate":    "#D2691E",
	"Coral":        "#FF7F50",
	"Crimson":      "#DC143C",
	"Cyan":         "#00FFFF",
	"DarkBlue":     "#00008B",
	"DarkGreen":    "#006400",
	"DarkOrange":   "#FF8C00",
	"DarkViolet":   "#9400D3",
	"DeepPink":     "#FF1493",
	"DimGray":      "#696969",
	"Firebrick":    "#B22222",
	"ForestGreen":  "#228B22",
	"Fuchsia":      "#FF00FF",
	"Gold":         "#FFD700",
	"Gray":         "#808080",
	"Green":        "#008000",
	"HotPink":      "#FF69B4",
	"Indigo":       "#4B0082",
	"Ivory":        "#FFFFF0",
	"Khaki":        "#F0E68C",
	"Lavender":     "#E6E6FA",
	"Lime":         "#00FF00",
	"Magenta":      "#FF00FF",
	"Maroon":       "#800000",
	"MidnightBlue": "#191970",
	"Navy":         "#000080",
	"Olive":        "#808000",
	"Orange":       "#FFA500",
	"Orchid":       "#DA70D6",
	"Purple":       "#800080",
	"Red":          "#FF0000",
	"RoyalBlue":    "#4169E1",
	"Salmon":       "#FA8072",
	"Silver":       "#C0C0C0",
	"SkyBlue":      "#87CEEB",
	"SlateGray":    "#708090",
	"Teal":         "#008080",
	"Tomato":       "#FF6347",
	"Turquoise":    "#40E0D0",
	"Violet":       "#EE82EE",
	"White":        "#FFFFFF",
	"Yellow":       "#FFFF00",
}
