package palette

import (
	"image/color"
	"sort"
	"sync"
)

// flavorHex is the curated flavor → color table. Keys are normalized tokens.
var flavorHex = map[string]string{
	"strawberry":      "#ff4f79",
	"raspberry":       "#d72657",
	"cherry":          "#d81b60",
	"watermelon":      "#ff6b81",
	"apple":           "#5ec16e",
	"lime":            "#7bd389",
	"mint":            "#27c3a8",
	"matcha":          "#7bb661",
	"avocado":         "#66a564",
	"banana":          "#ffe066",
	"mango":           "#ffb703",
	"peach":           "#ff9e7d",
	"orange":          "#ff7a00",
	"carrot":          "#ff8c42",
	"lemon":           "#ffd166",
	"pineapple":       "#ffe66d",
	"blueberry":       "#4f7cff",
	"grape":           "#7b5cff",
	"ube":             "#6d4aff",
	"taro":            "#a08bff",
	"lavender":        "#b497ff",
	"vanilla":         "#f4e1c1",
	"caramel":         "#c68642",
	"butterscotch":    "#e0a55f",
	"chocolate":       "#5c3a21",
	"mocha":           "#7a5230",
	"coffee":          "#5a3c2e",
	"espresso":        "#3b2a23",
	"milk":            "#fff7f0",
	"coconut":         "#fef9ef",
	"bubblegum":       "#ff84d8",
	"cottoncandy":     "#ffa6ff",
	"cookiesandcream": "#e8e8ea",
	"peppermint":      "#82f3d3",
	"wintermint":      "#9ef7e8",
	"milktea":         "#c7a17a",
	"calamansi":       "#c1ff72",
	"bukopandan":      "#9be077",
	"lychee":          "#ffd4da",
	"dragonfruit":     "#ff2d95",
	"passionfruit":    "#ffb000",
	"kiwi":            "#89d42d",
}

// table is parsed once on first use and never written afterwards.
var table = sync.OnceValue(func() map[string]color.RGBA {
	parsed := make(map[string]color.RGBA, len(flavorHex))
	for name, hex := range flavorHex {
		c, err := ParseHex(hex)
		if err != nil {
			panic("palette: bad table entry " + name + ": " + err.Error())
		}
		parsed[name] = c
	}
	return parsed
})

// Lookup returns the curated color for a normalized token.
func Lookup(token string) (color.RGBA, bool) {
	c, ok := table()[token]
	return c, ok
}

// TableHex returns the curated hex value for a normalized token.
func TableHex(token string) (string, bool) {
	hex, ok := flavorHex[token]
	return hex, ok
}

// Names lists the curated flavors in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(flavorHex))
	for name := range flavorHex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
