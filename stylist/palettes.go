package stylist

import "outfitapi/models"

// Palettes holds every lookup table the color side of the pipeline reads.
// A ColorModel copies it on construction, so callers may reuse or mutate their
// value afterwards without affecting running analyzers.
type Palettes struct {
	// symmetric color wheel, label -> complement
	Complements map[string]string
	Neutrals    []string
	Seasonal    map[models.Season][]string
	// exact hex -> color label, used to normalize item colors
	HexNames map[string]string
	// label -> hex, used to place any known label in HSL space
	NameHex map[string]string
	// global color preference (warm, cool, neutral, any) -> accents
	Accents    map[string][]string
	WarmColors []string
	CoolColors []string
}

func DefaultPalettes() Palettes {
	return Palettes{
		// green<->magenta is the shipped pairing, pending product confirmation.
		Complements: map[string]string{
			"red":     "cyan",
			"cyan":    "red",
			"orange":  "blue",
			"blue":    "orange",
			"yellow":  "purple",
			"purple":  "yellow",
			"green":   "magenta",
			"magenta": "green",
		},
		Neutrals: []string{"black", "white", "gray", "beige", "navy", "brown"},
		Seasonal: map[models.Season][]string{
			models.Spring: {"coral", "peach", "light green", "yellow", "turquoise", "lavender"},
			models.Summer: {"white", "sky blue", "mint", "pink", "cyan", "beige"},
			models.Autumn: {"burgundy", "mustard", "olive", "rust", "brown", "orange"},
			models.Winter: {"black", "navy", "emerald", "red", "silver", "white"},
		},
		HexNames: map[string]string{
			"#000000": "black",
			"#FFFFFF": "white",
			"#808080": "gray",
			"#F5F5DC": "beige",
			"#000080": "navy",
			"#A52A2A": "brown",
			"#FF0000": "red",
			"#00FFFF": "cyan",
			"#FFA500": "orange",
			"#0000FF": "blue",
			"#FFFF00": "yellow",
			"#800080": "purple",
			"#008000": "green",
			"#FF00FF": "magenta",
		},
		NameHex: map[string]string{
			"black":       "#000000",
			"white":       "#FFFFFF",
			"gray":        "#808080",
			"beige":       "#F5F5DC",
			"navy":        "#000080",
			"brown":       "#A52A2A",
			"red":         "#FF0000",
			"cyan":        "#00FFFF",
			"orange":      "#FFA500",
			"blue":        "#0000FF",
			"yellow":      "#FFFF00",
			"purple":      "#800080",
			"green":       "#008000",
			"magenta":     "#FF00FF",
			"neutral":     "#808080",
			"coral":       "#FF7F50",
			"peach":       "#FFDAB9",
			"light green": "#90EE90",
			"turquoise":   "#40E0D0",
			"lavender":    "#E6E6FA",
			"sky blue":    "#87CEEB",
			"mint":        "#98FF98",
			"pink":        "#FFC0CB",
			"burgundy":    "#800020",
			"mustard":     "#FFDB58",
			"olive":       "#808000",
			"rust":        "#B7410E",
			"emerald":     "#50C878",
			"silver":      "#C0C0C0",
			"gold":        "#FFD700",
			"terracotta":  "#E2725B",
			"teal":        "#008080",
			"camel":       "#C19A6B",
			"ivory":       "#FFFFF0",
			"charcoal":    "#36454F",
		},
		Accents: map[string][]string{
			"warm":    {"coral", "gold", "terracotta"},
			"cool":    {"teal", "lavender", "silver"},
			"neutral": {"camel", "ivory", "charcoal"},
			"any":     {"burgundy", "emerald", "mustard"},
		},
		WarmColors: []string{"red", "orange", "yellow", "coral", "gold", "terracotta", "peach", "mustard", "rust", "burgundy"},
		CoolColors: []string{"blue", "cyan", "green", "purple", "navy", "teal", "lavender", "mint", "turquoise", "emerald", "silver", "sky blue", "light green"},
	}
}
