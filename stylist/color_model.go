package stylist

import (
	"math"
	"sort"
	"strings"

	"outfitapi/models"

	"github.com/lucasb-eyer/go-colorful"
)

const neutralColor = "neutral"

var neutralGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ColorModel answers color questions against an immutable set of palettes.
// It is safe for concurrent use.
type ColorModel struct {
	complements map[string]string
	neutrals    map[string]bool
	seasonal    map[models.Season][]string
	hexNames    map[string]string
	nameHex     map[string]string
	accents     map[string][]string
	warm        map[string]bool
	cool        map[string]bool
}

func NewColorModel(p Palettes) *ColorModel {
	m := &ColorModel{
		complements: make(map[string]string, len(p.Complements)),
		neutrals:    toSet(p.Neutrals),
		seasonal:    make(map[models.Season][]string, len(p.Seasonal)),
		hexNames:    make(map[string]string, len(p.HexNames)),
		nameHex:     make(map[string]string, len(p.NameHex)),
		accents:     make(map[string][]string, len(p.Accents)),
		warm:        toSet(p.WarmColors),
		cool:        toSet(p.CoolColors),
	}
	for k, v := range p.Complements {
		m.complements[normalizeLabel(k)] = normalizeLabel(v)
	}
	for season, colors := range p.Seasonal {
		m.seasonal[season] = append([]string(nil), colors...)
	}
	for hex, name := range p.HexNames {
		m.hexNames[canonicalHex(hex)] = normalizeLabel(name)
	}
	for name, hex := range p.NameHex {
		m.nameHex[normalizeLabel(name)] = canonicalHex(hex)
	}
	for pref, colors := range p.Accents {
		m.accents[normalizeLabel(pref)] = append([]string(nil), colors...)
	}
	return m
}

// Complement looks the label up on the color wheel, anything off the wheel
// complements to "neutral".
func (m *ColorModel) Complement(label string) string {
	if c, ok := m.complements[normalizeLabel(label)]; ok {
		return c
	}
	return neutralColor
}

func (m *ColorModel) IsOnWheel(label string) bool {
	_, ok := m.complements[normalizeLabel(label)]
	return ok
}

func (m *ColorModel) IsNeutral(label string) bool {
	return m.neutrals[normalizeLabel(label)]
}

func (m *ColorModel) IsWarm(label string) bool {
	return m.warm[normalizeLabel(label)]
}

func (m *ColorModel) IsCool(label string) bool {
	return m.cool[normalizeLabel(label)]
}

// IsKnown reports whether the label can be placed in color space by name.
func (m *ColorModel) IsKnown(label string) bool {
	_, ok := m.nameHex[normalizeLabel(label)]
	return ok
}

func (m *ColorModel) SeasonalPalette(season models.Season) []string {
	return append([]string(nil), m.seasonal[models.Season(normalizeLabel(string(season)))]...)
}

// InSeasonPalette reports whether the label textually appears in the season's palette,
// so "green" matches "light green".
func (m *ColorModel) InSeasonPalette(label string, season models.Season) bool {
	label = normalizeLabel(label)
	if label == "" {
		return false
	}
	for _, c := range m.seasonal[models.Season(normalizeLabel(string(season)))] {
		if strings.Contains(normalizeLabel(c), label) {
			return true
		}
	}
	return false
}

func (m *ColorModel) Accents(preference string) []string {
	return append([]string(nil), m.accents[normalizeLabel(preference)]...)
}

// NormalizeHex maps an exact hex value to its color name. Values outside the
// table normalize to "neutral".
func (m *ColorModel) NormalizeHex(hex string) string {
	if name, ok := m.hexNames[canonicalHex(hex)]; ok {
		return name
	}
	return neutralColor
}

// NearestNamedHex snaps an arbitrary hex to the closest entry of the hex table.
func (m *ColorModel) NearestNamedHex(hex string) string {
	if _, ok := m.hexNames[canonicalHex(hex)]; ok {
		return canonicalHex(hex)
	}
	keys := make([]string, 0, len(m.hexNames))
	for k := range m.hexNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best, bestDistance := "", math.Inf(1)
	for _, k := range keys {
		if d := m.Distance(hex, k); d < bestDistance {
			best, bestDistance = k, d
		}
	}
	return best
}

// Distance is 0.5*hue + 0.3*saturation + 0.2*lightness, each delta in [0,1] with
// the hue delta wrapping around the wheel. Labels may be color names or hex values.
func (m *ColorModel) Distance(a, b string) float64 {
	h1, s1, l1 := m.resolve(a).Hsl()
	h2, s2, l2 := m.resolve(b).Hsl()

	hueDelta := math.Abs(h1 - h2)
	hueDelta = math.Min(hueDelta, 360-hueDelta) / 180

	return 0.5*hueDelta + 0.3*math.Abs(s1-s2) + 0.2*math.Abs(l1-l2)
}

// Harmony averages max(0, 1-distance) over the palette, 0 for an empty palette.
func (m *ColorModel) Harmony(label string, palette []string) float64 {
	if len(palette) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range palette {
		total += math.Max(0, 1-m.Distance(label, p))
	}
	return total / float64(len(palette))
}

func (m *ColorModel) resolve(label string) colorful.Color {
	if hex, ok := m.nameHex[normalizeLabel(label)]; ok {
		label = hex
	}
	c, err := colorful.Hex(canonicalHex(label))
	if err != nil {
		return neutralGray
	}
	return c
}

func canonicalHex(hex string) string {
	hex = strings.ToUpper(strings.TrimSpace(hex))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return hex
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[normalizeLabel(v)] = true
	}
	return set
}
