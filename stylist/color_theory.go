package stylist

import (
	"outfitapi/models"
)

const (
	maxPaletteColors = 5
	seasonalBonus    = 0.2
)

type ColorAnalysis struct {
	// unclamped, callers clamp when folding into a combination
	Harmony            map[uint]float64
	Palette            []string
	ComplementaryPairs [][2]uint
	// normalized color name per item
	ColorNames map[uint]string
}

type ColorTheoryAnalyzer struct {
	colors *ColorModel
}

func NewColorTheoryAnalyzer(colors *ColorModel) *ColorTheoryAnalyzer {
	return &ColorTheoryAnalyzer{colors: colors}
}

// ColorPreferenceWeight boosts colors that match the global color mood.
func (a *ColorTheoryAnalyzer) ColorPreferenceWeight(colorName, preference string) float64 {
	switch normalizeLabel(preference) {
	case "neutral":
		if a.colors.IsNeutral(colorName) || normalizeLabel(colorName) == neutralColor {
			return 1.2
		}
		return 0.9
	case "warm":
		if a.colors.IsWarm(colorName) {
			return 1.2
		}
		return 0.95
	case "cool":
		if a.colors.IsCool(colorName) {
			return 1.2
		}
		return 0.95
	}
	return 1.0
}

func (a *ColorTheoryAnalyzer) Analyze(items []models.ClothingItem, profile models.UserProfile, prefs models.Preferences) ColorAnalysis {
	analysis := ColorAnalysis{
		Harmony:    make(map[uint]float64, len(items)),
		ColorNames: make(map[uint]string, len(items)),
	}

	var season models.Season
	if profile.PreferredSeason != nil {
		season = *profile.PreferredSeason
	}

	for _, item := range items {
		name := a.colors.NormalizeHex(item.PrimaryColor)
		analysis.ColorNames[item.ID] = name

		score := a.colors.Harmony(name, profile.PreferredColors)
		score *= a.ColorPreferenceWeight(name, prefs.ColorPreference)
		if season != "" && a.colors.InSeasonPalette(name, season) {
			score += seasonalBonus
		}
		analysis.Harmony[item.ID] = score
	}

	analysis.Palette = a.recommendPalette(items, analysis.ColorNames, prefs.ColorPreference)
	analysis.ComplementaryPairs = a.complementaryPairs(items, analysis.ColorNames)
	return analysis
}

func (a *ColorTheoryAnalyzer) recommendPalette(items []models.ClothingItem, names map[uint]string, preference string) []string {
	candidates := make([]string, 0, len(items)+3)
	for _, item := range items {
		candidates = append(candidates, a.colors.Complement(names[item.ID]))
	}
	if !isOverride(preference) || len(a.colors.Accents(preference)) == 0 {
		preference = models.AnyPreference
	}
	candidates = append(candidates, a.colors.Accents(preference)...)

	palette := make([]string, 0, maxPaletteColors)
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		palette = append(palette, c)
		if len(palette) == maxPaletteColors {
			break
		}
	}
	return palette
}

func (a *ColorTheoryAnalyzer) complementaryPairs(items []models.ClothingItem, names map[uint]string) [][2]uint {
	var pairs [][2]uint
	for i := range items {
		first := names[items[i].ID]
		if !a.colors.IsOnWheel(first) {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if a.colors.Complement(first) == names[items[j].ID] {
				pairs = append(pairs, [2]uint{items[i].ID, items[j].ID})
			}
		}
	}
	return pairs
}
