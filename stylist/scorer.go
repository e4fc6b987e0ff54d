package stylist

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"outfitapi/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	colorWeight      = 0.30
	styleWeight      = 0.25
	occasionWeight   = 0.20
	preferenceWeight = 0.15

	// only applied when weather is known, the total tops out at 0.9 without it
	weatherWeight = 0.10

	coldThresholdF      = 55.0
	coldWithOuterwear   = 1.0
	coldNoOuterwear     = 0.4
	mildWeatherSubScore = 0.8
)

type ScoredOutfit struct {
	Combination OutfitCombination
	// nil when the request carried no weather
	WeatherScore *float64
	FinalScore   float64
	Reasoning    string
}

type OutfitScorer struct{}

func (OutfitScorer) WeatherScore(combination OutfitCombination, weather models.Weather) float64 {
	if weather.TemperatureF < coldThresholdF {
		if combination.Has(models.Outerwear) {
			return coldWithOuterwear
		}
		return coldNoOuterwear
	}
	return mildWeatherSubScore
}

// Score ranks combinations by final score, highest first. Equal scores keep
// their generation order.
func (s OutfitScorer) Score(combinations []OutfitCombination, weather *models.Weather) []ScoredOutfit {
	scored := make([]ScoredOutfit, 0, len(combinations))
	for _, c := range combinations {
		outfit := ScoredOutfit{Combination: c}
		outfit.FinalScore = colorWeight*c.ColorScore +
			styleWeight*c.StyleScore +
			occasionWeight*c.OccasionScore +
			preferenceWeight*c.PreferenceScore
		if weather != nil {
			w := s.WeatherScore(c, *weather)
			outfit.WeatherScore = &w
			outfit.FinalScore += weatherWeight * w
		}
		outfit.Reasoning = reasoning(outfit)
		scored = append(scored, outfit)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	return scored
}

func reasoning(outfit ScoredOutfit) string {
	c := outfit.Combination
	parts := []string{
		fmt.Sprintf("color harmony %d%%", percent(c.ColorScore)),
		fmt.Sprintf("style fit %d%%", percent(c.StyleScore)),
		fmt.Sprintf("occasion match %d%%", percent(c.OccasionScore)),
		fmt.Sprintf("preference match %d%%", percent(c.PreferenceScore)),
	}
	if outfit.WeatherScore != nil {
		parts = append(parts, fmt.Sprintf("weather fit %d%%", percent(*outfit.WeatherScore)))
	}
	style := cases.Title(language.English).String(c.Template.Style)
	return fmt.Sprintf("%s look with %d pieces: %s", style, len(c.Items), strings.Join(parts, ", "))
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
