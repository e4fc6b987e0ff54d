package stylist

import (
	"fmt"
	"testing"

	"outfitapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict(t *testing.T) {
	assert.Equal(t, "Excellent choice!", Verdict(95))
	assert.Equal(t, "Looks good!", Verdict(80))
	assert.Equal(t, "Looks good!", Verdict(60.5))
	assert.Equal(t, "Here's an idea", Verdict(60))
	assert.Equal(t, "Here's an idea", Verdict(0))
}

func TestConfidenceIsClamped(t *testing.T) {
	assert.Equal(t, 100.0, Confidence(1.3))
	assert.Equal(t, 0.0, Confidence(-0.1))
	assert.InDelta(t, 72.5, Confidence(0.725), 1e-9)
}

func ranked(n int) []ScoredOutfit {
	out := make([]ScoredOutfit, n)
	for i := range out {
		out[i] = ScoredOutfit{
			Combination: OutfitCombination{
				Items:    []models.ClothingItem{item(uint(i+1), models.Tops, "#FFFFFF", models.Casual)},
				Template: OutfitTemplate{Style: fmt.Sprintf("style %d", i)},
			},
			FinalScore: 0.9 - 0.1*float64(i),
			Reasoning:  fmt.Sprintf("reason %d", i),
		}
	}
	return out
}

func TestComposeAlternatives(t *testing.T) {
	var c SuggestionComposer
	for n := 1; n <= 6; n++ {
		suggestion := c.Compose(ranked(n), models.Occasion{Title: "Work"}, ColorAnalysis{}, StyleAnalysis{})

		want := n - 1
		if want > 3 {
			want = 3
		}
		require.Len(t, suggestion.Alternatives, want, "n=%d", n)
		for i, alt := range suggestion.Alternatives {
			assert.Equal(t, fmt.Sprintf("Alternative %d", i+1), alt.Title)
			assert.Equal(t, fmt.Sprintf("reason %d", i+1), alt.Description)
			assert.Equal(t, fmt.Sprintf("style %d", i+1), alt.StyleType)
		}
		assert.Equal(t, []uint{1}, suggestion.ItemIDs)
	}
}

func TestComposeTopOutfit(t *testing.T) {
	red := item(1, models.Tops, "#FF0000", models.Casual)
	red.Name = "Red blouse"
	cyan := item(2, models.Bottoms, "#00FFFF", models.Casual)
	weather := 1.0
	top := ScoredOutfit{
		Combination: OutfitCombination{
			Items:           []models.ClothingItem{red, cyan},
			Template:        OutfitTemplate{Style: "smart casual"},
			ColorScore:      0.8,
			StyleScore:      0.9,
			OccasionScore:   0.7,
			PreferenceScore: 0.65,
		},
		WeatherScore: &weather,
		FinalScore:   0.85,
	}
	color := ColorAnalysis{
		Palette:            []string{"cyan", "red"},
		ComplementaryPairs: [][2]uint{{1, 2}},
		ColorNames:         map[uint]string{1: "red", 2: "cyan"},
	}
	style := StyleAnalysis{RequiredTier: models.SmartCasual, RecommendedStyle: "smart casual"}

	s := SuggestionComposer{}.Compose([]ScoredOutfit{top}, models.Occasion{Title: "Dinner date"}, color, style)

	assert.Equal(t, "Excellent choice!", s.Verdict)
	assert.InDelta(t, 85.0, s.Confidence, 1e-9)
	assert.Equal(t, []uint{1, 2}, s.ItemIDs)
	assert.Equal(t, []string{"smart casual", "smartCasual"}, s.StyleTags)
	assert.Empty(t, s.Alternatives)
	assert.NotNil(t, s.Alternatives)
	assert.Contains(t, s.Justification, "Dinner date")
	assert.Equal(t, "Wear Red blouse and cyan bottoms. Accent it with cyan and red. Your Red blouse and cyan bottoms are complementary colors.", s.DetailedSuggestion)
	assert.Equal(t, []string{
		"Color harmony: 80%",
		"Style fit: 90%",
		"Occasion match: 70%",
		"Preference match: 65%",
		"Weather fit: 100%",
		"Overall: 85%",
	}, s.Breakdown)
}

func TestFallback(t *testing.T) {
	s := SuggestionComposer{}.Compose(nil, models.Occasion{Name: "birthday", Title: "Birthday party"}, ColorAnalysis{}, StyleAnalysis{})

	assert.Equal(t, "Here's an idea", s.Verdict)
	assert.Equal(t, 0.0, s.Confidence)
	assert.Empty(t, s.ItemIDs)
	assert.NotNil(t, s.ItemIDs)
	assert.Equal(t, []string{"needs_more_data"}, s.StyleTags)
	assert.Contains(t, s.DetailedSuggestion, "birthday")
	assert.Empty(t, s.Alternatives)
}
