package stylist

import (
	"fmt"
	"math"
	"strings"

	"outfitapi/models"
)

const (
	maxAlternatives  = 3
	needsMoreDataTag = "needs_more_data"
	excellentVerdict = "Excellent choice!"
	goodVerdict      = "Looks good!"
	ideaVerdict      = "Here's an idea"
	excellentAbove   = 80.0
	goodAbove        = 60.0
)

// SuggestionComposer turns ranked outfits into the user facing explanation.
type SuggestionComposer struct{}

func Verdict(confidence float64) string {
	switch {
	case confidence > excellentAbove:
		return excellentVerdict
	case confidence > goodAbove:
		return goodVerdict
	}
	return ideaVerdict
}

func Confidence(score float64) float64 {
	return math.Max(0, math.Min(100, score*100))
}

// Compose expects ranked to be sorted best first. An empty ranking yields the fallback.
func (c SuggestionComposer) Compose(ranked []ScoredOutfit, occasion models.Occasion, color ColorAnalysis, style StyleAnalysis) models.AdvancedStyleSuggestion {
	if len(ranked) == 0 {
		return c.Fallback(occasion)
	}
	top := ranked[0]
	confidence := Confidence(top.FinalScore)

	suggestion := models.AdvancedStyleSuggestion{
		Verdict:            Verdict(confidence),
		Justification:      justification(top, occasion, style),
		DetailedSuggestion: detailed(top, color),
		ItemIDs:            top.Combination.ItemIDs(),
		Confidence:         confidence,
		StyleTags:          styleTags(top, style),
		Breakdown:          breakdown(top),
		Alternatives:       []models.AlternativeSuggestion{},
	}

	for i, alt := range ranked[1:] {
		if i == maxAlternatives {
			break
		}
		suggestion.Alternatives = append(suggestion.Alternatives, models.AlternativeSuggestion{
			Title:       fmt.Sprintf("Alternative %d", i+1),
			Description: alt.Reasoning,
			StyleType:   alt.Combination.Template.Style,
		})
	}
	return suggestion
}

func (SuggestionComposer) Fallback(occasion models.Occasion) models.AdvancedStyleSuggestion {
	name := occasionName(occasion)
	return models.AdvancedStyleSuggestion{
		Verdict:            ideaVerdict,
		Justification:      fmt.Sprintf("We could not build a complete outfit for %s from your closet yet.", name),
		DetailedSuggestion: fmt.Sprintf("Add a few more pieces, like a top, a bottom and a pair of shoes, so we can put together a look for %s.", name),
		ItemIDs:            []uint{},
		Confidence:         0,
		StyleTags:          []string{needsMoreDataTag},
		Breakdown:          []string{},
		Alternatives:       []models.AlternativeSuggestion{},
	}
}

func justification(top ScoredOutfit, occasion models.Occasion, style StyleAnalysis) string {
	return fmt.Sprintf("This %s outfit fits %s, which calls for a %s look, with an overall match of %d%%.",
		top.Combination.Template.Style, occasionName(occasion), style.RecommendedStyle, percent(top.FinalScore))
}

func detailed(top ScoredOutfit, color ColorAnalysis) string {
	names := make([]string, 0, len(top.Combination.Items))
	inOutfit := make(map[uint]models.ClothingItem, len(top.Combination.Items))
	for _, item := range top.Combination.Items {
		names = append(names, itemLabel(item, color))
		inOutfit[item.ID] = item
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Wear %s.", joinWords(names))
	if len(color.Palette) > 0 {
		fmt.Fprintf(&b, " Accent it with %s.", joinWords(color.Palette))
	}
	for _, pair := range color.ComplementaryPairs {
		first, okFirst := inOutfit[pair[0]]
		second, okSecond := inOutfit[pair[1]]
		if okFirst && okSecond {
			fmt.Fprintf(&b, " Your %s and %s are complementary colors.", itemLabel(first, color), itemLabel(second, color))
		}
	}
	return b.String()
}

func styleTags(top ScoredOutfit, style StyleAnalysis) []string {
	var tags []string
	seen := map[string]bool{}
	for _, tag := range []string{top.Combination.Template.Style, style.RecommendedStyle, string(style.RequiredTier)} {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func breakdown(top ScoredOutfit) []string {
	c := top.Combination
	lines := []string{
		fmt.Sprintf("Color harmony: %d%%", percent(c.ColorScore)),
		fmt.Sprintf("Style fit: %d%%", percent(c.StyleScore)),
		fmt.Sprintf("Occasion match: %d%%", percent(c.OccasionScore)),
		fmt.Sprintf("Preference match: %d%%", percent(c.PreferenceScore)),
	}
	if top.WeatherScore != nil {
		lines = append(lines, fmt.Sprintf("Weather fit: %d%%", percent(*top.WeatherScore)))
	}
	return append(lines, fmt.Sprintf("Overall: %d%%", percent(top.FinalScore)))
}

func itemLabel(item models.ClothingItem, color ColorAnalysis) string {
	if name := strings.TrimSpace(item.Name); name != "" {
		return name
	}
	if c := color.ColorNames[item.ID]; c != "" && c != neutralColor {
		return fmt.Sprintf("%s %s", c, item.Category)
	}
	return string(item.Category)
}

func occasionName(occasion models.Occasion) string {
	if occasion.Name != "" {
		return occasion.Name
	}
	if occasion.Title != "" {
		return occasion.Title
	}
	return "your occasion"
}

func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}
