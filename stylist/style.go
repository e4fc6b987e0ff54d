package stylist

import (
	"math"
	"strings"

	"outfitapi/models"

	"golang.org/x/text/cases"
)

type StyleAnalysis struct {
	ItemScores map[uint]float64
	// symmetric, both directions are stored
	Compatibility    map[uint]map[uint]float64
	RequiredTier     models.Formality
	RecommendedStyle string
}

type keywordRule struct {
	keywords []string
	tier     models.Formality
}

// first matching rule wins
var formalityRules = []keywordRule{
	{keywords: []string{"wedding", "interview"}, tier: models.Formal},
	{keywords: []string{"work", "meeting", "presentation"}, tier: models.Business},
	{keywords: []string{"gym", "hiking"}, tier: models.Athletic},
	{keywords: []string{"party", "concert"}, tier: models.Party},
	{keywords: []string{"date", "dinner"}, tier: models.SmartCasual},
}

type categoryRule struct {
	keywords   []string
	categories []models.Category
}

var categoryRules = []categoryRule{
	{keywords: []string{"gym", "hiking"}, categories: []models.Category{models.Footwear, models.Outerwear}},
	{keywords: []string{"wedding", "interview"}, categories: []models.Category{models.Suits, models.Dresses, models.Footwear}},
}

var styleLabels = map[models.Formality]string{
	models.Formal:      "elegant",
	models.Business:    "professional",
	models.SmartCasual: "smart casual",
	models.Party:       "trendy",
	models.Athletic:    "sporty",
	models.Casual:      "relaxed",
}

const (
	baseStyleScore        = 0.5
	favoredCategoryBonus  = 0.2
	defaultCategoryBonus  = 0.1
	favoriteBonus         = 0.1
	styleNoteBonus        = 0.1
	allSeasonBonus        = 0.1
	matchingSeasonBonus   = 0.15
	differentCategoryBump = 0.2
)

// FormalityCompatibility is keyed by the distance between tier ranks.
func FormalityCompatibility(a, b models.Formality) float64 {
	diff := a.Rank() - b.Rank()
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 0.4
	case 1:
		return 0.25
	case 2:
		return 0.1
	}
	return 0
}

// RequiredFormality infers the tier from keywords in the occasion title.
func RequiredFormality(title string) models.Formality {
	title = fold(title)
	for _, rule := range formalityRules {
		if containsAny(title, rule.keywords) {
			return rule.tier
		}
	}
	return models.Casual
}

func StyleLabel(tier models.Formality) string {
	if label, ok := styleLabels[tier]; ok {
		return label
	}
	return styleLabels[models.Casual]
}

type StyleCompatibilityAnalyzer struct {
	colors *ColorModel
}

func NewStyleCompatibilityAnalyzer(colors *ColorModel) *StyleCompatibilityAnalyzer {
	return &StyleCompatibilityAnalyzer{colors: colors}
}

func (a *StyleCompatibilityAnalyzer) Analyze(items []models.ClothingItem, occasion models.Occasion, profile models.UserProfile) StyleAnalysis {
	tier := RequiredFormality(occasion.Title)
	analysis := StyleAnalysis{
		ItemScores:       make(map[uint]float64, len(items)),
		Compatibility:    make(map[uint]map[uint]float64, len(items)),
		RequiredTier:     tier,
		RecommendedStyle: StyleLabel(tier),
	}

	for _, item := range items {
		analysis.ItemScores[item.ID] = a.ItemScore(item, occasion, tier, profile)
	}

	for i := range items {
		for j := i + 1; j < len(items); j++ {
			first, second := items[i], items[j]
			if first.ID == second.ID {
				continue
			}
			score := a.PairCompatibility(first, second)
			setPair(analysis.Compatibility, first.ID, second.ID, score)
			setPair(analysis.Compatibility, second.ID, first.ID, score)
		}
	}
	return analysis
}

// ItemScore never goes negative, every term is additive, and is capped at 1.
func (a *StyleCompatibilityAnalyzer) ItemScore(item models.ClothingItem, occasion models.Occasion, tier models.Formality, profile models.UserProfile) float64 {
	score := baseStyleScore
	score += FormalityCompatibility(item.Formality, tier)
	score += categoryBonus(item.Category, occasion.Title)

	if item.Favorite {
		score += favoriteBonus
	}
	if profile.PreferredStyle != nil && *profile.PreferredStyle != "" {
		if strings.Contains(fold(item.NotesText()), fold(*profile.PreferredStyle)) {
			score += styleNoteBonus
		}
	}

	season := fold(item.Season)
	switch {
	case season == "" || season == "all":
		score += allSeasonBonus
	case profile.PreferredSeason != nil && *profile.PreferredSeason != "" && strings.Contains(season, fold(string(*profile.PreferredSeason))):
		score += matchingSeasonBonus
	}

	return math.Min(score, 1.0)
}

func (a *StyleCompatibilityAnalyzer) PairCompatibility(first, second models.ClothingItem) float64 {
	score := baseStyleScore
	score += 0.3 * FormalityCompatibility(first.Formality, second.Formality)

	firstColor := a.colors.NormalizeHex(first.PrimaryColor)
	secondColor := a.colors.NormalizeHex(second.PrimaryColor)
	score += 0.4 * a.colors.Harmony(firstColor, []string{secondColor})

	if first.Category != second.Category {
		score += 0.3 * differentCategoryBump
	}
	return math.Min(score, 1.0)
}

func categoryBonus(category models.Category, title string) float64 {
	title = fold(title)
	for _, rule := range categoryRules {
		if !containsAny(title, rule.keywords) {
			continue
		}
		for _, c := range rule.categories {
			if c == category {
				return favoredCategoryBonus
			}
		}
		return 0
	}
	return defaultCategoryBonus
}

func setPair(m map[uint]map[uint]float64, from, to uint, score float64) {
	if m[from] == nil {
		m[from] = make(map[uint]float64)
	}
	m[from][to] = score
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
