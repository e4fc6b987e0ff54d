package stylist

import (
	"outfitapi/models"
)

const (
	occasionSubScore          = 0.7
	neutralPreferenceSubScore = 0.5
	statedPreferenceSubScore  = 0.65
)

// OutfitCombination is a filled template with its sub-scores, each in [0,1].
type OutfitCombination struct {
	Items           []models.ClothingItem
	Template        OutfitTemplate
	ColorScore      float64
	StyleScore      float64
	OccasionScore   float64
	PreferenceScore float64
}

func (c OutfitCombination) ItemIDs() []uint {
	ids := make([]uint, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.ID
	}
	return ids
}

func (c OutfitCombination) Has(category models.Category) bool {
	for _, item := range c.Items {
		if item.Category == category {
			return true
		}
	}
	return false
}

// SlotFiller picks one item per template slot. Slots it cannot fill are skipped.
type SlotFiller interface {
	Fill(template OutfitTemplate, items []models.ClothingItem, style StyleAnalysis) []models.ClothingItem
}

// FirstMatchFiller takes the first item of each slot's category in inventory order.
type FirstMatchFiller struct{}

func (FirstMatchFiller) Fill(template OutfitTemplate, items []models.ClothingItem, _ StyleAnalysis) []models.ClothingItem {
	var filled []models.ClothingItem
	for _, slot := range template.Slots {
		for _, item := range items {
			if item.Category == slot {
				filled = append(filled, item)
				break
			}
		}
	}
	return filled
}

// BestScoreFiller takes the highest style-scored item of each slot's category,
// the earliest item wins ties. Rankings differ from FirstMatchFiller.
type BestScoreFiller struct{}

func (BestScoreFiller) Fill(template OutfitTemplate, items []models.ClothingItem, style StyleAnalysis) []models.ClothingItem {
	var filled []models.ClothingItem
	for _, slot := range template.Slots {
		best, found := models.ClothingItem{}, false
		for _, item := range items {
			if item.Category != slot {
				continue
			}
			if !found || style.ItemScores[item.ID] > style.ItemScores[best.ID] {
				best, found = item, true
			}
		}
		if found {
			filled = append(filled, best)
		}
	}
	return filled
}

type CreativeInput struct {
	Items   []models.ClothingItem
	Profile models.UserProfile
	Color   ColorAnalysis
	Style   StyleAnalysis
}

// CreativeStrategy adds unconventional combinations for expressive style profiles.
type CreativeStrategy interface {
	Combine(in CreativeInput) []OutfitCombination
}

type NoCreativeCombinations struct{}

func (NoCreativeCombinations) Combine(CreativeInput) []OutfitCombination { return nil }

var creativeStyles = []string{"bold", "trendy"}

type CombinationGenerator struct {
	catalog  *OutfitTemplateCatalog
	filler   SlotFiller
	creative CreativeStrategy
}

func NewCombinationGenerator(catalog *OutfitTemplateCatalog, filler SlotFiller, creative CreativeStrategy) *CombinationGenerator {
	if catalog == nil {
		catalog = DefaultTemplateCatalog()
	}
	if filler == nil {
		filler = FirstMatchFiller{}
	}
	if creative == nil {
		creative = NoCreativeCombinations{}
	}
	return &CombinationGenerator{catalog: catalog, filler: filler, creative: creative}
}

func (g *CombinationGenerator) Generate(items []models.ClothingItem, profile models.UserProfile, color ColorAnalysis, style StyleAnalysis) []OutfitCombination {
	var combinations []OutfitCombination
	for _, template := range g.catalog.TemplatesFor(style.RequiredTier) {
		filled := g.filler.Fill(template, items, style)
		if len(filled) == 0 {
			continue
		}
		combinations = append(combinations, NewCombination(filled, template, profile, color, style))
	}

	if profile.PreferredStyle != nil && containsAny(fold(*profile.PreferredStyle), creativeStyles) {
		extra := g.creative.Combine(CreativeInput{Items: items, Profile: profile, Color: color, Style: style})
		for _, c := range extra {
			if len(c.Items) > 0 {
				combinations = append(combinations, c)
			}
		}
	}
	return combinations
}

// NewCombination scores a filled template. Per-item harmony and style scores
// are averaged and only then clamped to [0,1].
func NewCombination(items []models.ClothingItem, template OutfitTemplate, profile models.UserProfile, color ColorAnalysis, style StyleAnalysis) OutfitCombination {
	var colorTotal, styleTotal float64
	for _, item := range items {
		colorTotal += color.Harmony[item.ID]
		styleTotal += style.ItemScores[item.ID]
	}
	n := float64(len(items))

	preference := neutralPreferenceSubScore
	if profile.PreferredStyle != nil {
		preference = statedPreferenceSubScore
	}

	combination := OutfitCombination{
		Items:           append([]models.ClothingItem(nil), items...),
		Template:        template,
		OccasionScore:   occasionSubScore,
		PreferenceScore: preference,
	}
	if n > 0 {
		combination.ColorScore = clamp01(colorTotal / n)
		combination.StyleScore = clamp01(styleTotal / n)
	}
	return combination
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
