package stylist

import "outfitapi/models"

// OutfitTemplate is the shape of an outfit: one item per slot, in order.
type OutfitTemplate struct {
	Slots []models.Category `json:"slots"`
	Style string            `json:"style"`
}

// OutfitTemplateCatalog maps formality tiers to templates. Tiers without an
// entry use the fallback templates.
type OutfitTemplateCatalog struct {
	byTier   map[models.Formality][]OutfitTemplate
	fallback []OutfitTemplate
}

func NewOutfitTemplateCatalog(byTier map[models.Formality][]OutfitTemplate, fallback []OutfitTemplate) *OutfitTemplateCatalog {
	catalog := &OutfitTemplateCatalog{
		byTier:   make(map[models.Formality][]OutfitTemplate, len(byTier)),
		fallback: cloneTemplates(fallback),
	}
	for tier, templates := range byTier {
		catalog.byTier[tier] = cloneTemplates(templates)
	}
	return catalog
}

func DefaultTemplateCatalog() *OutfitTemplateCatalog {
	topBottomShoes := []models.Category{models.Tops, models.Bottoms, models.Footwear}
	layered := []models.Category{models.Tops, models.Bottoms, models.Outerwear, models.Footwear}

	return NewOutfitTemplateCatalog(
		map[models.Formality][]OutfitTemplate{
			models.Formal: {
				{Slots: []models.Category{models.Suits, models.Footwear, models.Accessories}, Style: "classic formal"},
				{Slots: []models.Category{models.Dresses, models.Footwear, models.Accessories}, Style: "elegant evening"},
			},
			models.Business: {
				{Slots: topBottomShoes, Style: "business"},
				{Slots: layered, Style: "business layered"},
			},
			models.SmartCasual: {
				{Slots: topBottomShoes, Style: "smart casual"},
				{Slots: layered, Style: "smart casual layered"},
			},
		},
		[]OutfitTemplate{
			{Slots: topBottomShoes, Style: "casual"},
			{Slots: []models.Category{models.Dresses, models.Footwear}, Style: "casual dress"},
		},
	)
}

func (c *OutfitTemplateCatalog) TemplatesFor(tier models.Formality) []OutfitTemplate {
	if templates, ok := c.byTier[tier]; ok {
		return cloneTemplates(templates)
	}
	return cloneTemplates(c.fallback)
}

func cloneTemplates(templates []OutfitTemplate) []OutfitTemplate {
	out := make([]OutfitTemplate, len(templates))
	for i, t := range templates {
		out[i] = OutfitTemplate{Slots: append([]models.Category(nil), t.Slots...), Style: t.Style}
	}
	return out
}
