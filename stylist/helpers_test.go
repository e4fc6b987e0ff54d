package stylist

import (
	"context"

	"outfitapi/models"
)

type memoryStub struct {
	colors map[uint][]string
	calls  int
}

func (m *memoryStub) MostPreferredColors(_ context.Context, userID uint) []string {
	m.calls++
	return m.colors[userID]
}

type staticMemory []string

func (m staticMemory) MostPreferredColors(context.Context, uint) []string {
	return m
}

func item(id uint, category models.Category, hex string, formality models.Formality) models.ClothingItem {
	it := models.ClothingItem{
		Category:     category,
		PrimaryColor: hex,
		Formality:    formality,
	}
	it.ID = id
	return it
}

func strPtr(s string) *string {
	return &s
}

func seasonPtr(s models.Season) *models.Season {
	return &s
}

// the three piece closet from the product brief
func casualCloset() []models.ClothingItem {
	return []models.ClothingItem{
		item(1, models.Tops, "#0000FF", models.Casual),
		item(2, models.Bottoms, "#F5F5DC", models.Casual),
		item(3, models.ParseCategory("shoes"), "#FFFFFF", models.Casual),
	}
}
