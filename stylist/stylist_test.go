package stylist

import (
	"context"
	"sync"
	"testing"

	"outfitapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRecommendCasualOuting(t *testing.T) {
	s := New(nil, WithLogger(zaptest.NewLogger(t)))

	suggestion := s.Recommend(context.Background(), Request{
		Inventory: casualCloset(),
		Occasion:  models.Occasion{Title: "Casual outing"},
	})

	assert.Equal(t, []uint{1, 2, 3}, suggestion.ItemIDs)
	assert.Equal(t, "Here's an idea", suggestion.Verdict)
	assert.InDelta(t, 46.5, suggestion.Confidence, 1e-6)
	assert.Equal(t, []string{"casual", "relaxed"}, suggestion.StyleTags)
	require.Len(t, suggestion.Alternatives, 1)
	assert.Equal(t, "casual dress", suggestion.Alternatives[0].StyleType)
	assert.Contains(t, suggestion.DetailedSuggestion, "Wear blue tops, beige bottoms and white footwear.")
}

func TestRecommendFallsBackOnEmptyCloset(t *testing.T) {
	memory := &memoryStub{}
	s := New(memory)

	suggestion := s.Recommend(context.Background(), Request{Occasion: models.Occasion{Title: "Wedding"}})

	assert.Equal(t, 0.0, suggestion.Confidence)
	assert.Equal(t, []string{"needs_more_data"}, suggestion.StyleTags)
	assert.Empty(t, suggestion.ItemIDs)
	assert.Equal(t, 1, memory.calls)
}

func TestRecommendUsesLearnedColorsAndWeather(t *testing.T) {
	user := models.UserAccount{}
	user.ID = 42
	memory := &memoryStub{colors: map[uint][]string{42: {"navy", "white"}}}
	items := []models.ClothingItem{
		item(1, models.Tops, "#FFFFFF", models.Business),
		item(2, models.Bottoms, "#000080", models.Business),
		item(3, models.Footwear, "#000000", models.Business),
		item(4, models.Outerwear, "#000080", models.Business),
	}

	suggestion := New(memory).Recommend(context.Background(), Request{
		User:      user,
		Inventory: items,
		Occasion:  models.Occasion{Title: "Client meeting", Season: models.Winter},
		Weather:   &models.Weather{TemperatureF: 35},
	})

	// the layered template is the only one that keeps out the cold
	assert.Equal(t, []uint{1, 2, 4, 3}, suggestion.ItemIDs)
	assert.Contains(t, suggestion.Breakdown, "Weather fit: 100%")
	require.Len(t, suggestion.Alternatives, 1)
	assert.Equal(t, "business", suggestion.Alternatives[0].StyleType)
}

func TestRecommendWithCustomPalettes(t *testing.T) {
	p := DefaultPalettes()
	p.Accents = map[string][]string{"any": {"gold"}}
	s := New(nil, WithPalettes(p), WithSlotFiller(BestScoreFiller{}))

	suggestion := s.Recommend(context.Background(), Request{
		Inventory: casualCloset(),
		Occasion:  models.Occasion{Title: "Casual outing"},
	})

	assert.Contains(t, suggestion.DetailedSuggestion, "Accent it with orange, neutral and gold.")
	assert.Equal(t, "gold", s.ColorModel().Accents("any")[0])
}

func TestSharedColorModelWinsOverPalettes(t *testing.T) {
	p := DefaultPalettes()
	p.Accents = map[string][]string{"any": {"gold"}}
	shared := NewColorModel(p)

	s := New(nil, WithColorModel(shared), WithPalettes(DefaultPalettes()))

	assert.Same(t, shared, s.ColorModel())
	assert.Equal(t, []string{"gold"}, s.ColorModel().Accents("any"))
}

func TestRecommendIsSafeForConcurrentUse(t *testing.T) {
	s := New(staticMemory{"blue"})
	want := s.Recommend(context.Background(), Request{Inventory: casualCloset(), Occasion: models.Occasion{Title: "Casual outing"}})

	var wg sync.WaitGroup
	results := make([]models.AdvancedStyleSuggestion, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Recommend(context.Background(), Request{Inventory: casualCloset(), Occasion: models.Occasion{Title: "Casual outing"}})
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
