package stylist

import (
	"testing"

	"outfitapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultColorModel() *ColorModel {
	return NewColorModel(DefaultPalettes())
}

func TestColorDistanceIdentity(t *testing.T) {
	m := defaultColorModel()
	labels := []string{"#123456", "#ABCDEF", "not-a-color", ""}
	for name := range DefaultPalettes().NameHex {
		labels = append(labels, name)
	}
	for _, c := range labels {
		assert.Equal(t, 0.0, m.Distance(c, c), "distance of %q to itself", c)
	}
}

func TestColorDistanceSymmetry(t *testing.T) {
	m := defaultColorModel()
	labels := []string{"red", "cyan", "navy", "beige", "#FF7F50", "#10A0B0", "light green", "unknown"}
	for _, a := range labels {
		for _, b := range labels {
			assert.InDelta(t, m.Distance(a, b), m.Distance(b, a), 1e-12, "%s vs %s", a, b)
		}
	}
}

func TestColorDistanceWeights(t *testing.T) {
	m := defaultColorModel()

	// opposite hues, same saturation and lightness
	assert.InDelta(t, 0.5, m.Distance("red", "cyan"), 1e-9)
	// black and white only differ in lightness
	assert.InDelta(t, 0.2, m.Distance("black", "white"), 1e-9)
	// hue wraps around: 350 vs 10 is a 20 degree delta
	assert.InDelta(t, 0.5*20.0/180.0, m.Distance("#FF002A", "#FF2A00"), 0.01)
}

func TestComplementIsInvolutiveOnTheWheel(t *testing.T) {
	m := defaultColorModel()
	for _, c := range []string{"red", "orange", "yellow", "blue", "purple", "cyan", "green", "magenta"} {
		require.True(t, m.IsOnWheel(c))
		assert.Equal(t, c, m.Complement(m.Complement(c)), "complement of complement of %s", c)
	}
	assert.Equal(t, "magenta", m.Complement("green"))
	assert.Equal(t, "green", m.Complement("magenta"))
	assert.Equal(t, "cyan", m.Complement("RED"))
}

func TestComplementOffTheWheel(t *testing.T) {
	m := defaultColorModel()
	assert.Equal(t, "neutral", m.Complement("beige"))
	assert.Equal(t, "neutral", m.Complement("neutral"))
	assert.False(t, m.IsOnWheel("neutral"))
}

func TestNormalizeHex(t *testing.T) {
	m := defaultColorModel()
	assert.Equal(t, "red", m.NormalizeHex("#FF0000"))
	assert.Equal(t, "red", m.NormalizeHex("#ff0000"))
	assert.Equal(t, "navy", m.NormalizeHex("000080"))
	assert.Equal(t, "neutral", m.NormalizeHex("#123456"))
	assert.Equal(t, "neutral", m.NormalizeHex(""))
}

func TestNearestNamedHex(t *testing.T) {
	m := defaultColorModel()
	assert.Equal(t, "#FF0000", m.NearestNamedHex("#F01010"))
	assert.Equal(t, "#FFFFFF", m.NearestNamedHex("#FAFAFA"))
	assert.Equal(t, "#0000FF", m.NearestNamedHex("#0000ff"))
}

func TestNeutralsAndSeasons(t *testing.T) {
	m := defaultColorModel()
	for _, c := range []string{"black", "white", "gray", "beige", "navy", "brown"} {
		assert.True(t, m.IsNeutral(c), c)
	}
	assert.False(t, m.IsNeutral("red"))

	assert.True(t, m.InSeasonPalette("green", models.Spring), "green appears in light green")
	assert.True(t, m.InSeasonPalette("red", models.Winter))
	assert.False(t, m.InSeasonPalette("red", models.Summer))
	assert.False(t, m.InSeasonPalette("neutral", models.Winter))
	assert.Len(t, m.SeasonalPalette(models.Autumn), 6)
}

func TestHarmony(t *testing.T) {
	m := defaultColorModel()
	assert.Equal(t, 0.0, m.Harmony("red", nil))
	assert.InDelta(t, 1.0, m.Harmony("red", []string{"red"}), 1e-9)
	assert.InDelta(t, 0.75, m.Harmony("red", []string{"red", "cyan"}), 1e-9)
}

func TestInjectedPalettesAreIsolated(t *testing.T) {
	p := Palettes{
		Complements: map[string]string{"teal": "coral", "coral": "teal"},
		HexNames:    map[string]string{"#008080": "teal"},
		NameHex:     map[string]string{"teal": "#008080", "coral": "#FF7F50"},
	}
	m := NewColorModel(p)
	p.Complements["teal"] = "red"

	assert.Equal(t, "coral", m.Complement("teal"))
	assert.Equal(t, "teal", m.NormalizeHex("#008080"))
	assert.Equal(t, "neutral", m.NormalizeHex("#FF0000"))
}
