package stylist

import (
	"context"
	"strings"

	"outfitapi/models"
)

const maxPreferredColors = 5

// PreferenceMemory exposes what the user historically wore. Implementations
// resolve their own failures: an unavailable store answers with no colors.
type PreferenceMemory interface {
	MostPreferredColors(ctx context.Context, userID uint) []string
}

type noMemory struct{}

func (noMemory) MostPreferredColors(context.Context, uint) []string { return nil }

// UserContextBuilder merges learned preferences with request overrides.
type UserContextBuilder struct {
	memory PreferenceMemory
	colors *ColorModel
}

func NewUserContextBuilder(memory PreferenceMemory, colors *ColorModel) *UserContextBuilder {
	if memory == nil {
		memory = noMemory{}
	}
	return &UserContextBuilder{memory: memory, colors: colors}
}

func (b *UserContextBuilder) Build(ctx context.Context, user models.UserAccount, occasion models.Occasion, prefs models.Preferences) models.UserProfile {
	var profile models.UserProfile

	learned := b.memory.MostPreferredColors(ctx, user.ID)
	if len(learned) > maxPreferredColors {
		learned = learned[:maxPreferredColors]
	}

	// a concrete color override leads the learned list, global moods like "warm"
	// are applied later as a weight instead
	if color := normalizeLabel(prefs.ColorPreference); isOverride(color) && b.colors.IsKnown(color) {
		colors := []string{color}
		for _, c := range learned {
			if normalizeLabel(c) != color && len(colors) < maxPreferredColors {
				colors = append(colors, c)
			}
		}
		learned = colors
	}
	if len(learned) > 0 {
		profile.PreferredColors = append([]string(nil), learned...)
	}

	if style := strings.TrimSpace(prefs.StylePreference); isOverride(style) {
		profile.PreferredStyle = &style
	}
	if occasion.Season != "" {
		season := occasion.Season
		profile.PreferredSeason = &season
	}
	profile.BodyType = user.BodyType
	profile.Personality = user.Personality
	return profile
}

func isOverride(value string) bool {
	value = normalizeLabel(value)
	return value != "" && value != models.AnyPreference
}
