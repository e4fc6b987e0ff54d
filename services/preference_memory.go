package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"outfitapi/models"
	"outfitapi/stylist"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const (
	lookAppearanceWeight = 1
	favoriteItemWeight   = 2
)

// PreferenceMemory learns a user's favorite colors from saved looks and
// favorite items. Results are cached per user until the ttl runs out or the
// user saves a new look.
type PreferenceMemory struct {
	store  ClosetStore
	colors *stylist.ColorModel
	cache  *cache.LoadableCache[[]string]
	logger *zap.Logger
}

func NewPreferenceMemory(closet ClosetStore, colors *stylist.ColorModel, ttl time.Duration, logger *zap.Logger) (*PreferenceMemory, error) {
	ristrettoStore, err := newRistrettoStore()
	if err != nil {
		return nil, err
	}
	m := &PreferenceMemory{store: closet, colors: colors, logger: logger}

	loadFunction := func(ctx context.Context, key any) ([]string, []store.Option, error) {
		userID, ok := key.(uint)
		if !ok {
			return nil, nil, fmt.Errorf("invalid key type provided to preference cache: expected uint, got %T", key)
		}
		learned, err := m.load(ctx, userID)
		return learned, []store.Option{store.WithExpiration(ttl)}, err
	}
	m.cache = cache.NewLoadable[[]string](loadFunction, cache.New[[]string](ristrettoStore))
	return m, nil
}

// MostPreferredColors never fails, an unavailable store means no learned colors.
func (m *PreferenceMemory) MostPreferredColors(ctx context.Context, userID uint) []string {
	if userID == 0 {
		return nil
	}
	learned, err := m.cache.Get(ctx, userID)
	if err != nil {
		m.logger.Warn("learned colors unavailable", zap.Uint("user_id", userID), zap.Error(err))
		sentry.CaptureException(fmt.Errorf("[User %v] loading learned colors: %w", userID, err))
		return nil
	}
	return learned
}

// Forget drops the cached colors so the next request sees newly saved looks.
func (m *PreferenceMemory) Forget(ctx context.Context, userID uint) {
	if err := m.cache.Delete(ctx, userID); err != nil {
		m.logger.Debug("preference cache delete", zap.Uint("user_id", userID), zap.Error(err))
	}
}

func (m *PreferenceMemory) load(ctx context.Context, userID uint) ([]string, error) {
	items, err := m.store.ListItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	looks, err := m.store.ListLooks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing looks: %w", err)
	}
	return RankColors(items, looks, m.colors), nil
}

// RankColors orders color names by how often they were worn in saved looks,
// with favorite items counting double. Unnamed colors are ignored and ties
// break alphabetically.
func RankColors(items []models.ClothingItem, looks []models.OutfitLook, colors *stylist.ColorModel) []string {
	byID := make(map[uint]models.ClothingItem, len(items))
	counts := map[string]int{}
	add := func(item models.ClothingItem, weight int) {
		name := colors.NormalizeHex(item.PrimaryColor)
		if name == "neutral" {
			return
		}
		counts[name] += weight
	}

	for _, item := range items {
		byID[item.ID] = item
		if item.Favorite {
			add(item, favoriteItemWeight)
		}
	}
	for _, look := range looks {
		for _, id := range look.ItemIDs {
			if item, ok := byID[uint(id)]; ok {
				add(item, lookAppearanceWeight)
			}
		}
	}

	ranked := make([]string, 0, len(counts))
	for name := range counts {
		ranked = append(ranked, name)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}
