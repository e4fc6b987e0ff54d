// Package stylist ranks outfit combinations from a user's closet.
//
// The pipeline runs leaves first: the user profile is built, items are scored
// for color harmony and style fit, templates are filled into combinations, the
// combinations are ranked and the best one is explained. Every structure is
// request scoped; a Stylist holds only read-only configuration and can serve
// concurrent requests.
package stylist

import (
	"context"

	"outfitapi/models"

	"go.uber.org/zap"
)

type Request struct {
	User        models.UserAccount
	Inventory   []models.ClothingItem
	Occasion    models.Occasion
	Preferences models.Preferences
	Weather     *models.Weather
}

type Stylist struct {
	context    *UserContextBuilder
	color      *ColorTheoryAnalyzer
	style      *StyleCompatibilityAnalyzer
	generator  *CombinationGenerator
	scorer     OutfitScorer
	composer   SuggestionComposer
	colorModel *ColorModel
	logger     *zap.Logger
}

type options struct {
	palettes *Palettes
	colors   *ColorModel
	catalog  *OutfitTemplateCatalog
	filler   SlotFiller
	creative CreativeStrategy
	logger   *zap.Logger
}

type Option func(*options)

func WithPalettes(p Palettes) Option {
	return func(o *options) { o.palettes = &p }
}

// WithColorModel shares a color model with other components, such as the
// preference memory, so both normalize colors against the same tables. It
// takes precedence over WithPalettes.
func WithColorModel(m *ColorModel) Option {
	return func(o *options) { o.colors = m }
}

func WithTemplateCatalog(c *OutfitTemplateCatalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithSlotFiller replaces the first-match filler. BestScoreFiller changes rankings.
func WithSlotFiller(f SlotFiller) Option {
	return func(o *options) { o.filler = f }
}

func WithCreativeStrategy(s CreativeStrategy) Option {
	return func(o *options) { o.creative = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func New(memory PreferenceMemory, opts ...Option) *Stylist {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	palettes := DefaultPalettes()
	if o.palettes != nil {
		palettes = *o.palettes
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	colors := o.colors
	if colors == nil {
		colors = NewColorModel(palettes)
	}
	return &Stylist{
		context:    NewUserContextBuilder(memory, colors),
		color:      NewColorTheoryAnalyzer(colors),
		style:      NewStyleCompatibilityAnalyzer(colors),
		generator:  NewCombinationGenerator(o.catalog, o.filler, o.creative),
		colorModel: colors,
		logger:     o.logger,
	}
}

func (s *Stylist) ColorModel() *ColorModel {
	return s.colorModel
}

// Recommend never fails: an inventory that fills no template yields the
// fallback suggestion. ctx only bounds the preference memory lookup.
func (s *Stylist) Recommend(ctx context.Context, req Request) models.AdvancedStyleSuggestion {
	profile := s.context.Build(ctx, req.User, req.Occasion, req.Preferences)

	colorAnalysis := s.color.Analyze(req.Inventory, profile, req.Preferences)
	styleAnalysis := s.style.Analyze(req.Inventory, req.Occasion, profile)

	combinations := s.generator.Generate(req.Inventory, profile, colorAnalysis, styleAnalysis)
	ranked := s.scorer.Score(combinations, req.Weather)

	log := s.logger.With(
		zap.Uint("user_id", req.User.ID),
		zap.String("occasion", req.Occasion.Title),
		zap.String("tier", string(styleAnalysis.RequiredTier)),
	)
	if len(ranked) == 0 {
		log.Info("no outfit combinations, using fallback", zap.Int("items", len(req.Inventory)))
		return s.composer.Fallback(req.Occasion)
	}
	log.Debug("ranked outfits",
		zap.Int("items", len(req.Inventory)),
		zap.Int("combinations", len(ranked)),
		zap.Float64("top_score", ranked[0].FinalScore),
	)
	return s.composer.Compose(ranked, req.Occasion, colorAnalysis, styleAnalysis)
}
