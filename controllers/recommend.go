package controllers

import (
	"net/http"
	"time"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/stylist"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OccasionIn struct {
	Name   string `json:"name" validate:"omitempty,max=100"`
	Title  string `json:"title" validate:"required,max=200"`
	Season string `json:"season" validate:"omitempty,oneof=spring summer autumn winter"`
}

// toOccasion infers the season from the date when the client omits it.
func (in OccasionIn) toOccasion(now time.Time) models.Occasion {
	occasion := models.Occasion{
		Name:   in.Name,
		Title:  in.Title,
		Season: models.Season(in.Season),
	}
	if occasion.Season == "" {
		occasion.Season = models.SeasonForMonth(now.Month())
	}
	return occasion
}

type PreferencesIn struct {
	StylePreference string `json:"style_preference" validate:"omitempty,max=50"`
	ColorPreference string `json:"color_preference" validate:"omitempty,max=50"`
	ComfortPriority bool   `json:"comfort_priority"`
	Location        string `json:"location" validate:"omitempty,max=100"`
}

type RecommendIn struct {
	Occasion    OccasionIn      `json:"occasion"`
	Preferences PreferencesIn   `json:"preferences"`
	Weather     *models.Weather `json:"weather"`
}

type RecommendController struct {
	Store   services.ClosetStore
	Stylist *stylist.Stylist
	Logger  *zap.Logger
	// Now is overridable in tests, time.Now otherwise.
	Now func() time.Time
}

func (controller *RecommendController) RecommendRoutes(g *echo.Group) {
	g.POST("/recommend", controller.Recommend)
}

func (controller *RecommendController) now() time.Time {
	if controller.Now != nil {
		return controller.Now()
	}
	return time.Now()
}

func (controller *RecommendController) Recommend(c echo.Context) error {
	var req RecommendIn
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	inventory, err := controller.Store.ListItems(ctx, user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch clothes"})
	}

	suggestion := controller.Stylist.Recommend(ctx, stylist.Request{
		User:      user,
		Inventory: inventory,
		Occasion:  req.Occasion.toOccasion(controller.now()),
		Preferences: models.Preferences{
			StylePreference: req.Preferences.StylePreference,
			ColorPreference: req.Preferences.ColorPreference,
			ComfortPriority: req.Preferences.ComfortPriority,
			Location:        req.Preferences.Location,
		},
		Weather: req.Weather,
	})
	return c.JSON(http.StatusOK, suggestion)
}
