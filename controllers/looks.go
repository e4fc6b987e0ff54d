package controllers

import (
	"net/http"
	"time"

	"outfitapi/models"
	"outfitapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type CreateLookIn struct {
	Name     string     `json:"name" validate:"omitempty,max=100"`
	Occasion string     `json:"occasion" validate:"omitempty,max=200"`
	ItemIDs  []uint     `json:"item_ids" validate:"required,min=1,max=10,dive,min=1"`
	WornAt   *time.Time `json:"worn_at"`
}

type LookResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Occasion  string  `json:"occasion"`
	ItemIDs   []int64 `json:"item_ids"`
	WornAt    *string `json:"worn_at"`
	CreatedAt string  `json:"created_at"`
}

type LooksController struct {
	Store    services.ClosetStore
	Observer LookObserver
	Logger   *zap.Logger
}

func (controller *LooksController) LookRoutes(g *echo.Group) {
	g.POST("", controller.CreateLook)
	g.GET("", controller.ListLooks)
}

func toLookResponse(look models.OutfitLook) LookResponse {
	response := LookResponse{
		ID:        look.ID,
		Name:      look.Name,
		Occasion:  look.Occasion,
		ItemIDs:   []int64(look.ItemIDs),
		CreatedAt: formatTime(look.CreatedAt),
	}
	if response.ItemIDs == nil {
		response.ItemIDs = []int64{}
	}
	if look.WornAt != nil {
		response.WornAt = StrPointer(formatTime(*look.WornAt))
	}
	return response
}

func (controller *LooksController) CreateLook(c echo.Context) error {
	var req CreateLookIn
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	items, err := controller.Store.ListItems(ctx, user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch clothes"})
	}
	owned := make(map[uint]bool, len(items))
	for _, item := range items {
		owned[item.ID] = true
	}

	ids := make(pq.Int64Array, 0, len(req.ItemIDs))
	seen := make(map[uint]bool, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		if !owned[id] {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Look contains clothes that are not in your closet"})
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, int64(id))
	}

	look := models.OutfitLook{
		Name:     req.Name,
		OwnerID:  user.ID,
		Occasion: req.Occasion,
		ItemIDs:  ids,
		WornAt:   req.WornAt,
	}
	if err := controller.Store.CreateLook(ctx, &look); err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save look, please try again"})
	}
	if controller.Observer != nil {
		controller.Observer.Forget(ctx, user.ID)
	}
	controller.Logger.Debug("look saved", zap.Uint("user_id", user.ID), zap.Uint("look_id", look.ID), zap.Int("items", len(ids)))

	return c.JSON(http.StatusCreated, toLookResponse(look))
}

func (controller *LooksController) ListLooks(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	looks, err := controller.Store.ListLooks(c.Request().Context(), user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch looks"})
	}
	response := make([]LookResponse, 0, len(looks))
	for _, look := range looks {
		response = append(response, toLookResponse(look))
	}
	return c.JSON(http.StatusOK, response)
}
