package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CreateClothingIn struct {
	Name         string  `json:"name" validate:"omitempty,max=100"`
	FileName     *string `json:"file_name" validate:"omitempty,max=200"`
	Category     string  `json:"category" validate:"required,category"`
	Formality    string  `json:"formality" validate:"omitempty,formality"`
	PrimaryColor string  `json:"primary_color" validate:"omitempty,hexcolor"`
	Season       string  `json:"season" validate:"omitempty,max=50"`
	Favorite     bool    `json:"favorite"`
	Notes        *string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateClothingIn struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Formality *string `json:"formality" validate:"omitempty,formality"`
	Season    *string `json:"season" validate:"omitempty,max=50"`
	Favorite  *bool   `json:"favorite"`
	Notes     *string `json:"notes" validate:"omitempty,max=500"`
}

type ClothingResponse struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Formality        string  `json:"formality"`
	PrimaryColor     string  `json:"primary_color"`
	Season           string  `json:"season"`
	Favorite         bool    `json:"favorite"`
	Notes            *string `json:"notes"`
	ProcessingStatus string  `json:"processing_status"`
	Uri              *string `json:"uri,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ClothingCreatedResponse struct {
	ClothingResponse ClothingResponse `json:"clothes"`
	FileUploadUrl    string           `json:"file_upload_url,omitempty"`
}

type ClothesListResponse struct {
	Tops        []ClothingResponse `json:"tops"`
	Bottoms     []ClothingResponse `json:"bottoms"`
	Footwear    []ClothingResponse `json:"footwear"`
	Outerwear   []ClothingResponse `json:"outerwear"`
	Dresses     []ClothingResponse `json:"dresses"`
	Suits       []ClothingResponse `json:"suits"`
	Accessories []ClothingResponse `json:"accessories"`
}

type ClothesController struct {
	Store      services.ClosetStore
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
	Enqueuer   tasks.Enqueuer
	// Observer forgets learned colors when favorites change
	Observer   LookObserver
	BucketName string
	Logger     *zap.Logger
}

func (controller *ClothesController) ClothingRoutes(g *echo.Group) {
	g.POST("/create", controller.CreateClothing)
	g.GET("/list", controller.ListClothes)
	g.PATCH("/:id", controller.UpdateClothing)
}

func toClothingResponse(item models.ClothingItem) ClothingResponse {
	return ClothingResponse{
		ID:               item.ID,
		Name:             item.Name,
		Category:         string(item.Category),
		Formality:        string(item.Formality),
		PrimaryColor:     item.PrimaryColor,
		Season:           item.Season,
		Favorite:         item.Favorite,
		Notes:            item.Notes,
		ProcessingStatus: item.ProcessingStatus,
		CreatedAt:        formatTime(item.CreatedAt),
		UpdatedAt:        formatTime(item.UpdatedAt),
	}
}

// canonicalColor uppercases a hex color and expands the #RGB shorthand.
func canonicalColor(hex string) string {
	hex = strings.ToUpper(strings.TrimSpace(hex))
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	return hex
}

func (controller *ClothesController) forgetColors(ctx context.Context, userID uint) {
	if controller.Observer != nil {
		controller.Observer.Forget(ctx, userID)
	}
}

// objectKey keeps uploads under the owner's prefix and drops any client directories.
func objectKey(userID uint, fileName string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	return fmt.Sprintf("clothes/%d/%s", userID, base)
}

func (controller *ClothesController) CreateClothing(c echo.Context) error {
	var req CreateClothingIn
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	clothing := models.ClothingItem{
		Name:             req.Name,
		OwnerID:          user.ID,
		Category:         models.ParseCategory(req.Category),
		Formality:        models.ParseFormality(req.Formality),
		PrimaryColor:     canonicalColor(req.PrimaryColor),
		Season:           req.Season,
		Favorite:         req.Favorite,
		Notes:            req.Notes,
		ProcessingStatus: services.ProcessingIdle,
	}

	var uploadUrl string
	if req.FileName != nil && strings.TrimSpace(*req.FileName) != "" {
		key := objectKey(user.ID, *req.FileName)
		uploadUrl, err = controller.AWSService.PresignLink(ctx, controller.BucketName, key)
		if err != nil {
			controller.Logger.Error("unable to presign upload", zap.Uint("user_id", user.ID), zap.String("object_key", key), zap.Error(err))
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Error while creating clothes with attachment",
			})
		}
		clothing.ImageURL = &key
		clothing.ProcessingStatus = services.ProcessingPending
	}

	if err := controller.Store.CreateItem(ctx, &clothing); err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save clothes, please try again"})
	}
	if clothing.Favorite {
		controller.forgetColors(ctx, user.ID)
	}

	if clothing.ProcessingStatus == services.ProcessingPending {
		info, err := tasks.EnqueueClothingProcessing(controller.Enqueuer, clothing.ID)
		if err != nil {
			// the stale sweep picks the item up later
			controller.Logger.Warn("could not enqueue clothing processing", zap.Uint("item_id", clothing.ID), zap.Error(err))
			sentry.CaptureException(err)
		} else {
			controller.Logger.Info("process clothing task submitted", zap.Uint("item_id", clothing.ID), zap.String("task_id", info.ID))
		}
	}

	return c.JSON(http.StatusCreated, ClothingCreatedResponse{
		ClothingResponse: toClothingResponse(clothing),
		FileUploadUrl:    uploadUrl,
	})
}

func (controller *ClothesController) UpdateClothing(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid clothes id"})
	}
	var req UpdateClothingIn
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	item, err := controller.Store.GetItem(ctx, uint(id))
	if errors.Is(err, services.ErrNotFound) || (err == nil && item.OwnerID != user.ID) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Clothes not found"})
	}
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch clothes"})
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Formality != nil {
		item.Formality = models.ParseFormality(*req.Formality)
	}
	if req.Season != nil {
		item.Season = *req.Season
	}
	favoriteChanged := req.Favorite != nil && *req.Favorite != item.Favorite
	if req.Favorite != nil {
		item.Favorite = *req.Favorite
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	// the photo processor owns the remaining columns
	if err := controller.Store.UpdateItem(ctx, &item, services.ItemUserColumns...); err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update clothes, please try again"})
	}
	if favoriteChanged {
		controller.forgetColors(ctx, user.ID)
	}
	if fresh, err := controller.Store.GetItem(ctx, item.ID); err == nil {
		item = fresh
	}
	return c.JSON(http.StatusOK, toClothingResponse(item))
}

// populatePresignedClothingImages resolves read links concurrently. A failing
// cache falls back to presigning directly, a failing fallback leaves the link empty.
func (controller *ClothesController) populatePresignedClothingImages(ctx context.Context, clothes []models.ClothingItem) []ClothingResponse {
	if len(clothes) == 0 {
		return []ClothingResponse{}
	}

	var wg sync.WaitGroup
	processedResponses := make([]ClothingResponse, len(clothes))

	for i, clothingItem := range clothes {
		wg.Add(1)
		go func(index int, item models.ClothingItem) {
			defer wg.Done()

			response := toClothingResponse(item)
			if item.ImageURL != nil && *item.ImageURL != "" {
				imageUrl := controller.readURL(ctx, *item.ImageURL)
				response.Uri = &imageUrl
			}
			processedResponses[index] = response
		}(i, clothingItem)
	}

	wg.Wait()
	return processedResponses
}

func (controller *ClothesController) readURL(ctx context.Context, objectKey string) string {
	url, err := controller.URLCache.GetReadURL(ctx, objectKey)
	if err == nil {
		return url
	}
	controller.Logger.Warn("url cache failed, presigning directly", zap.String("object_key", objectKey), zap.Error(err))
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("failure_type", "cache_system")
		scope.SetExtra("objectKey", objectKey)
		sentry.CaptureException(err)
	})

	fallbackUrl, fallbackErr := controller.AWSService.GetPresignedR2FileReadURL(ctx, controller.BucketName, objectKey)
	if fallbackErr != nil {
		controller.Logger.Error("presign fallback failed", zap.String("object_key", objectKey), zap.Error(fallbackErr))
		sentry.CaptureException(fallbackErr)
		return ""
	}
	return fallbackUrl
}

func (controller *ClothesController) ListClothes(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	clothes, err := controller.Store.ListItems(c.Request().Context(), user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch clothes"})
	}
	processedResponses := controller.populatePresignedClothingImages(c.Request().Context(), clothes)

	response := ClothesListResponse{
		Tops:        []ClothingResponse{},
		Bottoms:     []ClothingResponse{},
		Footwear:    []ClothingResponse{},
		Outerwear:   []ClothingResponse{},
		Dresses:     []ClothingResponse{},
		Suits:       []ClothingResponse{},
		Accessories: []ClothingResponse{},
	}

	for _, resp := range processedResponses {
		switch models.Category(resp.Category) {
		case models.Tops:
			response.Tops = append(response.Tops, resp)
		case models.Bottoms:
			response.Bottoms = append(response.Bottoms, resp)
		case models.Footwear:
			response.Footwear = append(response.Footwear, resp)
		case models.Outerwear:
			response.Outerwear = append(response.Outerwear, resp)
		case models.Dresses:
			response.Dresses = append(response.Dresses, resp)
		case models.Suits:
			response.Suits = append(response.Suits, resp)
		case models.Accessories:
			response.Accessories = append(response.Accessories, resp)
		}
	}

	return c.JSON(http.StatusOK, response)
}
