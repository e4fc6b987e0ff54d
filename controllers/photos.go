package controllers

import (
	"net/http"

	"outfitapi/models"
	"outfitapi/stylist"

	"github.com/labstack/echo/v4"
)

type PhotoFeaturesIn struct {
	OutfitConfidence   float64  `json:"outfit_confidence" validate:"min=0,max=1"`
	ImageQuality       float64  `json:"image_quality" validate:"min=0,max=1"`
	PoseScore          float64  `json:"pose_score" validate:"min=0,max=1"`
	ForegroundCoverage float64  `json:"foreground_coverage" validate:"min=0,max=1"`
	DominantColors     []string `json:"dominant_colors" validate:"max=10"`
}

type RankPhotosIn struct {
	Photos []PhotoFeaturesIn `json:"photos" validate:"required,min=1,max=50,dive"`
}

type PhotosController struct{}

func (controller *PhotosController) PhotoRoutes(g *echo.Group) {
	g.POST("/rank", controller.RankPhotos)
}

func (controller *PhotosController) RankPhotos(c echo.Context) error {
	var req RankPhotosIn
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	photos := make([]models.PhotoFeatures, len(req.Photos))
	for i, p := range req.Photos {
		photos[i] = models.PhotoFeatures{
			OutfitConfidence:   p.OutfitConfidence,
			ImageQuality:       p.ImageQuality,
			PoseScore:          p.PoseScore,
			ForegroundCoverage: p.ForegroundCoverage,
			DominantColors:     p.DominantColors,
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"ranked": stylist.RankPhotos(photos)})
}
