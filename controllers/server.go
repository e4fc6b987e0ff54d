package controllers

import (
	"context"
	"net/http"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/stylist"
	"outfitapi/tasks"

	"github.com/go-playground/validator"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// LookObserver is told when a user saves a look or changes a favorite, so
// learned preferences refresh.
type LookObserver interface {
	Forget(ctx context.Context, userID uint)
}

type ServerDeps struct {
	Store      services.ClosetStore
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
	Enqueuer   tasks.Enqueuer
	Stylist    *stylist.Stylist
	Memory     stylist.PreferenceMemory
	Looks      LookObserver
	Logger     *zap.Logger
	JWTSecret  string
	BucketName string
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("platform", models.ValidatePlatform)
	v.RegisterValidation("category", models.ValidateCategory)
	v.RegisterValidation("formality", models.ValidateFormality)
	return &CustomValidator{validator: v}
}

func SetupServer(deps ServerDeps) *echo.Echo {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(deps.JWTSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			deps.Logger.Debug("rejected token", zap.Error(err))
			return echo.ErrUnauthorized
		},
	})
	closetGroup := e.Group("/closet", jwtMiddleware, UserMiddleware(deps.Store, deps.Logger))

	clothesController := ClothesController{
		Store:      deps.Store,
		AWSService: deps.AWSService,
		URLCache:   deps.URLCache,
		Enqueuer:   deps.Enqueuer,
		Observer:   deps.Looks,
		BucketName: deps.BucketName,
		Logger:     deps.Logger,
	}
	clothesController.ClothingRoutes(closetGroup.Group("/clothes"))

	looksController := LooksController{Store: deps.Store, Observer: deps.Looks, Logger: deps.Logger}
	looksController.LookRoutes(closetGroup.Group("/looks"))

	recommendController := RecommendController{Store: deps.Store, Stylist: deps.Stylist, Logger: deps.Logger}
	recommendController.RecommendRoutes(closetGroup)

	photosController := PhotosController{}
	photosController.PhotoRoutes(closetGroup.Group("/photos"))

	profileController := ProfileController{Store: deps.Store, Memory: deps.Memory}
	profileController.ProfileRoutes(closetGroup.Group("/profile"))

	return e
}
