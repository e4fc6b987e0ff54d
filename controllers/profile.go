package controllers

import (
	"net/http"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/stylist"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type UserInfoOut struct {
	ID                   uint     `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	AvatarUrl            string   `json:"avatar_url"`
	ReceiveNotifications bool     `json:"receive_notifications"`
	BodyType             *string  `json:"body_type"`
	Personality          *string  `json:"personality"`
	LearnedColors        []string `json:"learned_colors"`
}

type RegisterPushTokenIn struct {
	Token    string `json:"token" validate:"required,max=4096"`
	Platform string `json:"platform" validate:"required,platform"`
}

type ProfileController struct {
	Store  services.ClosetStore
	Memory stylist.PreferenceMemory
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("/me", func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		learned := []string{}
		if controller.Memory != nil {
			if colors := controller.Memory.MostPreferredColors(c.Request().Context(), user.ID); colors != nil {
				learned = colors
			}
		}
		return c.JSON(http.StatusOK, UserInfoOut{
			ID:                   user.ID,
			Name:                 user.Name,
			Email:                user.Email,
			AvatarUrl:            user.AvatarURL,
			ReceiveNotifications: user.ReceiveNotifications,
			BodyType:             user.BodyType,
			Personality:          user.Personality,
			LearnedColors:        learned,
		})
	})

	g.POST("/push-token", controller.RegisterPushToken)
}

func (controller *ProfileController) RegisterPushToken(c echo.Context) error {
	var req RegisterPushTokenIn
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	token := models.UserPushToken{
		UserAccountID: user.ID,
		Token:         req.Token,
		Platform:      models.Platform(req.Platform),
	}
	if err := controller.Store.SavePushToken(c.Request().Context(), &token); err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to register device, please try again"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": token.ID, "platform": token.Platform})
}
