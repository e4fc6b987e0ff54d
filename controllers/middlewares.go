package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"outfitapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserMiddleware resolves the JWT subject into "currentUser".
func UserMiddleware(store services.ClosetStore, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.ErrUnauthorized
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.ErrUnauthorized
			}
			sub, _ := claims["sub"].(string)
			userID, err := strconv.ParseUint(sub, 10, 64)
			if err != nil || userID == 0 {
				logger.Debug("token without usable subject", zap.String("sub", sub))
				return echo.ErrUnauthorized
			}

			currentUser, err := store.FindUser(c.Request().Context(), uint(userID))
			if errors.Is(err, services.ErrNotFound) {
				return echo.ErrUnauthorized
			}
			if err != nil {
				sentry.CaptureException(fmt.Errorf("[User %v] loading user: %w", userID, err))
				return echo.ErrInternalServerError
			}
			if currentUser.Banned {
				return echo.NewHTTPError(http.StatusLocked)
			}
			c.Set("currentUser", currentUser)
			return next(c)
		}
	}
}
