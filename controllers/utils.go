package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"outfitapi/models"

	"github.com/labstack/echo/v4"
)

const timeLayout = "2006-01-02T15:04:05Z"

func BoolPointer(b bool) *bool {
	return &b
}

func StrPointer(b string) *string {
	return &b
}

func errorResponse(code int, msg string) *echo.HTTPError {
	return echo.NewHTTPError(code, map[string]string{"error": msg})
}

func currentUser(c echo.Context) (models.UserAccount, error) {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return models.UserAccount{}, errorResponse(http.StatusUnauthorized, "Unauthorized")
	}
	return user, nil
}

// bindAndValidate returns a ready 400 response error.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg = fmt.Sprint(he.Message)
		}
		return errorResponse(http.StatusBadRequest, msg)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
