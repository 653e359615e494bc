package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func statusResponse(c echo.Context, healthy bool) error {
	if !healthy {
		return c.String(http.StatusInternalServerError, NotHealthyMessage)
	}
	return c.String(http.StatusOK, AliveMessage)
}
