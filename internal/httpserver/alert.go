package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahouse/menu-client/internal/alert"
)

type AlertHTTP struct {
	Banner *alert.Banner
}

func (h *AlertHTTP) GetAlert(c echo.Context) error {
	msg, ok := h.Banner.Current()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *AlertHTTP) DismissAlert(c echo.Context) error {
	h.Banner.Dismiss()
	return c.NoContent(http.StatusNoContent)
}
