package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahouse/menu-client/internal/gateway"
	"github.com/pizzahouse/menu-client/internal/logging"
	"github.com/pizzahouse/menu-client/internal/view"
)

// CategoriesHTTP serves the read-only category list; no overrides or local
// mutations apply, so it fetches per request instead of holding a
// collection.
type CategoriesHTTP struct {
	Gateway *gateway.Client
}

func (h *CategoriesHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "categories.get_categories")

	cats, err := h.Gateway.FetchCategories(ctx)
	if err != nil {
		l.Error("get_categories_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view.Filter(cats, c.QueryParam("q")))
}
