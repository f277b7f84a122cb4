package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahouse/menu-client/internal/alert"
	"github.com/pizzahouse/menu-client/internal/collection"
	"github.com/pizzahouse/menu-client/internal/logging"
	"github.com/pizzahouse/menu-client/internal/view"
)

type OrdersHTTP struct {
	Col    *collection.OrderCollection
	Banner *alert.Banner
}

func (h *OrdersHTTP) GetOrders(c echo.Context) error {
	items := h.Col.Orders()
	if term := c.QueryParam("q"); term != "" {
		items = view.Filter(items, term)
	}
	// reversal flips the already-sorted sequence, it is not a re-sort
	if c.QueryParam("reverse") == "true" {
		items = view.Reverse(items)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrdersHTTP) MarkDelivered(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.mark_delivered")

	id := c.Param("id")
	if err := h.Col.MarkDelivered(id); err != nil {
		h.Banner.Set(alert.KindFault, "Failed to mark order delivered")
		l.Error("mark_delivered_failed", "order_id", id, "error", err)
		return httpError(err)
	}

	h.Banner.Set(alert.KindSuccess, "Order marked as delivered")
	l.Info("mark_delivered_success", "order_id", id)
	return c.NoContent(http.StatusNoContent)
}
