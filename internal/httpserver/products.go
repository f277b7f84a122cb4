package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahouse/menu-client/internal/alert"
	"github.com/pizzahouse/menu-client/internal/collection"
	"github.com/pizzahouse/menu-client/internal/gateway"
	"github.com/pizzahouse/menu-client/internal/logging"
	"github.com/pizzahouse/menu-client/internal/view"
)

type CatalogHTTP struct {
	Col    *collection.ProductCollection
	Banner *alert.Banner
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	items := view.Filter(h.Col.Products(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_product")

	var req gateway.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Error("create_product_failed", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	created, err := h.Col.Add(ctx, req)
	if err != nil {
		h.Banner.Set(alert.KindFault, "Failed to add product")
		l.Error("create_product_failed", "error", err)
		return httpError(err)
	}

	h.Banner.Set(alert.KindSuccess, "Product added successfully")
	l.Info("create_product_success", "product_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.update_product")

	var req gateway.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Error("update_product_failed", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	updated, err := h.Col.Edit(ctx, c.Param("id"), req)
	if err != nil {
		h.Banner.Set(alert.KindFault, "Failed to update product")
		l.Error("update_product_failed", "product_id", c.Param("id"), "error", err)
		return httpError(err)
	}

	h.Banner.Set(alert.KindSuccess, "Product updated successfully")
	l.Info("update_product_success", "product_id", updated.ID)
	return c.JSON(http.StatusOK, updated)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.delete_product")

	if err := h.Col.Remove(ctx, c.Param("id")); err != nil {
		h.Banner.Set(alert.KindFault, "Failed to remove product")
		l.Error("delete_product_failed", "product_id", c.Param("id"), "error", err)
		return httpError(err)
	}

	l.Info("delete_product_success", "product_id", c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHTTP) ToggleAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.toggle_availability")

	updated, err := h.Col.ToggleAvailability(ctx, c.Param("id"))
	if err != nil {
		h.Banner.Set(alert.KindFault, "Failed to toggle availability")
		l.Error("toggle_availability_failed", "product_id", c.Param("id"), "error", err)
		return httpError(err)
	}

	l.Info("toggle_availability_success", "product_id", updated.ID, "available", updated.Available)
	return c.JSON(http.StatusOK, updated)
}
