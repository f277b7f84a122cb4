package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahouse/menu-client/internal/alert"
	"github.com/pizzahouse/menu-client/internal/collection"
	"github.com/pizzahouse/menu-client/internal/gateway"
	"github.com/pizzahouse/menu-client/internal/media"
)

type Deps struct {
	Gateway   *gateway.Client
	Products  *collection.ProductCollection
	Orders    *collection.OrderCollection
	Media     media.ObjectStore
	Banner    *alert.Banner
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	catalog := &CatalogHTTP{Col: d.Products, Banner: d.Banner}
	orders := &OrdersHTTP{Col: d.Orders, Banner: d.Banner}
	categories := &CategoriesHTTP{Gateway: d.Gateway}
	admin := &AdminHTTP{Gateway: d.Gateway, Media: d.Media, Banner: d.Banner, JWTSecret: d.JWTSecret}
	alerts := &AlertHTTP{Banner: d.Banner}

	adminMW := RequireAdmin(d.JWTSecret)

	e.GET("/categories", categories.GetCategories)

	products := e.Group("/catalog/products")
	products.GET("", catalog.GetProducts)
	adm := products.Group("", adminMW)
	adm.POST("", catalog.CreateProduct)
	adm.PUT("/:id", catalog.UpdateProduct)
	adm.DELETE("/:id", catalog.DeleteProduct)
	adm.POST("/:id/availability", catalog.ToggleAvailability)

	e.GET("/orders", orders.GetOrders)
	e.POST("/orders/:id/delivered", orders.MarkDelivered, adminMW)

	e.POST("/admin/login", admin.Login)
	e.POST("/admin/media", admin.UploadMedia, adminMW)

	e.GET("/alert", alerts.GetAlert)
	e.DELETE("/alert", alerts.DismissAlert)
}
