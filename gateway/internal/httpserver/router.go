package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Gateway *GatewayHTTP

	CustomerURL  string
	ProductURL   string
	InventoryURL string
	OrderURL     string
}

func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/create-order", d.Gateway.CreateOrder)

	customerProxy, err := newProxy(d.CustomerURL, "customer", nil)
	if err != nil {
		return err
	}

	productProxy, err := newProxy(d.ProductURL, "product", nil)
	if err != nil {
		return err
	}

	inventoryProxy, err := newProxy(d.InventoryURL, "inventory", nil)
	if err != nil {
		return err
	}

	// The order service keys customer lookups under /orders/by_customer.
	orderProxy, err := newProxy(d.OrderURL, "order", func(path string) string {
		return "/orders/by_customer/" + strings.TrimPrefix(path, "/orders/")
	})
	if err != nil {
		return err
	}

	e.GET("/customers/:id", customerProxy)
	e.GET("/products/:id", productProxy)
	e.GET("/inventory/:id", inventoryProxy)
	e.GET("/orders/:customer_id", orderProxy)

	return nil
}
