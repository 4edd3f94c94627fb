package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	InventoryHandler *InventoryHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	inventory := e.Group("/inventory")
	inventory.GET("", d.InventoryHandler.ListItems)
	inventory.POST("", d.InventoryHandler.CreateItem)
	inventory.GET("/:id", d.InventoryHandler.GetItem)
	inventory.DELETE("/:id", d.InventoryHandler.DeleteItem)
}
