package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CustomerHandler *CustomerHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	customers := e.Group("/customers")
	customers.GET("", d.CustomerHandler.ListCustomers)
	customers.POST("", d.CustomerHandler.CreateCustomer)
	customers.GET("/:id", d.CustomerHandler.GetCustomer)
	customers.DELETE("/:id", d.CustomerHandler.DeleteCustomer)
}
