package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	PaymentHandler *PaymentHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	payments := e.Group("/payments")
	payments.GET("", d.PaymentHandler.ListPayments)
	payments.POST("", d.PaymentHandler.CreatePayment)
	payments.GET("/:id", d.PaymentHandler.GetPayment)
	payments.DELETE("/:id", d.PaymentHandler.DeletePayment)
}
