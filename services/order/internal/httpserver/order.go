package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/geraldbane/e-commerce-microservices/pkg/events"
	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
	"github.com/geraldbane/e-commerce-microservices/services/order/internal/service"
	"github.com/geraldbane/e-commerce-microservices/services/order/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_order_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_order_error", "status", 500, "reason", "cannot add order to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add order to db")
	}

	h.publish(c, order.OrderID, map[string]any{
		"type":         "order_created",
		"order_id":     order.OrderID,
		"customer_id":  order.CustomerID,
		"total_amount": order.TotalAmount,
	})

	l.Info("create_order_success", "order_id", order.OrderID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) ListByCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_by_customer")

	customerID := c.Param("customer_id")

	orders, err := h.Svc.ListByCustomer(ctx, customerID)
	if err != nil {
		l.Error("list_by_customer_error", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, orders)
}
