package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geraldbane/e-commerce-microservices/gateway/internal/orchestrator"
	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
)

type GatewayHTTP struct {
	Orc *orchestrator.Orchestrator
}

func (h *GatewayHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "gateway.create_order")

	var req orchestrator.OrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	conf, err := h.Orc.CreateOrder(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, orchestrator.ErrValidation), errors.Is(err, orchestrator.ErrReference):
			l.Warn("create_order_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, errMessage(err))
		case errors.Is(err, orchestrator.ErrUnavailable):
			l.Error("create_order_error", "status", 503, "reason", err.Error())
			return echo.NewHTTPError(http.StatusServiceUnavailable, errMessage(err))
		case errors.Is(err, orchestrator.ErrPersistence):
			l.Error("create_order_error", "status", 500, "reason", err.Error())
			return echo.NewHTTPError(http.StatusInternalServerError, errMessage(err))
		default:
			l.Error("create_order_error", "status", 500, "reason", err.Error())
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	l.Info("create_order_success", "order_id", conf.OrderID, "total_amount", conf.TotalAmount)
	return c.JSON(http.StatusCreated, conf)
}
