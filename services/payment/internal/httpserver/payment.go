package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
	"github.com/geraldbane/e-commerce-microservices/services/payment/internal/service"
	"github.com/geraldbane/e-commerce-microservices/services/payment/internal/transport"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create_payment")

	var req transport.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_payment_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	payment, err := h.Svc.CreatePayment(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_payment_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_payment_error", "status", 500, "reason", "cannot add payment to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add payment to db")
	}

	l.Info("create_payment_success", "payment_id", payment.PaymentID)
	return c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHTTP) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.get_payment")

	id := c.Param("id")

	payment, err := h.Svc.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_payment_error", "status", 404, "reason", "payment not found")
			return echo.NewHTTPError(http.StatusNotFound, "payment not found")
		}
		l.Error("get_payment_error", "status", 500, "reason", "cannot get payment", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get payment")
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHTTP) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.list_payments")

	items, err := h.Svc.ListPayments(ctx)
	if err != nil {
		l.Error("list_payments_error", "status", 500, "reason", "cannot list payments", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list payments")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *PaymentHTTP) DeletePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.delete_payment")

	id := c.Param("id")

	if err := h.Svc.DeletePayment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_payment_error", "status", 404, "reason", "payment not found")
			return echo.NewHTTPError(http.StatusNotFound, "payment not found")
		}
		l.Error("delete_payment_error", "status", 500, "reason", "cannot delete payment", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete payment")
	}

	l.Info("delete_payment_success", "payment_id", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Payment deleted"})
}
