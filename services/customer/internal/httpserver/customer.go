package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
	"github.com/geraldbane/e-commerce-microservices/services/customer/internal/service"
	"github.com/geraldbane/e-commerce-microservices/services/customer/internal/transport"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create_customer")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.CreateCustomer(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_customer_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_customer_error", "status", 500, "reason", "cannot add customer to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add customer to db")
	}

	l.Info("create_customer_success", "customer_id", customer.CustomerID)
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer")

	id := c.Param("id")

	customer, err := h.Svc.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_customer_error", "status", 404, "reason", "customer not found")
			return echo.NewHTTPError(http.StatusNotFound, "customer not found")
		}
		l.Error("get_customer_error", "status", 500, "reason", "cannot get customer", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get customer")
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.list_customers")

	items, err := h.Svc.ListCustomers(ctx)
	if err != nil {
		l.Error("list_customers_error", "status", 500, "reason", "cannot list customers", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list customers")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CustomerHTTP) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete_customer")

	id := c.Param("id")

	if err := h.Svc.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_customer_error", "status", 404, "reason", "customer not found")
			return echo.NewHTTPError(http.StatusNotFound, "customer not found")
		}
		l.Error("delete_customer_error", "status", 500, "reason", "cannot delete customer", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete customer")
	}

	l.Info("delete_customer_success", "customer_id", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Customer deleted"})
}
