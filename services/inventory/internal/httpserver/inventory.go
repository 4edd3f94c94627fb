package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/service"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/transport"
)

type InventoryHTTP struct {
	Svc *service.InventoryService
}

func (h *InventoryHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.create_item")

	var req transport.CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateItem(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_item_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_item_error", "status", 500, "reason", "cannot add inventory to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add inventory to db")
	}

	l.Info("create_item_success", "product_id", item.ProductID)
	return c.JSON(http.StatusCreated, item)
}

func (h *InventoryHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.get_item")

	id := c.Param("id")

	item, err := h.Svc.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_item_error", "status", 404, "reason", "inventory not found")
			return echo.NewHTTPError(http.StatusNotFound, "inventory not found")
		}
		l.Error("get_item_error", "status", 500, "reason", "cannot get inventory", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get inventory")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *InventoryHTTP) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.list_items")

	items, err := h.Svc.ListItems(ctx)
	if err != nil {
		l.Error("list_items_error", "status", 500, "reason", "cannot list inventory", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list inventory")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *InventoryHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.delete_item")

	id := c.Param("id")

	if err := h.Svc.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_item_error", "status", 404, "reason", "inventory not found")
			return echo.NewHTTPError(http.StatusNotFound, "inventory not found")
		}
		l.Error("delete_item_error", "status", 500, "reason", "cannot delete inventory", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete inventory")
	}

	l.Info("delete_item_success", "product_id", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Inventory deleted"})
}
