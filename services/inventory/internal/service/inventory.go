package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/geraldbane/e-commerce-microservices/pkg/isotime"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/models"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/repo"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/transport"
)

var ErrValidation = errors.New("validation") // 400

type InventoryService struct {
	Repo *repo.GormRepo
}

func (s *InventoryService) CreateItem(ctx context.Context, req transport.CreateInventoryRequest) (*models.InventoryItem, error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"product_id", req.ProductID == nil},
		{"stock", req.Stock == nil},
		{"updated", req.Updated == nil},
		{"low_stock_alert", req.LowStockAlert == nil},
		{"warehouse_locations", req.WarehouseLocations == nil},
	}
	for _, f := range required {
		if f.missing {
			return nil, fmt.Errorf("%w: missing required field: %s", ErrValidation, f.name)
		}
	}

	updated, err := isotime.Parse(*req.Updated)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid updated format, use ISO 8601", ErrValidation)
	}

	item := &models.InventoryItem{
		ProductID:          *req.ProductID,
		Stock:              *req.Stock,
		Updated:            updated,
		LowStockAlert:      *req.LowStockAlert,
		WarehouseLocations: *req.WarehouseLocations,
	}

	return s.Repo.CreateItem(ctx, item)
}

func (s *InventoryService) GetItem(ctx context.Context, productID string) (*models.InventoryItem, error) {
	return s.Repo.GetItem(ctx, productID)
}

func (s *InventoryService) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	return s.Repo.ListItems(ctx)
}

func (s *InventoryService) DeleteItem(ctx context.Context, productID string) error {
	return s.Repo.DeleteItem(ctx, productID)
}
