package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/geraldbane/e-commerce-microservices/pkg/isotime"
	"github.com/geraldbane/e-commerce-microservices/services/order/internal/models"
	"github.com/geraldbane/e-commerce-microservices/services/order/internal/repo"
	"github.com/geraldbane/e-commerce-microservices/services/order/internal/transport"
)

var ErrValidation = errors.New("validation") // 400

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"customer_id", req.CustomerID == nil},
		{"products", req.Products == nil},
		{"total_amount", req.TotalAmount == nil},
		{"status", req.Status == nil},
		{"timestamp", req.Timestamp == nil},
		{"updated", req.Updated == nil},
		{"confirmed", req.Confirmed == nil},
		{"tracking_numbers", req.TrackingNumbers == nil},
	}
	for _, f := range required {
		if f.missing {
			return nil, fmt.Errorf("%w: missing required field: %s", ErrValidation, f.name)
		}
	}

	timestamp, err := isotime.Parse(*req.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timestamp format, use ISO 8601", ErrValidation)
	}
	updated, err := isotime.Parse(*req.Updated)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid updated format, use ISO 8601", ErrValidation)
	}

	orderID := uuid.NewString()
	if req.OrderID != nil && *req.OrderID != "" {
		if _, err := uuid.Parse(*req.OrderID); err != nil {
			return nil, fmt.Errorf("%w: order_id is not a uuid", ErrValidation)
		}
		orderID = *req.OrderID
	}

	order := &models.Order{
		OrderID:         orderID,
		CustomerID:      *req.CustomerID,
		Products:        *req.Products,
		TotalAmount:     *req.TotalAmount,
		Status:          *req.Status,
		Timestamp:       timestamp,
		Updated:         updated,
		Confirmed:       *req.Confirmed,
		TrackingNumbers: *req.TrackingNumbers,
	}

	return s.Repo.CreateOrder(ctx, order)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}
