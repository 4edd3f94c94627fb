package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/services/order/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("timestamp DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Where("customer_id = ?", customerID).Order("timestamp DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
