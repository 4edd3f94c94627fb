package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) GetItem(ctx context.Context, productID string) (*models.InventoryItem, error) {
	item := models.InventoryItem{}
	if err := r.DB.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.DB.WithContext(ctx).Order("product_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, productID string) error {
	res := r.DB.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.InventoryItem{})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
