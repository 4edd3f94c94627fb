package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/services/customer/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.DB.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *GormRepo) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customer := models.Customer{}
	if err := r.DB.WithContext(ctx).Where("customer_id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var items []models.Customer
	if err := r.DB.WithContext(ctx).Order("customer_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) DeleteCustomer(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("customer_id = ?", id).Delete(&models.Customer{})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
