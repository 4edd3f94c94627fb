package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraldbane/e-commerce-microservices/services/payment/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if err := r.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *GormRepo) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment := models.Payment{}
	if err := r.DB.WithContext(ctx).Where("payment_id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *GormRepo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var items []models.Payment
	if err := r.DB.WithContext(ctx).Order("timestamp DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) DeletePayment(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("payment_id = ?", id).Delete(&models.Payment{})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
