package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/geraldbane/e-commerce-microservices/pkg/isotime"
	"github.com/geraldbane/e-commerce-microservices/services/payment/internal/models"
	"github.com/geraldbane/e-commerce-microservices/services/payment/internal/repo"
	"github.com/geraldbane/e-commerce-microservices/services/payment/internal/transport"
)

var ErrValidation = errors.New("validation") // 400

type PaymentService struct {
	Repo *repo.GormRepo
}

func (s *PaymentService) CreatePayment(ctx context.Context, req transport.CreatePaymentRequest) (*models.Payment, error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"order_id", req.OrderID == nil},
		{"amount", req.Amount == nil},
		{"status", req.Status == nil},
		{"timestamp", req.Timestamp == nil},
		{"updated", req.Updated == nil},
		{"expired", req.Expired == nil},
		{"payment_methods", req.PaymentMethods == nil},
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

	payment := &models.Payment{
		PaymentID:      uuid.NewString(),
		OrderID:        *req.OrderID,
		Amount:         *req.Amount,
		Status:         *req.Status,
		Timestamp:      timestamp,
		Updated:        updated,
		Expired:        *req.Expired,
		PaymentMethods: *req.PaymentMethods,
	}

	return s.Repo.CreatePayment(ctx, payment)
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.Repo.GetPayment(ctx, id)
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.Repo.ListPayments(ctx)
}

func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	return s.Repo.DeletePayment(ctx, id)
}
