package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/geraldbane/e-commerce-microservices/pkg/isotime"
	"github.com/geraldbane/e-commerce-microservices/services/customer/internal/models"
	"github.com/geraldbane/e-commerce-microservices/services/customer/internal/repo"
	"github.com/geraldbane/e-commerce-microservices/services/customer/internal/transport"
)

var ErrValidation = errors.New("validation") // 400

type CustomerService struct {
	Repo *repo.GormRepo
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"name", req.Name == nil},
		{"email", req.Email == nil},
		{"address", req.Address == nil},
		{"updated", req.Updated == nil},
		{"confirmed", req.Confirmed == nil},
		{"orders_history", req.OrdersHistory == nil},
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

	customer := &models.Customer{
		CustomerID:    uuid.NewString(),
		Name:          *req.Name,
		Email:         *req.Email,
		Address:       *req.Address,
		Updated:       updated,
		Confirmed:     *req.Confirmed,
		OrdersHistory: *req.OrdersHistory,
	}

	return s.Repo.CreateCustomer(ctx, customer)
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.Repo.GetCustomer(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.ListCustomers(ctx)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.Repo.DeleteCustomer(ctx, id)
}
