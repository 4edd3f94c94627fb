package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/geraldbane/e-commerce-microservices/pkg/isotime"
	"github.com/geraldbane/e-commerce-microservices/services/product/internal/models"
	"github.com/geraldbane/e-commerce-microservices/services/product/internal/repo"
	"github.com/geraldbane/e-commerce-microservices/services/product/internal/transport"
)

var ErrValidation = errors.New("validation") // 400

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"name", req.Name == nil},
		{"description", req.Description == nil},
		{"price", req.Price == nil},
		{"updated", req.Updated == nil},
		{"expired", req.Expired == nil},
		{"categories", req.Categories == nil},
	}
	for _, f := range required {
		if f.missing {
			return nil, fmt.Errorf("%w: missing required field: %s", ErrValidation, f.name)
		}
	}

	if *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	updated, err := isotime.Parse(*req.Updated)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid updated format, use ISO 8601", ErrValidation)
	}

	prod := &models.Product{
		ProductID:   uuid.NewString(),
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		Updated:     updated,
		Expired:     *req.Expired,
		Categories:  *req.Categories,
	}

	return s.Repo.CreateProduct(ctx, prod)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.Repo.DeleteProduct(ctx, id)
}
