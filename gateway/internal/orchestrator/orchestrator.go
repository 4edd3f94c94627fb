// Package orchestrator coordinates the record services into a single
// order-creation decision. Validation and remote checks run sequentially and
// stop at the first failure, so every error is attributed to exactly one step
// and no partial state is ever written before the final persistence call.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/geraldbane/e-commerce-microservices/gateway/internal/client"
	"github.com/geraldbane/e-commerce-microservices/pkg/isotime"
	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
)

// Capability interfaces over the record services, one per resource, so tests
// can substitute in-memory fakes for the HTTP clients.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, id string) (*client.Customer, error)
}

type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (*client.Product, error)
}

type InventoryStock interface {
	GetInventory(ctx context.Context, productID string) (*client.Inventory, error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, doc client.OrderDocument) (*client.OrderDocument, error)
}

type OrderRequest struct {
	CustomerID      *string             `json:"customer_id"`
	Products        *[]client.OrderLine `json:"products"`
	TotalAmount     *float64            `json:"total_amount"`
	Status          *string             `json:"status"`
	Timestamp       *string             `json:"timestamp"`
	Updated         *string             `json:"updated"`
	Confirmed       *bool               `json:"confirmed"`
	TrackingNumbers *[]string           `json:"tracking_numbers"`
}

type Confirmation struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

const confirmationStatus = "order created"

type Orchestrator struct {
	Customers CustomerDirectory
	Products  ProductCatalog
	Inventory InventoryStock
	Orders    OrderStore
}

// CreateOrder validates the request, confirms the customer, each product and
// its stock, recomputes the total from current product prices and delegates
// persistence to the order service. The client-declared total_amount is
// required but never trusted.
func (o *Orchestrator) CreateOrder(ctx context.Context, req OrderRequest) (*Confirmation, error) {
	l := logging.FromContext(ctx)

	if err := validate(req); err != nil {
		return nil, err
	}

	timestamp, err := isotime.Parse(*req.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timestamp or updated format, use ISO 8601", ErrValidation)
	}
	updated, err := isotime.Parse(*req.Updated)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timestamp or updated format, use ISO 8601", ErrValidation)
	}

	// Assigned before any remote call so the id is stable in logs even when
	// persistence fails. A failed attempt discards it; retries get a new one.
	orderID := uuid.NewString()

	if _, err := o.Customers.GetCustomer(ctx, *req.CustomerID); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: invalid customer ID", ErrReference)
		}
		l.Error("customer_lookup_failed", "customer_id", *req.CustomerID, "error", err)
		return nil, fmt.Errorf("%w: customer service unavailable", ErrUnavailable)
	}

	// Lines are checked in submission order and the first failure stops the
	// loop, which keeps error attribution deterministic.
	var totalAmount float64
	for _, line := range *req.Products {
		product, err := o.Products.GetProduct(ctx, line.ProductID)
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: invalid product ID: %s", ErrReference, line.ProductID)
			}
			l.Error("product_lookup_failed", "product_id", line.ProductID, "error", err)
			return nil, fmt.Errorf("%w: product service unavailable", ErrUnavailable)
		}

		// The total sums unit prices per line; quantity is deliberately not
		// factored in. Changing that changes the external contract.
		totalAmount += product.Price

		inv, err := o.Inventory.GetInventory(ctx, line.ProductID)
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: product out of stock: %s", ErrReference, line.ProductID)
			}
			l.Error("inventory_lookup_failed", "product_id", line.ProductID, "error", err)
			return nil, fmt.Errorf("%w: inventory service unavailable", ErrUnavailable)
		}
		if inv.Stock <= 0 {
			return nil, fmt.Errorf("%w: product out of stock: %s", ErrReference, line.ProductID)
		}
	}

	doc := client.OrderDocument{
		OrderID:         orderID,
		CustomerID:      *req.CustomerID,
		Products:        *req.Products,
		TotalAmount:     totalAmount,
		Status:          *req.Status,
		Timestamp:       timestamp.Format(time.RFC3339),
		Updated:         updated.Format(time.RFC3339),
		Confirmed:       *req.Confirmed,
		TrackingNumbers: *req.TrackingNumbers,
	}

	l.Info("order_validated", "order_id", orderID, "customer_id", *req.CustomerID, "total_amount", totalAmount)

	if _, err := o.Orders.CreateOrder(ctx, doc); err != nil {
		if isRejected(err) {
			l.Error("order_write_rejected", "order_id", orderID, "error", err)
			return nil, fmt.Errorf("%w: failed to create order", ErrPersistence)
		}
		l.Error("order_write_failed", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("%w: order service unavailable", ErrUnavailable)
	}

	return &Confirmation{
		OrderID:     orderID,
		TotalAmount: totalAmount,
		Status:      confirmationStatus,
	}, nil
}

func validate(req OrderRequest) error {
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
			return fmt.Errorf("%w: missing required field: %s", ErrValidation, f.name)
		}
	}

	if len(*req.Products) == 0 {
		return fmt.Errorf("%w: products must not be empty", ErrValidation)
	}
	for _, line := range *req.Products {
		if line.ProductID == "" {
			return fmt.Errorf("%w: product_id required on every line", ErrValidation)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
	}

	return nil
}
