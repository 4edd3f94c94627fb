package transport

import "github.com/geraldbane/e-commerce-microservices/services/order/internal/models"

type CreateOrderRequest struct {
	// OrderID is optional: the gateway assigns its own before persisting,
	// direct callers get one assigned here.
	OrderID         *string             `json:"order_id"`
	CustomerID      *string             `json:"customer_id"`
	Products        *[]models.OrderLine `json:"products"`
	TotalAmount     *float64            `json:"total_amount"`
	Status          *string             `json:"status"`
	Timestamp       *string             `json:"timestamp"`
	Updated         *string             `json:"updated"`
	Confirmed       *bool               `json:"confirmed"`
	TrackingNumbers *[]string           `json:"tracking_numbers"`
}
