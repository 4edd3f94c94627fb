package transport

type CreatePaymentRequest struct {
	OrderID        *string   `json:"order_id"`
	Amount         *float64  `json:"amount"`
	Status         *string   `json:"status"`
	Timestamp      *string   `json:"timestamp"`
	Updated        *string   `json:"updated"`
	Expired        *bool     `json:"expired"`
	PaymentMethods *[]string `json:"payment_methods"`
}
