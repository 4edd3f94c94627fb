package models

import "time"

type Payment struct {
	PaymentID      string    `gorm:"primaryKey"       json:"payment_id"`
	OrderID        string    `gorm:"not null;index"   json:"order_id"`
	Amount         float64   `gorm:"not null"         json:"amount"`
	Status         string    `gorm:"not null"         json:"status"`
	Timestamp      time.Time `gorm:"not null"         json:"timestamp"`
	Updated        time.Time `gorm:"not null"         json:"updated"`
	Expired        bool      `json:"expired"`
	PaymentMethods []string  `gorm:"serializer:json"  json:"payment_methods"`
}
