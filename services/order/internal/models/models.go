package models

import "time"

type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	OrderID         string      `gorm:"primaryKey"       json:"order_id"`
	CustomerID      string      `gorm:"not null;index"   json:"customer_id"`
	Products        []OrderLine `gorm:"serializer:json"  json:"products"`
	TotalAmount     float64     `gorm:"not null"         json:"total_amount"`
	Status          string      `gorm:"not null"         json:"status"`
	Timestamp       time.Time   `gorm:"not null"         json:"timestamp"`
	Updated         time.Time   `gorm:"not null"         json:"updated"`
	Confirmed       bool        `json:"confirmed"`
	TrackingNumbers []string    `gorm:"serializer:json"  json:"tracking_numbers"`
}
