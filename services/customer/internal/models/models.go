package models

import "time"

type Customer struct {
	CustomerID    string    `gorm:"primaryKey"       json:"customer_id"`
	Name          string    `gorm:"not null"         json:"name"`
	Email         string    `gorm:"not null;index"   json:"email"`
	Address       string    `gorm:"not null"         json:"address"`
	Updated       time.Time `gorm:"not null"         json:"updated"`
	Confirmed     bool      `json:"confirmed"`
	OrdersHistory []string  `gorm:"serializer:json"  json:"orders_history"`
}
