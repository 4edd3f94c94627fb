package models

import "time"

type Product struct {
	ProductID   string    `gorm:"primaryKey"       json:"product_id"`
	Name        string    `gorm:"not null"         json:"name"`
	Description string    `gorm:"not null"         json:"description"`
	Price       float64   `gorm:"not null"         json:"price"`
	Updated     time.Time `gorm:"not null"         json:"updated"`
	Expired     bool      `json:"expired"`
	Categories  []string  `gorm:"serializer:json"  json:"categories"`
}
