package models

import "time"

// InventoryItem is keyed by product_id: the entry is owned by the product it
// tracks, no separate identifier is assigned.
type InventoryItem struct {
	ProductID          string    `gorm:"primaryKey"       json:"product_id"`
	Stock              int       `gorm:"not null"         json:"stock"`
	Updated            time.Time `gorm:"not null"         json:"updated"`
	LowStockAlert      bool      `json:"low_stock_alert"`
	WarehouseLocations []string  `gorm:"serializer:json"  json:"warehouse_locations"`
}
