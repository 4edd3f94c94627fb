package transport

type CreateInventoryRequest struct {
	ProductID          *string   `json:"product_id"`
	Stock              *int      `json:"stock"`
	Updated            *string   `json:"updated"`
	LowStockAlert      *bool     `json:"low_stock_alert"`
	WarehouseLocations *[]string `json:"warehouse_locations"`
}
