package config

import (
	"log"
	"os"
)

// Config carries the gateway listen address and the base URL of every record
// service. Collaborator endpoints are explicit construction-time inputs, not
// ambient globals, so tests can point the gateway at substitutes.
type Config struct {
	ListenAddr   string
	CustomerURL  string
	ProductURL   string
	InventoryURL string
	OrderURL     string
	PaymentURL   string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func Load() *Config {
	cfg := &Config{
		ListenAddr:   getenv("GATEWAY_ADDR", ":8000"),
		CustomerURL:  must(os.Getenv("CUSTOMER_SERVICE_URL"), "CUSTOMER_SERVICE_URL"),
		ProductURL:   must(os.Getenv("PRODUCT_SERVICE_URL"), "PRODUCT_SERVICE_URL"),
		InventoryURL: must(os.Getenv("INVENTORY_SERVICE_URL"), "INVENTORY_SERVICE_URL"),
		OrderURL:     must(os.Getenv("ORDER_SERVICE_URL"), "ORDER_SERVICE_URL"),
		PaymentURL:   getenv("PAYMENT_SERVICE_URL", ""),
	}
	return cfg
}
