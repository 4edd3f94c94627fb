package config

import "github.com/geraldbane/e-commerce-microservices/pkg/config"

type ServiceConfig struct {
	config.Config
}

func Load() ServiceConfig {
	cfg := config.Load()

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	return ServiceConfig{Config: cfg}
}
