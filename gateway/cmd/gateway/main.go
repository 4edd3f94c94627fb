package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/geraldbane/e-commerce-microservices/gateway/internal/client"
	"github.com/geraldbane/e-commerce-microservices/gateway/internal/config"
	"github.com/geraldbane/e-commerce-microservices/gateway/internal/httpserver"
	"github.com/geraldbane/e-commerce-microservices/gateway/internal/orchestrator"
	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
	loggingmw "github.com/geraldbane/e-commerce-microservices/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load("gateway/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", "gateway")
	slog.SetDefault(logger)

	orc := &orchestrator.Orchestrator{
		Customers: client.New(cfg.CustomerURL),
		Products:  client.New(cfg.ProductURL),
		Inventory: client.New(cfg.InventoryURL),
		Orders:    client.New(cfg.OrderURL),
	}

	e := echo.New()
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	if err := httpserver.Register(e, &httpserver.Deps{
		Gateway:      &httpserver.GatewayHTTP{Orc: orc},
		CustomerURL:  cfg.CustomerURL,
		ProductURL:   cfg.ProductURL,
		InventoryURL: cfg.InventoryURL,
		OrderURL:     cfg.OrderURL,
	}); err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
