package main

import (
	"context"
	"fmt"
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

	pkgdb "github.com/geraldbane/e-commerce-microservices/pkg/db"
	"github.com/geraldbane/e-commerce-microservices/pkg/logging"
	loggingmw "github.com/geraldbane/e-commerce-microservices/pkg/middleware/logging"

	inventorycfg "github.com/geraldbane/e-commerce-microservices/services/inventory/internal/config"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/httpserver"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/models"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/repo"
	"github.com/geraldbane/e-commerce-microservices/services/inventory/internal/service"
)

func main() {
	if err := godotenv.Load("services/inventory/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := inventorycfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.InventoryItem{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	repo := &repo.GormRepo{DB: db}
	svc := &service.InventoryService{Repo: repo}
	handler := &httpserver.InventoryHTTP{Svc: svc}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{InventoryHandler: handler})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("inventory listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("inventory stopped")
}
