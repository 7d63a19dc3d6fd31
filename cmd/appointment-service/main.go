package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/ShahbazAhmad08/Docto-booking2nd/internal/appointments"
	"github.com/ShahbazAhmad08/Docto-booking2nd/internal/prescriptions"
	"github.com/ShahbazAhmad08/Docto-booking2nd/internal/reviews"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/auth"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/config"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/database"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/logger"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/monitoring"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger := logger.New(cfg.LogLevel)

	// Connect to the booking store
	db, err := database.NewConnection(&cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.CreateSchema(ctx); err != nil {
		cancel()
		appLogger.Fatalf("Failed to create schema: %v", err)
	}
	cancel()

	// Wire repositories and services
	appointmentRepo := appointments.NewRepository(db, appLogger)
	prescriptionRepo := prescriptions.NewRepository(db, appLogger)
	reviewRepo := reviews.NewRepository(db, appLogger)

	appointmentService := appointments.NewService(cfg, appLogger, appointmentRepo, prescriptionRepo)
	prescriptionService := prescriptions.NewService(cfg, appLogger, prescriptionRepo, appointmentRepo)
	reviewService := reviews.NewService(appLogger, reviewRepo, appointmentRepo)

	validator := auth.NewTokenValidator(
		cfg.JWT.SecretKey,
		cfg.JWT.Issuer,
		time.Duration(cfg.JWT.AccessTokenTTL)*time.Second,
	)

	// Build the router
	router := mux.NewRouter()
	if cfg.Monitoring.Enabled {
		router.Use(monitoring.HTTPMiddleware)
		router.Handle(cfg.Monitoring.MetricsPath, monitoring.Handler()).Methods("GET")
	}

	router.HandleFunc(cfg.Monitoring.HealthPath, appointmentService.HealthHandler).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(validator.Middleware)

	appointmentService.RegisterRoutes(api)
	prescriptionService.RegisterRoutes(api)
	reviewService.RegisterRoutes(api)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start service in a goroutine
	go func() {
		appLogger.Infof("Starting Appointment Service on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Failed to start Appointment Service: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down Appointment Service...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Error during shutdown: %v", err)
	}
	appLogger.Info("Appointment Service stopped")
}
