package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pfa/internal/config"
	"pfa/internal/database"
	"pfa/internal/logger"
	"pfa/internal/server"
	"pfa/internal/validator"

	_ "pfa/internal/docs" // Import swagger docs
)

// @title           Personal Finance Portfolio API
// @version         1.0
// @description     Stores assets, incomes, debts and retirement accounts, and reports net worth and estimated taxes.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbManager.Ping(ctx); err != nil {
		return fmt.Errorf("database is not reachable: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	router := server.NewRouter(appConfig, server.NewServices(dbManager.DB(), appConfig))

	log.Infow("Starting portfolio API",
		"port", appConfig.Port,
		"filing_year", appConfig.FilingYear,
		"allow_guest", appConfig.AllowGuest,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
