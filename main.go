// main.go
package main

import (
	"log"

	"property-hub/cmd"
	"property-hub/internal/data/repository"
	"property-hub/internal/wire"
	"property-hub/pkg/database"
	"property-hub/pkg/gateway"
	"property-hub/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Paystack.SecretKey == "" {
		logger.Warn("PAYSTACK_SECRET_KEY is not set, online payments disabled")
	}

	// Initialize all repositories and the payment gateway
	repos := repository.NewRepository(db, logger)
	paystack := gateway.NewPaystack(config.Paystack, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, paystack, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
