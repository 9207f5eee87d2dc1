package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "toolrent-backend/internal/api/http"
	"toolrent-backend/internal/config"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository/postgres"
	"toolrent-backend/internal/security"
	"toolrent-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ToolRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	statusObserver := service.NewLogStatusObserver()
	eligibility := service.NewEligibilityPolicy(store.RentRepository)

	toolSvc := service.NewToolService(store.ToolRepository, statusObserver)
	clientSvc := service.NewClientService(store.ClientRepository, store.RentRepository)
	rentSvc := service.NewRentService(
		db,
		store.RentRepository,
		store.ToolRepository,
		store.ClientRepository,
		eligibility,
		cfg.Pricing.Policy(),
		statusObserver,
	)

	// Initialize HTTP handlers
	rentHandler := httpapi.NewRentHandler(rentSvc, toolSvc, clientSvc)
	toolHandler := httpapi.NewToolHandler(toolSvc)
	clientHandler := httpapi.NewClientHandler(clientSvc)

	router := httpapi.NewRouter(tokenManager, rentHandler, toolHandler, clientHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
