package main

import (
	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/server"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/database"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("warranty-api")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting warranty management service...", cfg.LogFields()...)

	// Initialize database and run migrations
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(db, model.All()...); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host),
		zap.String("db_name", cfg.DB.DBName))

	// Assemble the HTTP stack
	e, err := server.New(cfg, db)
	if err != nil {
		log.Fatal("Failed to assemble server", zap.Error(err))
	}

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
