package main

import (
	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/seed"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/database"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/fieldcrypt"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("warranty-api")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()

	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(db, model.All()...); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	crypt, err := fieldcrypt.New(&cfg.Crypto)
	if err != nil {
		log.Fatal("Failed to initialize field encryption", zap.Error(err))
	}

	if err := seed.Run(db, crypt); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Database seeded")
}
