package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"rttm-inventory-service/internal/app/routes"
	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/internal/infrastructure/database"
	"rttm-inventory-service/pkg/logger"
)

// @title RTTM Inventory Service API
// @version 1.0
// @description Physical IT inventory tracking for buildings, rooms and devices
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	if err := logger.SetupLogger(); err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Error("database connection failed: %v", err)
		log.Fatalf("database connection failed: %v", err)
	}
	db := pool.GetDB()

	switch cfg.DBMigrationMode {
	case "drop":
		logger.Warning("migration mode 'drop': recreating all tables")
		err = database.DropAndRecreate(db)
	default:
		err = database.Migrate(db)
	}
	if err != nil {
		logger.Error("migration failed: %v", err)
		log.Fatalf("migration failed: %v", err)
	}

	authService := services.NewAuthService(db, cfg, services.NewJWTService(cfg, db))
	if err := authService.EnsureAdminExists(context.Background()); err != nil {
		logger.Error("admin seeding failed: %v", err)
		log.Fatalf("admin seeding failed: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	logger.Info("listening on :%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		logger.Error("server stopped: %v", err)
		log.Fatalf("server stopped: %v", err)
	}
}
