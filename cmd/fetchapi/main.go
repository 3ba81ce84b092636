package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/pkg/logger"
)

// One-shot fetch of the external statistics feed, meant to run from cron.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	if err := logger.SetupLogger(); err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}

	cfg := config.GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fetchService := services.NewFetchService(cfg)
	path, err := fetchService.FetchStatSnapshot(ctx)
	if err != nil {
		logger.Error("stat fetch failed: %v", err)
		log.Fatalf("stat fetch failed: %v", err)
	}

	logger.Info("stat snapshot saved to %s", path)
	log.Printf("saved %s", path)
}
