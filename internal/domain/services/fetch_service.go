package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"

	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/pkg/logger"
)

// InterfaceFetchService defines the external stat fetch job
type InterfaceFetchService interface {
	FetchStatSnapshot(ctx context.Context) (string, error)
}

// FetchService pulls the public employee stat feed and keeps a timestamped
// JSON snapshot under logs/. Run daily via cron through cmd/fetchapi.
type FetchService struct {
	Config *config.Config
	client *resty.Client
}

// NewFetchService creates a new fetch service
func NewFetchService(cfg *config.Config) InterfaceFetchService {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "rttm-inventory-service fetch job").
		SetHeader("Content-Type", "application/json")
	return &FetchService{Config: cfg, client: client}
}

// FetchStatSnapshot fetches the feed and writes the snapshot file, returning
// its path
func (s *FetchService) FetchStatSnapshot(ctx context.Context) (string, error) {
	logger.Info("stat fetch started: %s", s.Config.StatAPIURL)

	resp, err := s.client.R().SetContext(ctx).Get(s.Config.StatAPIURL)
	if err != nil {
		logger.Error("stat fetch request failed: %v", err)
		return "", err
	}
	if resp.IsError() {
		logger.Error("stat API returned status %d: %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("stat API returned status %d", resp.StatusCode())
	}

	var data interface{}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		logger.Error("stat API response is not valid JSON: %v", err)
		return "", err
	}

	switch v := data.(type) {
	case []interface{}:
		logger.Info("fetched %d stat entries (%d bytes)", len(v), len(resp.Body()))
	case map[string]interface{}:
		logger.Info("fetched stat object with %d keys (%d bytes)", len(v), len(resp.Body()))
	}

	path, err := s.saveSnapshot(resp.Body())
	if err != nil {
		logger.Error("failed to save stat snapshot: %v", err)
		return "", err
	}

	logger.Info("stat snapshot saved: %s", path)
	return path, nil
}

// saveSnapshot writes the raw JSON body to a timestamped file under logs/
func (s *FetchService) saveSnapshot(body []byte) (string, error) {
	dir := "logs"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("api_data_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", err
	}
	return path, nil
}
