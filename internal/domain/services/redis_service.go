package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"rttm-inventory-service/internal/infrastructure/config"
)

// InterfaceRedisService wraps the redis operations the service uses
type InterfaceRedisService interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// RedisService backs the response cache middleware. All operations degrade
// gracefully when redis is unreachable.
type RedisService struct {
	Client *redis.Client
}

// NewRedisService creates a new redis service from config
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	return &RedisService{Client: client}
}

// Get reads one key, returning false on miss or error
func (s *RedisService) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores one key with a TTL
func (s *RedisService) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return s.Client.Set(ctx, key, value, expiration).Err()
}

// Delete removes one key
func (s *RedisService) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

// Ping checks connectivity
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
