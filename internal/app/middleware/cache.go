package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"rttm-inventory-service/internal/domain/services"
)

// cacheEntry is one cached response body
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// memoryCache is the fallback store used when redis is unavailable
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var memCache = &memoryCache{items: make(map[string]cacheEntry)}

// CacheConfig configures the response cache
type CacheConfig struct {
	Expiration time.Duration
	KeyFunc    func(*gin.Context) string
}

// DefaultCacheConfig caches GET responses for five minutes
var DefaultCacheConfig = CacheConfig{
	Expiration: 5 * time.Minute,
	KeyFunc:    defaultKeyFunc,
}

// defaultKeyFunc builds a stable key from path and sorted query params
func defaultKeyFunc(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	sum := md5.Sum([]byte(path + "?" + queryString))
	return "respcache:" + hex.EncodeToString(sum[:])
}

// cachedWriter captures the response body while passing it through
type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

// Cache serves repeated GET requests from redis (or process memory when
// redis is down). Only successful JSON responses are stored.
func Cache(redisService services.InterfaceRedisService, cfg CacheConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = defaultKeyFunc
	}
	if cfg.Expiration == 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)

		if redisService != nil {
			if cached, ok := redisService.Get(c.Request.Context(), key); ok {
				c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
				c.Abort()
				return
			}
		} else {
			memCache.RLock()
			entry, ok := memCache.items[key]
			memCache.RUnlock()
			if ok && time.Now().Before(entry.Expiration) {
				c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
				c.Abort()
				return
			}
		}

		writer := &cachedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}

		body := writer.body.Bytes()
		if redisService != nil {
			_ = redisService.Set(c.Request.Context(), key, string(body), cfg.Expiration)
		} else {
			memCache.Lock()
			memCache.items[key] = cacheEntry{
				Content:    append([]byte(nil), body...),
				Expiration: time.Now().Add(cfg.Expiration),
			}
			memCache.Unlock()
		}
	}
}
