package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/domain/services/container"
	"rttm-inventory-service/internal/error/response"
)

// HealthController reports service liveness and dependency health
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// HandleHealthFunc returns a gin handler for health checks
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &HealthController{Ctx: ctx, Container: container}

		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		}
	}
}

// Ping answers pong
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Health reports database and cache connectivity
// @Summary Dependency health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) Health() {
	result := gin.H{"status": "ok", "time": time.Now().UTC()}

	db := c.Container.GetService("db").(*gorm.DB)
	if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
		result["database"] = "down"
		result["status"] = "degraded"
	} else {
		result["database"] = "up"
		stats := sqlDB.Stats()
		result["db_open_connections"] = stats.OpenConnections
		result["db_in_use"] = stats.InUse
	}

	if redis, ok := c.Container.GetService("redis").(services.InterfaceRedisService); ok && redis != nil {
		if err := redis.Ping(c.Ctx.Request.Context()); err != nil {
			result["redis"] = "down"
		} else {
			result["redis"] = "up"
		}
	} else {
		result["redis"] = "disabled"
	}

	response.Success(c.Ctx, result)
}
