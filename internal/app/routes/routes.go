package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rttm-inventory-service/internal/app/controllers"
	"rttm-inventory-service/internal/app/middleware"
	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/domain/services/container"
	"rttm-inventory-service/internal/infrastructure/config"
)

// SetupRouter builds the gin engine with all middleware and routes wired
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// force UTF-8 on JSON responses
	r.Use(func(c *gin.Context) {
		c.Next()
		if c.Writer.Header().Get("Content-Type") == "application/json" {
			c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		}
	})

	svcContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg, db)

	var redisService services.InterfaceRedisService
	if rs, ok := svcContainer.GetService("redis").(services.InterfaceRedisService); ok {
		redisService = rs
	}
	listCache := middleware.Cache(redisService, middleware.DefaultCacheConfig)

	// uploaded files are served straight off disk
	r.Static(cfg.MediaURL, cfg.MediaRoot)

	api := r.Group("/api")
	api.Use(middleware.RateLimitByIP(50, 100))

	// public endpoints
	api.GET("/ping", controllers.HandleHealthFunc(svcContainer, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(svcContainer, "health"))
	api.POST("/auth/login", controllers.HandleAuthFunc(svcContainer, "login"))
	api.GET("/auth/callback/hemis", controllers.HandleAuthFunc(svcContainer, "hemisCallback"))

	auth := api.Group("")
	auth.Use(middleware.Authenticate())
	{
		auth.GET("/auth/me", controllers.HandleAuthFunc(svcContainer, "me"))

		buildings := auth.Group("/buildings")
		{
			buildings.GET("", listCache, controllers.HandleBuildingFunc(svcContainer, "getAllBuildings"))
			buildings.GET("/:id", controllers.HandleBuildingFunc(svcContainer, "getBuilding"))
			buildings.POST("", controllers.HandleBuildingFunc(svcContainer, "createBuilding"))
			buildings.PUT("/:id", controllers.HandleBuildingFunc(svcContainer, "updateBuilding"))
			buildings.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleBuildingFunc(svcContainer, "deleteBuilding"))
			buildings.GET("/:id/rooms", controllers.HandleBuildingFunc(svcContainer, "getBuildingRooms"))
			buildings.GET("/:id/responsibles", controllers.HandleBuildingFunc(svcContainer, "getBuildingResponsibles"))

			buildings.POST("/:id/images", controllers.HandleImageFunc(svcContainer, "addBuildingImage"))
			buildings.POST("/:id/images/:imageId/main", controllers.HandleImageFunc(svcContainer, "setMainBuildingImage"))
			buildings.DELETE("/:id/images/:imageId", controllers.HandleImageFunc(svcContainer, "deleteBuildingImage"))
		}

		rooms := auth.Group("/rooms")
		{
			rooms.GET("", listCache, controllers.HandleRoomFunc(svcContainer, "getAllRooms"))
			rooms.GET("/:id", controllers.HandleRoomFunc(svcContainer, "getRoom"))
			rooms.POST("", controllers.HandleRoomFunc(svcContainer, "createRoom"))
			rooms.PUT("/:id", controllers.HandleRoomFunc(svcContainer, "updateRoom"))
			rooms.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleRoomFunc(svcContainer, "deleteRoom"))
			rooms.GET("/:id/devices", controllers.HandleRoomFunc(svcContainer, "getRoomDevices"))

			rooms.POST("/:id/images", controllers.HandleImageFunc(svcContainer, "addRoomImage"))
			rooms.POST("/:id/images/:imageId/main", controllers.HandleImageFunc(svcContainer, "setMainRoomImage"))
			rooms.DELETE("/:id/images/:imageId", controllers.HandleImageFunc(svcContainer, "deleteRoomImage"))
		}

		responsibles := auth.Group("/responsibles")
		{
			responsibles.GET("", controllers.HandleResponsibleFunc(svcContainer, "getAllResponsibles"))
			responsibles.GET("/:id", controllers.HandleResponsibleFunc(svcContainer, "getResponsible"))
			responsibles.POST("", controllers.HandleResponsibleFunc(svcContainer, "createResponsible"))
			responsibles.PUT("/:id", controllers.HandleResponsibleFunc(svcContainer, "updateResponsible"))
			responsibles.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleResponsibleFunc(svcContainer, "deleteResponsible"))
		}

		categories := auth.Group("/categories")
		{
			categories.GET("", listCache, controllers.HandleCategoryFunc(svcContainer, "getAllCategories"))
			categories.GET("/:id", controllers.HandleCategoryFunc(svcContainer, "getCategory"))
			categories.POST("", controllers.HandleCategoryFunc(svcContainer, "createCategory"))
			categories.PUT("/:id", controllers.HandleCategoryFunc(svcContainer, "updateCategory"))
			categories.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleCategoryFunc(svcContainer, "deleteCategory"))
		}

		deviceTypes := auth.Group("/device-types")
		{
			deviceTypes.GET("", listCache, controllers.HandleDeviceTypeFunc(svcContainer, "getAllDeviceTypes"))
			deviceTypes.GET("/:id", controllers.HandleDeviceTypeFunc(svcContainer, "getDeviceType"))
			deviceTypes.POST("", controllers.HandleDeviceTypeFunc(svcContainer, "createDeviceType"))
			deviceTypes.PUT("/:id", controllers.HandleDeviceTypeFunc(svcContainer, "updateDeviceType"))
			deviceTypes.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleDeviceTypeFunc(svcContainer, "deleteDeviceType"))
		}

		devices := auth.Group("/devices")
		{
			devices.GET("", controllers.HandleDeviceFunc(svcContainer, "getAllDevices"))
			devices.GET("/export", controllers.HandleDeviceFunc(svcContainer, "exportDevices"))
			devices.GET("/by-inventory/:number", controllers.HandleDeviceFunc(svcContainer, "getDeviceByInventoryNumber"))
			devices.GET("/:id", controllers.HandleDeviceFunc(svcContainer, "getDevice"))
			devices.POST("", controllers.HandleDeviceFunc(svcContainer, "createDevice"))
			devices.PUT("/:id", controllers.HandleDeviceFunc(svcContainer, "updateDevice"))
			devices.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleDeviceFunc(svcContainer, "deleteDevice"))

			devices.POST("/:id/move", controllers.HandleDeviceFunc(svcContainer, "moveDevice"))
			devices.GET("/:id/location", controllers.HandleDeviceFunc(svcContainer, "getLocation"))
			devices.GET("/:id/location/history", controllers.HandleDeviceFunc(svcContainer, "getLocationHistory"))
			devices.POST("/:id/condition", controllers.HandleDeviceFunc(svcContainer, "changeCondition"))
			devices.GET("/:id/condition/history", controllers.HandleDeviceFunc(svcContainer, "getConditionHistory"))

			devices.POST("/:id/images", controllers.HandleImageFunc(svcContainer, "addDeviceImage"))
			devices.POST("/:id/images/:imageId/main", controllers.HandleImageFunc(svcContainer, "setMainDeviceImage"))
			devices.DELETE("/:id/images/:imageId", controllers.HandleImageFunc(svcContainer, "deleteDeviceImage"))
		}

		repairs := auth.Group("/repairs")
		{
			repairs.GET("", controllers.HandleRepairFunc(svcContainer, "getAllRepairRequests"))
			repairs.GET("/:id", controllers.HandleRepairFunc(svcContainer, "getRepairRequest"))
			repairs.POST("", controllers.HandleRepairFunc(svcContainer, "createRepairRequest"))
			repairs.POST("/:id/assign", controllers.HandleRepairFunc(svcContainer, "assignRepairRequest"))
			repairs.POST("/:id/start", controllers.HandleRepairFunc(svcContainer, "startRepairRequest"))
			repairs.POST("/:id/complete", controllers.HandleRepairFunc(svcContainer, "completeRepairRequest"))
			repairs.POST("/:id/cancel", controllers.HandleRepairFunc(svcContainer, "cancelRepairRequest"))
		}

		serviceLogs := auth.Group("/service-logs")
		{
			serviceLogs.GET("", controllers.HandleServiceLogFunc(svcContainer, "getAllServiceLogs"))
			serviceLogs.GET("/:id", controllers.HandleServiceLogFunc(svcContainer, "getServiceLog"))
			serviceLogs.POST("", controllers.HandleServiceLogFunc(svcContainer, "createServiceLog"))
			serviceLogs.PUT("/:id", controllers.HandleServiceLogFunc(svcContainer, "updateServiceLog"))
			serviceLogs.DELETE("/:id", middleware.RequireAdmin(), controllers.HandleServiceLogFunc(svcContainer, "deleteServiceLog"))
		}
	}

	return r
}
