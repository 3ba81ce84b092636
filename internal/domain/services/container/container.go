package container

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/internal/infrastructure/storage"
	"rttm-inventory-service/pkg/logger"
)

// ServiceContainer wires every service with its dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	media  *storage.MediaStorage

	// Base services
	jwtService   services.InterfaceJWTService
	authService  services.InterfaceAuthService
	redisService services.InterfaceRedisService

	// Asset hierarchy services
	buildingService    services.InterfaceBuildingService
	roomService        services.InterfaceRoomService
	responsibleService services.InterfaceResponsiblePersonService

	// Classification services
	categoryService   services.InterfaceCategoryService
	deviceTypeService services.InterfaceDeviceTypeService

	// Device lifecycle services
	deviceService   services.InterfaceDeviceService
	locationService services.InterfaceLocationService

	// Repair and maintenance services
	repairService     services.InterfaceRepairService
	serviceLogService services.InterfaceServiceLogService

	// Media and reporting services
	imageService  services.InterfaceImageService
	reportService services.InterfaceReportService
	fetchService  services.InterfaceFetchService

	mu sync.RWMutex
}

// NewServiceContainer creates and initializes the container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database handle is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		media:  storage.NewMediaStorage(cfg.MediaRoot, cfg.MediaURL),
	}
	container.initializeServices()
	return container
}

// initializeServices constructs every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService)

	c.redisService = services.NewRedisService(c.config)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.redisService.Ping(ctx); err != nil {
		logger.Warning("redis unreachable, response cache disabled: %v", err)
		c.redisService = nil
	}

	c.buildingService = services.NewBuildingService(c.db, c.config)
	c.roomService = services.NewRoomService(c.db, c.config)
	c.responsibleService = services.NewResponsiblePersonService(c.db, c.config)

	c.categoryService = services.NewCategoryService(c.db, c.config)
	c.deviceTypeService = services.NewDeviceTypeService(c.db, c.config)

	c.deviceService = services.NewDeviceService(c.db, c.config)
	c.locationService = services.NewLocationService(c.db, c.config)

	c.repairService = services.NewRepairService(c.db, c.config)
	c.serviceLogService = services.NewServiceLogService(c.db, c.config)

	c.imageService = services.NewImageService(c.db, c.config, c.media)
	c.reportService = services.NewReportService(c.db, c.config)
	c.fetchService = services.NewFetchService(c.config)
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "auth":
		return c.authService
	case "redis":
		return c.redisService
	case "building":
		return c.buildingService
	case "room":
		return c.roomService
	case "responsible":
		return c.responsibleService
	case "category":
		return c.categoryService
	case "deviceType":
		return c.deviceTypeService
	case "device":
		return c.deviceService
	case "location":
		return c.locationService
	case "repair":
		return c.repairService
	case "serviceLog":
		return c.serviceLogService
	case "image":
		return c.imageService
	case "report":
		return c.reportService
	case "fetch":
		return c.fetchService
	default:
		return nil
	}
}
