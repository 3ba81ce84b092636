package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/actor"
	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/infrastructure/config"
)

// InterfaceServiceLogService defines the maintenance record contract
type InterfaceServiceLogService interface {
	GetAllServiceLogs(ctx context.Context, deviceID uint, page, pageSize int) ([]models.ServiceLog, int64, error)
	GetServiceLogByID(ctx context.Context, id uint) (*models.ServiceLog, error)
	CreateServiceLog(ctx context.Context, log *models.ServiceLog) error
	UpdateServiceLog(ctx context.Context, id uint, updates map[string]interface{}) (*models.ServiceLog, error)
	DeleteServiceLog(ctx context.Context, id uint) error
}

// ServiceLogService manages maintenance records
type ServiceLogService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewServiceLogService creates a new service log service
func NewServiceLogService(db *gorm.DB, cfg *config.Config) InterfaceServiceLogService {
	return &ServiceLogService{DB: db, Config: cfg}
}

// 1. GetAllServiceLogs returns maintenance records newest first, optionally
// for one device
func (s *ServiceLogService) GetAllServiceLogs(ctx context.Context, deviceID uint, page, pageSize int) ([]models.ServiceLog, int64, error) {
	var logs []models.ServiceLog
	var total int64

	db := s.DB.WithContext(ctx).Model(&models.ServiceLog{})
	if deviceID != 0 {
		db = db.Where("device_id = ?", deviceID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("Device").Preload("PerformedBy").Preload("RepairRequest").
		Order("service_date DESC").Limit(pageSize).Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// 2. GetServiceLogByID returns one maintenance record
func (s *ServiceLogService) GetServiceLogByID(ctx context.Context, id uint) (*models.ServiceLog, error) {
	var log models.ServiceLog
	if err := s.DB.WithContext(ctx).
		Preload("Device").Preload("PerformedBy").Preload("RepairRequest").
		First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrServiceLogNotFound)
		}
		return nil, err
	}
	return &log, nil
}

// 3. CreateServiceLog records maintenance work. The performer defaults to
// the current actor; a repair request link is optional.
func (s *ServiceLogService) CreateServiceLog(ctx context.Context, log *models.ServiceLog) error {
	if !models.IsValidServiceType(log.ServiceType) {
		return apperr.New(code.ErrInvalidServiceType)
	}
	if log.Description == "" {
		return apperr.NewMsg(code.ErrValidation, "description is required")
	}

	db := s.DB.WithContext(ctx)

	var deviceCount int64
	if err := db.Model(&models.Device{}).Where("id = ?", log.DeviceID).Count(&deviceCount).Error; err != nil {
		return err
	}
	if deviceCount == 0 {
		return apperr.New(code.ErrDeviceNotFound)
	}

	if log.RepairRequestID != nil {
		var reqCount int64
		if err := db.Model(&models.RepairRequest{}).Where("id = ?", *log.RepairRequestID).Count(&reqCount).Error; err != nil {
			return err
		}
		if reqCount == 0 {
			return apperr.New(code.ErrRepairNotFound)
		}
	}

	if log.PerformedByID == nil {
		if a, ok := actor.Current(ctx); ok {
			id := a.ID
			log.PerformedByID = &id
		}
	}
	if log.Status == "" {
		log.Status = models.StatusActive
	}
	return db.Create(log).Error
}

// 4. UpdateServiceLog applies a partial update
func (s *ServiceLogService) UpdateServiceLog(ctx context.Context, id uint, updates map[string]interface{}) (*models.ServiceLog, error) {
	log, err := s.GetServiceLogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if serviceType, ok := updates["service_type"].(string); ok && !models.IsValidServiceType(serviceType) {
		return nil, apperr.New(code.ErrInvalidServiceType)
	}

	if err := s.DB.WithContext(ctx).Model(log).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetServiceLogByID(ctx, id)
}

// 5. DeleteServiceLog removes a maintenance record
func (s *ServiceLogService) DeleteServiceLog(ctx context.Context, id uint) error {
	log, err := s.GetServiceLogByID(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(log).Error
}
