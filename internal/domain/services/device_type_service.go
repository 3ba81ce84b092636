package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/infrastructure/config"
)

// InterfaceDeviceTypeService defines the device type service contract
type InterfaceDeviceTypeService interface {
	GetAllDeviceTypes(ctx context.Context, categoryID uint, page, pageSize int) ([]models.DeviceType, int64, error)
	GetDeviceTypeByID(ctx context.Context, id uint) (*models.DeviceType, error)
	CreateDeviceType(ctx context.Context, dt *models.DeviceType) error
	UpdateDeviceType(ctx context.Context, id uint, updates map[string]interface{}) (*models.DeviceType, error)
	DeleteDeviceType(ctx context.Context, id uint) error
}

// DeviceTypeService manages device types within the category tree
type DeviceTypeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeviceTypeService creates a new device type service
func NewDeviceTypeService(db *gorm.DB, cfg *config.Config) InterfaceDeviceTypeService {
	return &DeviceTypeService{DB: db, Config: cfg}
}

// 1. GetAllDeviceTypes returns device types, optionally filtered by category
func (s *DeviceTypeService) GetAllDeviceTypes(ctx context.Context, categoryID uint, page, pageSize int) ([]models.DeviceType, int64, error) {
	var deviceTypes []models.DeviceType
	var total int64

	db := s.DB.WithContext(ctx).Model(&models.DeviceType{})
	if categoryID != 0 {
		db = db.Where("category_id = ?", categoryID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("Category").Order("name").Limit(pageSize).Offset(offset).
		Find(&deviceTypes).Error; err != nil {
		return nil, 0, err
	}

	return deviceTypes, total, nil
}

// 2. GetDeviceTypeByID returns one device type with its category
func (s *DeviceTypeService) GetDeviceTypeByID(ctx context.Context, id uint) (*models.DeviceType, error) {
	var dt models.DeviceType
	if err := s.DB.WithContext(ctx).Preload("Category").First(&dt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrDeviceTypeNotFound)
		}
		return nil, err
	}
	return &dt, nil
}

// 3. CreateDeviceType creates a device type after checking the
// (category, name, model) triple
func (s *DeviceTypeService) CreateDeviceType(ctx context.Context, dt *models.DeviceType) error {
	db := s.DB.WithContext(ctx)

	var categoryCount int64
	if err := db.Model(&models.Category{}).Where("id = ?", dt.CategoryID).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		return apperr.New(code.ErrCategoryNotFound)
	}

	var count int64
	if err := db.Model(&models.DeviceType{}).
		Where("category_id = ? AND name = ? AND model = ?", dt.CategoryID, dt.Name, dt.Model).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(code.ErrDeviceTypeAlreadyExist)
	}

	if dt.Status == "" {
		dt.Status = models.StatusActive
	}
	return db.Create(dt).Error
}

// 4. UpdateDeviceType applies a partial update
func (s *DeviceTypeService) UpdateDeviceType(ctx context.Context, id uint, updates map[string]interface{}) (*models.DeviceType, error) {
	dt, err := s.GetDeviceTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(dt).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetDeviceTypeByID(ctx, id)
}

// 5. DeleteDeviceType is protective: refused while devices still reference it
func (s *DeviceTypeService) DeleteDeviceType(ctx context.Context, id uint) error {
	dt, err := s.GetDeviceTypeByID(ctx, id)
	if err != nil {
		return err
	}

	var deviceCount int64
	if err := s.DB.WithContext(ctx).Model(&models.Device{}).
		Where("device_type_id = ?", id).Count(&deviceCount).Error; err != nil {
		return err
	}
	if deviceCount > 0 {
		return apperr.New(code.ErrDeviceTypeInUse)
	}

	return s.DB.WithContext(ctx).Delete(dt).Error
}
