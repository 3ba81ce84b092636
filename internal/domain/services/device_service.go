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

// DeviceFilter narrows device listings
type DeviceFilter struct {
	DeviceTypeID uint
	CategoryID   uint
	Condition    string
	Status       string
	Search       string // matches inventory or serial number
}

// InterfaceDeviceService defines the device service contract
type InterfaceDeviceService interface {
	GetAllDevices(ctx context.Context, filter DeviceFilter, page, pageSize int) ([]models.Device, int64, error)
	GetDeviceByID(ctx context.Context, id uint) (*models.Device, error)
	GetDeviceByInventoryNumber(ctx context.Context, inventoryNumber string) (*models.Device, error)
	CreateDevice(ctx context.Context, device *models.Device) error
	UpdateDevice(ctx context.Context, id uint, updates map[string]interface{}) (*models.Device, error)
	DeleteDevice(ctx context.Context, id uint) error
	ChangeCondition(ctx context.Context, deviceID uint, newCondition, reason string) (*models.Device, error)
	GetConditionHistory(ctx context.Context, deviceID uint, page, pageSize int) ([]models.DeviceConditionHistory, int64, error)
}

// DeviceService provides device CRUD and the condition subsystem
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeviceService creates a new device service
func NewDeviceService(db *gorm.DB, cfg *config.Config) InterfaceDeviceService {
	return &DeviceService{DB: db, Config: cfg}
}

// 1. GetAllDevices returns devices newest first, filtered and paginated
func (s *DeviceService) GetAllDevices(ctx context.Context, filter DeviceFilter, page, pageSize int) ([]models.Device, int64, error) {
	var devices []models.Device
	var total int64

	db := s.DB.WithContext(ctx).Model(&models.Device{})
	if filter.DeviceTypeID != 0 {
		db = db.Where("device_type_id = ?", filter.DeviceTypeID)
	}
	if filter.CategoryID != 0 {
		db = db.Where("device_type_id IN (?)",
			s.DB.Model(&models.DeviceType{}).Select("id").Where("category_id = ?", filter.CategoryID))
	}
	if filter.Condition != "" {
		// condition is a reserved word on MySQL, keep it quoted
		db = db.Where("`condition` = ?", filter.Condition)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("inventory_number LIKE ? OR serial_number LIKE ?", like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("DeviceType").Preload("Location").Preload("Location.Room").
		Order("created_at DESC").Limit(pageSize).Offset(offset).
		Find(&devices).Error; err != nil {
		return nil, 0, err
	}

	return devices, total, nil
}

// 2. GetDeviceByID returns one device with its type, images and location
func (s *DeviceService) GetDeviceByID(ctx context.Context, id uint) (*models.Device, error) {
	var device models.Device
	if err := s.DB.WithContext(ctx).
		Preload("DeviceType").Preload("DeviceType.Category").
		Preload("Images").
		Preload("Location").Preload("Location.Room").Preload("Location.Room.Building").
		Preload("Location.ResponsiblePerson").Preload("Location.ResponsiblePerson.User").
		First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrDeviceNotFound)
		}
		return nil, err
	}
	return &device, nil
}

// 3. GetDeviceByInventoryNumber looks a device up by its business key
func (s *DeviceService) GetDeviceByInventoryNumber(ctx context.Context, inventoryNumber string) (*models.Device, error) {
	var device models.Device
	if err := s.DB.WithContext(ctx).Preload("DeviceType").
		Where("inventory_number = ?", inventoryNumber).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrDeviceNotFound)
		}
		return nil, err
	}
	return &device, nil
}

// validateDevice rejects malformed fields before anything is written
func validateDevice(device *models.Device) error {
	if !models.IsValidMACAddress(device.MACAddress) {
		return apperr.New(code.ErrInvalidMACAddress)
	}
	if !models.IsValidIPAddress(device.IPAddress) {
		return apperr.New(code.ErrInvalidIPAddress)
	}
	if device.Condition != "" && !models.IsValidCondition(device.Condition) {
		return apperr.New(code.ErrInvalidCondition)
	}
	return nil
}

// 4. CreateDevice creates a device after validation and uniqueness checks
func (s *DeviceService) CreateDevice(ctx context.Context, device *models.Device) error {
	if err := validateDevice(device); err != nil {
		return err
	}

	db := s.DB.WithContext(ctx)

	var typeCount int64
	if err := db.Model(&models.DeviceType{}).Where("id = ?", device.DeviceTypeID).Count(&typeCount).Error; err != nil {
		return err
	}
	if typeCount == 0 {
		return apperr.New(code.ErrDeviceTypeNotFound)
	}

	var count int64
	if err := db.Model(&models.Device{}).
		Where("inventory_number = ?", device.InventoryNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(code.ErrDeviceAlreadyExist)
	}

	if device.Condition == "" {
		device.Condition = models.ConditionWorking
	}
	if device.Status == "" {
		device.Status = models.StatusActive
	}
	return db.Create(device).Error
}

// 5. UpdateDevice applies a partial update. The condition field is owned by
// ChangeCondition and silently dropped here so the history ledger cannot be
// bypassed.
func (s *DeviceService) UpdateDevice(ctx context.Context, id uint, updates map[string]interface{}) (*models.Device, error) {
	device, err := s.GetDeviceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	delete(updates, "condition")

	if mac, ok := updates["mac_address"].(string); ok && !models.IsValidMACAddress(mac) {
		return nil, apperr.New(code.ErrInvalidMACAddress)
	}
	if ip, ok := updates["ip_address"].(string); ok && !models.IsValidIPAddress(ip) {
		return nil, apperr.New(code.ErrInvalidIPAddress)
	}

	if inv, ok := updates["inventory_number"].(string); ok && inv != device.InventoryNumber {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Device{}).
			Where("inventory_number = ? AND id != ?", inv, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.New(code.ErrDeviceAlreadyExist)
		}
	}

	if err := s.DB.WithContext(ctx).Model(device).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetDeviceByID(ctx, id)
}

// 6. DeleteDevice removes a device and everything it owns: images, current
// location, both history ledgers, repair requests and service logs. Service
// logs go before repair requests, they may reference one.
func (s *DeviceService) DeleteDevice(ctx context.Context, id uint) error {
	device, err := s.GetDeviceByID(ctx, id)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, owned := range []interface{}{
			&models.DeviceImage{},
			&models.DeviceLocation{},
			&models.DeviceLocationHistory{},
			&models.DeviceConditionHistory{},
			&models.ServiceLog{},
			&models.RepairRequest{},
		} {
			if err := tx.Where("device_id = ?", id).Delete(owned).Error; err != nil {
				return err
			}
		}
		return tx.Delete(device).Error
	})
}

// 7. ChangeCondition is the only sanctioned way to mutate a device's
// condition. The field update and the history append commit together or not
// at all, and the device row is locked so concurrent changes serialize.
func (s *DeviceService) ChangeCondition(ctx context.Context, deviceID uint, newCondition, reason string) (*models.Device, error) {
	if !models.IsValidCondition(newCondition) {
		return nil, apperr.New(code.ErrInvalidCondition)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var device models.Device
		if err := lockForUpdate(tx).First(&device, deviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrDeviceNotFound)
			}
			return err
		}

		var oldCondition *string
		if device.Condition != "" {
			old := device.Condition
			oldCondition = &old
		}

		if err := tx.Model(&device).Update("condition", newCondition).Error; err != nil {
			return err
		}

		entry := models.DeviceConditionHistory{
			DeviceID:     deviceID,
			OldCondition: oldCondition,
			NewCondition: newCondition,
			Reason:       reason,
		}
		if a, ok := actor.Current(ctx); ok {
			id := a.ID
			entry.ChangedByID = &id
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetDeviceByID(ctx, deviceID)
}

// 8. GetConditionHistory returns the condition ledger, newest first
func (s *DeviceService) GetConditionHistory(ctx context.Context, deviceID uint, page, pageSize int) ([]models.DeviceConditionHistory, int64, error) {
	if _, err := s.GetDeviceByID(ctx, deviceID); err != nil {
		return nil, 0, err
	}

	var history []models.DeviceConditionHistory
	var total int64

	db := s.DB.WithContext(ctx).Model(&models.DeviceConditionHistory{}).Where("device_id = ?", deviceID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("ChangedBy").
		Order("changed_at DESC, id DESC").Limit(pageSize).Offset(offset).
		Find(&history).Error; err != nil {
		return nil, 0, err
	}

	return history, total, nil
}
