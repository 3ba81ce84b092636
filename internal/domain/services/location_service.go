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

// MoveDeviceInput carries the parameters of one move
type MoveDeviceInput struct {
	RoomID              uint
	ResponsiblePersonID *uint
	PositionDescription string
	Reason              string
}

// InterfaceLocationService defines the location subsystem contract
type InterfaceLocationService interface {
	MoveDevice(ctx context.Context, deviceID uint, input MoveDeviceInput) (*models.DeviceLocation, error)
	GetLocation(ctx context.Context, deviceID uint) (*models.DeviceLocation, error)
	GetLocationHistory(ctx context.Context, deviceID uint, page, pageSize int) ([]models.DeviceLocationHistory, int64, error)
}

// LocationService maintains the single current-location row per device and
// the append-only move ledger behind it
type LocationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLocationService creates a new location service
func NewLocationService(db *gorm.DB, cfg *config.Config) InterfaceLocationService {
	return &LocationService{DB: db, Config: cfg}
}

// 1. MoveDevice places a device in a room. The current-location upsert and
// the history append commit together or not at all; without that an
// interrupted move would leave the ledger disagreeing with "now". The device
// row is locked for the duration so two concurrent moves cannot both read
// the same old room. Moving a device to the room it already occupies still
// appends a ledger row.
func (s *LocationService) MoveDevice(ctx context.Context, deviceID uint, input MoveDeviceInput) (*models.DeviceLocation, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var device models.Device
		if err := lockForUpdate(tx).First(&device, deviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrDeviceNotFound)
			}
			return err
		}

		var newRoom models.Room
		if err := tx.First(&newRoom, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrRoomNotFound)
			}
			return err
		}

		if input.ResponsiblePersonID != nil {
			var rpCount int64
			if err := tx.Model(&models.ResponsiblePerson{}).
				Where("id = ?", *input.ResponsiblePersonID).Count(&rpCount).Error; err != nil {
				return err
			}
			if rpCount == 0 {
				return apperr.New(code.ErrResponsibleNotFound)
			}
		}

		// Capture the old place before touching anything. The building is
		// derived from the room's parent.
		var oldRoomID, oldBuildingID *uint
		var current models.DeviceLocation
		err := tx.Where("device_id = ?", deviceID).First(&current).Error
		switch {
		case err == nil:
			var oldRoom models.Room
			if err := tx.First(&oldRoom, current.RoomID).Error; err != nil {
				return err
			}
			rid, bid := oldRoom.ID, oldRoom.BuildingID
			oldRoomID, oldBuildingID = &rid, &bid

			if err := tx.Model(&current).Updates(map[string]interface{}{
				"room_id":               input.RoomID,
				"responsible_person_id": input.ResponsiblePersonID,
				"position_description":  input.PositionDescription,
			}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First placement: no old room, null columns in the ledger row
			current = models.DeviceLocation{
				DeviceID:            deviceID,
				RoomID:              input.RoomID,
				ResponsiblePersonID: input.ResponsiblePersonID,
				PositionDescription: input.PositionDescription,
			}
			if err := tx.Create(&current).Error; err != nil {
				return err
			}
		default:
			return err
		}

		entry := models.DeviceLocationHistory{
			DeviceID:      deviceID,
			OldBuildingID: oldBuildingID,
			OldRoomID:     oldRoomID,
			NewBuildingID: newRoom.BuildingID,
			NewRoomID:     newRoom.ID,
			Reason:        input.Reason,
		}
		if a, ok := actor.Current(ctx); ok {
			id := a.ID
			entry.MovedByID = &id
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetLocation(ctx, deviceID)
}

// 2. GetLocation returns the device's current location
func (s *LocationService) GetLocation(ctx context.Context, deviceID uint) (*models.DeviceLocation, error) {
	var location models.DeviceLocation
	if err := s.DB.WithContext(ctx).
		Preload("Room").Preload("Room.Building").
		Preload("ResponsiblePerson").Preload("ResponsiblePerson.User").
		Where("device_id = ?", deviceID).First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrLocationNotFound)
		}
		return nil, err
	}
	return &location, nil
}

// 3. GetLocationHistory returns the move ledger, newest first
func (s *LocationService) GetLocationHistory(ctx context.Context, deviceID uint, page, pageSize int) ([]models.DeviceLocationHistory, int64, error) {
	var device models.Device
	if err := s.DB.WithContext(ctx).First(&device, deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperr.New(code.ErrDeviceNotFound)
		}
		return nil, 0, err
	}

	var history []models.DeviceLocationHistory
	var total int64

	db := s.DB.WithContext(ctx).Model(&models.DeviceLocationHistory{}).Where("device_id = ?", deviceID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("OldBuilding").Preload("OldRoom").
		Preload("NewBuilding").Preload("NewRoom").Preload("MovedBy").
		Order("moved_at DESC, id DESC").Limit(pageSize).Offset(offset).
		Find(&history).Error; err != nil {
		return nil, 0, err
	}

	return history, total, nil
}
