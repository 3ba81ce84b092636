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

// InterfaceRoomService defines the room service contract
type InterfaceRoomService interface {
	GetAllRooms(ctx context.Context, buildingID uint, page, pageSize int) ([]models.Room, int64, error)
	GetRoomByID(ctx context.Context, id uint) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) error
	UpdateRoom(ctx context.Context, id uint, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
	GetRoomDevices(ctx context.Context, roomID uint) ([]models.DeviceLocation, error)
}

// RoomService provides room related operations
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService creates a new room service
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{DB: db, Config: cfg}
}

// 1. GetAllRooms returns rooms, optionally filtered by building
func (s *RoomService) GetAllRooms(ctx context.Context, buildingID uint, page, pageSize int) ([]models.Room, int64, error) {
	var rooms []models.Room
	var total int64

	db := s.DB.WithContext(ctx).Model(&models.Room{})
	if buildingID != 0 {
		db = db.Where("building_id = ?", buildingID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("Building").Order("name").Limit(pageSize).Offset(offset).Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// 2. GetRoomByID returns one room with its building and images
func (s *RoomService) GetRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("Building").Preload("Images").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrRoomNotFound)
		}
		return nil, err
	}
	return &room, nil
}

// 3. CreateRoom creates a room after checking the (building, name) pair
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	db := s.DB.WithContext(ctx)

	var buildingCount int64
	if err := db.Model(&models.Building{}).Where("id = ?", room.BuildingID).Count(&buildingCount).Error; err != nil {
		return err
	}
	if buildingCount == 0 {
		return apperr.New(code.ErrBuildingNotFound)
	}

	var count int64
	if err := db.Model(&models.Room{}).
		Where("building_id = ? AND name = ?", room.BuildingID, room.Name).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(code.ErrRoomAlreadyExist)
	}

	if room.Status == "" {
		room.Status = models.StatusActive
	}
	return db.Create(room).Error
}

// 4. UpdateRoom applies a partial update, re-checking name uniqueness
func (s *RoomService) UpdateRoom(ctx context.Context, id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != room.Name {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Room{}).
			Where("building_id = ? AND name = ? AND id != ?", room.BuildingID, name, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.New(code.ErrRoomAlreadyExist)
		}
	}

	if err := s.DB.WithContext(ctx).Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetRoomByID(ctx, id)
}

// 5. DeleteRoom deletes a room and its images, and detaches responsible
// person assignments narrowed to it, widening them back to the whole
// building. Refused while any device is located here.
func (s *RoomService) DeleteRoom(ctx context.Context, id uint) error {
	room, err := s.GetRoomByID(ctx, id)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var occupied int64
		if err := tx.Model(&models.DeviceLocation{}).Where("room_id = ?", id).Count(&occupied).Error; err != nil {
			return err
		}
		if occupied > 0 {
			return apperr.New(code.ErrRoomInUse)
		}

		if err := tx.Model(&models.ResponsiblePerson{}).
			Where("room_id = ?", id).Update("room_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(room).Error
	})
}

// 6. GetRoomDevices returns the current device locations in a room
func (s *RoomService) GetRoomDevices(ctx context.Context, roomID uint) ([]models.DeviceLocation, error) {
	if _, err := s.GetRoomByID(ctx, roomID); err != nil {
		return nil, err
	}

	var locations []models.DeviceLocation
	if err := s.DB.WithContext(ctx).
		Where("room_id = ?", roomID).
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
