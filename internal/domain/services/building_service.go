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

// InterfaceBuildingService defines the building service contract
type InterfaceBuildingService interface {
	GetAllBuildings(ctx context.Context, page, pageSize int) ([]models.Building, int64, error)
	GetBuildingByID(ctx context.Context, id uint) (*models.Building, error)
	CreateBuilding(ctx context.Context, building *models.Building) error
	UpdateBuilding(ctx context.Context, id uint, updates map[string]interface{}) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id uint) error
	GetBuildingRooms(ctx context.Context, buildingID uint) ([]models.Room, error)
	GetBuildingResponsibles(ctx context.Context, buildingID uint) ([]models.ResponsiblePerson, error)
}

// BuildingService provides building related operations
type BuildingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBuildingService creates a new building service
func NewBuildingService(db *gorm.DB, cfg *config.Config) InterfaceBuildingService {
	return &BuildingService{DB: db, Config: cfg}
}

// 1. GetAllBuildings returns buildings ordered by name, paginated
func (s *BuildingService) GetAllBuildings(ctx context.Context, page, pageSize int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	db := s.DB.WithContext(ctx)
	if err := db.Model(&models.Building{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("name").Limit(pageSize).Offset(offset).Find(&buildings).Error; err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}

// 2. GetBuildingByID returns one building with its images
func (s *BuildingService) GetBuildingByID(ctx context.Context, id uint) (*models.Building, error) {
	var building models.Building
	if err := s.DB.WithContext(ctx).Preload("Images").First(&building, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrBuildingNotFound)
		}
		return nil, err
	}
	return &building, nil
}

// 3. CreateBuilding creates a new building
func (s *BuildingService) CreateBuilding(ctx context.Context, building *models.Building) error {
	if building.Status == "" {
		building.Status = models.StatusActive
	}
	return s.DB.WithContext(ctx).Create(building).Error
}

// 4. UpdateBuilding applies a partial update
func (s *BuildingService) UpdateBuilding(ctx context.Context, id uint, updates map[string]interface{}) (*models.Building, error) {
	building, err := s.GetBuildingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(building).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBuildingByID(ctx, id)
}

// 5. DeleteBuilding deletes a building together with its rooms, images and
// responsible person assignments. Refused while any device is still located
// in one of its rooms.
func (s *BuildingService) DeleteBuilding(ctx context.Context, id uint) error {
	building, err := s.GetBuildingByID(ctx, id)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var occupied int64
		if err := tx.Model(&models.DeviceLocation{}).
			Joins("JOIN rooms ON rooms.id = device_locations.room_id").
			Where("rooms.building_id = ?", id).
			Count(&occupied).Error; err != nil {
			return err
		}
		if occupied > 0 {
			return apperr.New(code.ErrRoomInUse)
		}

		if err := tx.Where("room_id IN (?)",
			tx.Model(&models.Room{}).Select("id").Where("building_id = ?", id),
		).Delete(&models.RoomImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("building_id = ?", id).Delete(&models.ResponsiblePerson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("building_id = ?", id).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		if err := tx.Where("building_id = ?", id).Delete(&models.BuildingImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(building).Error
	})
}

// 6. GetBuildingRooms returns the rooms of a building
func (s *BuildingService) GetBuildingRooms(ctx context.Context, buildingID uint) ([]models.Room, error) {
	if _, err := s.GetBuildingByID(ctx, buildingID); err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Where("building_id = ?", buildingID).Order("name").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// 7. GetBuildingResponsibles returns the responsible persons of a building
func (s *BuildingService) GetBuildingResponsibles(ctx context.Context, buildingID uint) ([]models.ResponsiblePerson, error) {
	if _, err := s.GetBuildingByID(ctx, buildingID); err != nil {
		return nil, err
	}

	var responsibles []models.ResponsiblePerson
	if err := s.DB.WithContext(ctx).Preload("User").Preload("Room").
		Where("building_id = ?", buildingID).Find(&responsibles).Error; err != nil {
		return nil, err
	}
	return responsibles, nil
}
