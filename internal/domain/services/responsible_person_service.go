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

// InterfaceResponsiblePersonService defines the responsible person contract
type InterfaceResponsiblePersonService interface {
	GetAllResponsibles(ctx context.Context, page, pageSize int) ([]models.ResponsiblePerson, int64, error)
	GetResponsibleByID(ctx context.Context, id uint) (*models.ResponsiblePerson, error)
	CreateResponsible(ctx context.Context, rp *models.ResponsiblePerson) error
	UpdateResponsible(ctx context.Context, id uint, updates map[string]interface{}) (*models.ResponsiblePerson, error)
	DeleteResponsible(ctx context.Context, id uint) error
}

// ResponsiblePersonService manages who answers for a building or room
type ResponsiblePersonService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResponsiblePersonService creates a new responsible person service
func NewResponsiblePersonService(db *gorm.DB, cfg *config.Config) InterfaceResponsiblePersonService {
	return &ResponsiblePersonService{DB: db, Config: cfg}
}

// 1. GetAllResponsibles returns responsible persons, paginated
func (s *ResponsiblePersonService) GetAllResponsibles(ctx context.Context, page, pageSize int) ([]models.ResponsiblePerson, int64, error) {
	var responsibles []models.ResponsiblePerson
	var total int64

	db := s.DB.WithContext(ctx)
	if err := db.Model(&models.ResponsiblePerson{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("User").Preload("Building").Preload("Room").
		Limit(pageSize).Offset(offset).Find(&responsibles).Error; err != nil {
		return nil, 0, err
	}

	return responsibles, total, nil
}

// 2. GetResponsibleByID returns one responsible person
func (s *ResponsiblePersonService) GetResponsibleByID(ctx context.Context, id uint) (*models.ResponsiblePerson, error) {
	var rp models.ResponsiblePerson
	if err := s.DB.WithContext(ctx).Preload("User").Preload("Building").Preload("Room").
		First(&rp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrResponsibleNotFound)
		}
		return nil, err
	}
	return &rp, nil
}

// 3. CreateResponsible creates the assignment after checking the
// (user, building, room) triple
func (s *ResponsiblePersonService) CreateResponsible(ctx context.Context, rp *models.ResponsiblePerson) error {
	db := s.DB.WithContext(ctx)

	if rp.RoomID != nil {
		var room models.Room
		if err := db.First(&room, *rp.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrRoomNotFound)
			}
			return err
		}
		if room.BuildingID != rp.BuildingID {
			return apperr.NewMsg(code.ErrValidation, "room does not belong to the given building")
		}
	}

	q := db.Model(&models.ResponsiblePerson{}).
		Where("user_id = ? AND building_id = ?", rp.UserID, rp.BuildingID)
	if rp.RoomID != nil {
		q = q.Where("room_id = ?", *rp.RoomID)
	} else {
		q = q.Where("room_id IS NULL")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(code.ErrResponsibleAlreadyExist)
	}

	if rp.Status == "" {
		rp.Status = models.StatusActive
	}
	return db.Create(rp).Error
}

// 4. UpdateResponsible applies a partial update
func (s *ResponsiblePersonService) UpdateResponsible(ctx context.Context, id uint, updates map[string]interface{}) (*models.ResponsiblePerson, error) {
	rp, err := s.GetResponsibleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(rp).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetResponsibleByID(ctx, id)
}

// 5. DeleteResponsible removes the assignment; any device locations pointing
// at it fall back to "no responsible person"
func (s *ResponsiblePersonService) DeleteResponsible(ctx context.Context, id uint) error {
	rp, err := s.GetResponsibleByID(ctx, id)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DeviceLocation{}).
			Where("responsible_person_id = ?", id).
			Update("responsible_person_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(rp).Error
	})
}
