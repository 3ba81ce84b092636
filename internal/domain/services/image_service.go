package services

import (
	"context"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/internal/infrastructure/storage"
	"rttm-inventory-service/pkg/logger"
)

// InterfaceImageService defines image handling for buildings, rooms and
// devices. Each owner may have at most one image flagged as main; flagging a
// second one is a constraint violation, not a swap.
type InterfaceImageService interface {
	AddBuildingImage(ctx context.Context, buildingID uint, file *multipart.FileHeader, title string, isMain bool) (*models.BuildingImage, error)
	SetMainBuildingImage(ctx context.Context, buildingID, imageID uint) error
	DeleteBuildingImage(ctx context.Context, buildingID, imageID uint) error

	AddRoomImage(ctx context.Context, roomID uint, file *multipart.FileHeader, title string, isMain bool) (*models.RoomImage, error)
	SetMainRoomImage(ctx context.Context, roomID, imageID uint) error
	DeleteRoomImage(ctx context.Context, roomID, imageID uint) error

	AddDeviceImage(ctx context.Context, deviceID uint, file *multipart.FileHeader, title string, isMain bool) (*models.DeviceImage, error)
	SetMainDeviceImage(ctx context.Context, deviceID, imageID uint) error
	DeleteDeviceImage(ctx context.Context, deviceID, imageID uint) error
}

// ImageService stores image files through MediaStorage and keeps the image
// rows consistent with the one-main-per-owner rule
type ImageService struct {
	DB      *gorm.DB
	Config  *config.Config
	Storage *storage.MediaStorage
}

// NewImageService creates a new image service
func NewImageService(db *gorm.DB, cfg *config.Config, media *storage.MediaStorage) InterfaceImageService {
	return &ImageService{DB: db, Config: cfg, Storage: media}
}

// assertNoMain fails when the owner already has a main image other than
// excludeID. Called inside the caller's transaction so the check and the
// write are one unit; on engines with partial unique indexes the index backs
// this up.
func assertNoMain(tx *gorm.DB, model interface{}, ownerColumn string, ownerID, excludeID uint) error {
	var count int64
	q := tx.Model(model).Where(ownerColumn+" = ? AND is_main = ?", ownerID, true)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(code.ErrMainImageExists)
	}
	return nil
}

// --- Building images ---

// AddBuildingImage stores the file and creates the image row
func (s *ImageService) AddBuildingImage(ctx context.Context, buildingID uint, file *multipart.FileHeader, title string, isMain bool) (*models.BuildingImage, error) {
	var building models.Building
	if err := s.DB.WithContext(ctx).First(&building, buildingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrBuildingNotFound)
		}
		return nil, err
	}

	path, err := s.Storage.Save(storage.SubfolderBuilding, file)
	if err != nil {
		return nil, apperr.Wrap(code.ErrMediaStore, err)
	}

	img := models.BuildingImage{BuildingID: buildingID, Path: path, Title: title, IsMain: isMain}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isMain {
			if err := assertNoMain(tx, &models.BuildingImage{}, "building_id", buildingID, 0); err != nil {
				return err
			}
		}
		return tx.Create(&img).Error
	})
	if err != nil {
		// The DB row is the source of truth; drop the orphaned file
		if rmErr := s.Storage.Delete(path); rmErr != nil {
			logger.Warning("failed to remove orphaned media file %s: %v", path, rmErr)
		}
		return nil, err
	}
	return &img, nil
}

// SetMainBuildingImage flags an image as main; fails if another main exists
func (s *ImageService) SetMainBuildingImage(ctx context.Context, buildingID, imageID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var img models.BuildingImage
		if err := tx.Where("id = ? AND building_id = ?", imageID, buildingID).First(&img).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrImageNotFound)
			}
			return err
		}
		if err := assertNoMain(tx, &models.BuildingImage{}, "building_id", buildingID, imageID); err != nil {
			return err
		}
		return tx.Model(&img).Update("is_main", true).Error
	})
}

// DeleteBuildingImage removes the row and the stored file
func (s *ImageService) DeleteBuildingImage(ctx context.Context, buildingID, imageID uint) error {
	var img models.BuildingImage
	if err := s.DB.WithContext(ctx).Where("id = ? AND building_id = ?", imageID, buildingID).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(code.ErrImageNotFound)
		}
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&img).Error; err != nil {
		return err
	}
	if err := s.Storage.Delete(img.Path); err != nil {
		logger.Warning("failed to remove media file %s: %v", img.Path, err)
	}
	return nil
}

// --- Room images ---

// AddRoomImage stores the file and creates the image row
func (s *ImageService) AddRoomImage(ctx context.Context, roomID uint, file *multipart.FileHeader, title string, isMain bool) (*models.RoomImage, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrRoomNotFound)
		}
		return nil, err
	}

	path, err := s.Storage.Save(storage.SubfolderRoom, file)
	if err != nil {
		return nil, apperr.Wrap(code.ErrMediaStore, err)
	}

	img := models.RoomImage{RoomID: roomID, Path: path, Title: title, IsMain: isMain}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isMain {
			if err := assertNoMain(tx, &models.RoomImage{}, "room_id", roomID, 0); err != nil {
				return err
			}
		}
		return tx.Create(&img).Error
	})
	if err != nil {
		if rmErr := s.Storage.Delete(path); rmErr != nil {
			logger.Warning("failed to remove orphaned media file %s: %v", path, rmErr)
		}
		return nil, err
	}
	return &img, nil
}

// SetMainRoomImage flags an image as main; fails if another main exists
func (s *ImageService) SetMainRoomImage(ctx context.Context, roomID, imageID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var img models.RoomImage
		if err := tx.Where("id = ? AND room_id = ?", imageID, roomID).First(&img).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrImageNotFound)
			}
			return err
		}
		if err := assertNoMain(tx, &models.RoomImage{}, "room_id", roomID, imageID); err != nil {
			return err
		}
		return tx.Model(&img).Update("is_main", true).Error
	})
}

// DeleteRoomImage removes the row and the stored file
func (s *ImageService) DeleteRoomImage(ctx context.Context, roomID, imageID uint) error {
	var img models.RoomImage
	if err := s.DB.WithContext(ctx).Where("id = ? AND room_id = ?", imageID, roomID).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(code.ErrImageNotFound)
		}
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&img).Error; err != nil {
		return err
	}
	if err := s.Storage.Delete(img.Path); err != nil {
		logger.Warning("failed to remove media file %s: %v", img.Path, err)
	}
	return nil
}

// --- Device images ---

// AddDeviceImage stores the file and creates the image row
func (s *ImageService) AddDeviceImage(ctx context.Context, deviceID uint, file *multipart.FileHeader, title string, isMain bool) (*models.DeviceImage, error) {
	var device models.Device
	if err := s.DB.WithContext(ctx).First(&device, deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrDeviceNotFound)
		}
		return nil, err
	}

	path, err := s.Storage.Save(storage.SubfolderDevice, file)
	if err != nil {
		return nil, apperr.Wrap(code.ErrMediaStore, err)
	}

	img := models.DeviceImage{DeviceID: deviceID, Path: path, Title: title, IsMain: isMain}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isMain {
			if err := assertNoMain(tx, &models.DeviceImage{}, "device_id", deviceID, 0); err != nil {
				return err
			}
		}
		return tx.Create(&img).Error
	})
	if err != nil {
		if rmErr := s.Storage.Delete(path); rmErr != nil {
			logger.Warning("failed to remove orphaned media file %s: %v", path, rmErr)
		}
		return nil, err
	}
	return &img, nil
}

// SetMainDeviceImage flags an image as main; fails if another main exists
func (s *ImageService) SetMainDeviceImage(ctx context.Context, deviceID, imageID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var img models.DeviceImage
		if err := tx.Where("id = ? AND device_id = ?", imageID, deviceID).First(&img).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrImageNotFound)
			}
			return err
		}
		if err := assertNoMain(tx, &models.DeviceImage{}, "device_id", deviceID, imageID); err != nil {
			return err
		}
		return tx.Model(&img).Update("is_main", true).Error
	})
}

// DeleteDeviceImage removes the row and the stored file
func (s *ImageService) DeleteDeviceImage(ctx context.Context, deviceID, imageID uint) error {
	var img models.DeviceImage
	if err := s.DB.WithContext(ctx).Where("id = ? AND device_id = ?", imageID, deviceID).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(code.ErrImageNotFound)
		}
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&img).Error; err != nil {
		return err
	}
	if err := s.Storage.Delete(img.Path); err != nil {
		logger.Warning("failed to remove media file %s: %v", img.Path, err)
	}
	return nil
}
