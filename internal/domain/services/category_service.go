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

// InterfaceCategoryService defines the category service contract
type InterfaceCategoryService interface {
	GetAllCategories(ctx context.Context, page, pageSize int) ([]models.Category, int64, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id uint, updates map[string]interface{}) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// CategoryService manages the classification tree
type CategoryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) InterfaceCategoryService {
	return &CategoryService{DB: db, Config: cfg}
}

// 1. GetAllCategories returns categories ordered by name, with children
func (s *CategoryService) GetAllCategories(ctx context.Context, page, pageSize int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	db := s.DB.WithContext(ctx)
	if err := db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("Children").Order("name").Limit(pageSize).Offset(offset).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// 2. GetCategoryByID returns one category with parent and children
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.WithContext(ctx).Preload("Parent").Preload("Children").
		First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrCategoryNotFound)
		}
		return nil, err
	}
	return &category, nil
}

// 3. CreateCategory creates a category after checking name/code uniqueness
func (s *CategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	db := s.DB.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(code.ErrCategoryAlreadyExist)
	}

	if category.Code != nil {
		if err := db.Model(&models.Category{}).Where("code = ?", *category.Code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.New(code.ErrCategoryAlreadyExist)
		}
	}

	if category.ParentID != nil {
		if _, err := s.GetCategoryByID(ctx, *category.ParentID); err != nil {
			return err
		}
	}

	if category.Status == "" {
		category.Status = models.StatusActive
	}
	return db.Create(category).Error
}

// 4. UpdateCategory applies a partial update, re-checking uniqueness
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, updates map[string]interface{}) (*models.Category, error) {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != category.Name {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Category{}).
			Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.New(code.ErrCategoryAlreadyExist)
		}
	}

	// A category cannot become its own parent
	if parentID, ok := updates["parent_id"].(float64); ok && uint(parentID) == id {
		return nil, apperr.NewMsg(code.ErrValidation, "category cannot be its own parent")
	}

	if err := s.DB.WithContext(ctx).Model(category).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetCategoryByID(ctx, id)
}

// 5. DeleteCategory is protective: refused while device types or child
// categories still reference it
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}

	db := s.DB.WithContext(ctx)

	var typeCount int64
	if err := db.Model(&models.DeviceType{}).Where("category_id = ?", id).Count(&typeCount).Error; err != nil {
		return err
	}
	if typeCount > 0 {
		return apperr.New(code.ErrCategoryInUse)
	}

	var childCount int64
	if err := db.Model(&models.Category{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		return err
	}
	if childCount > 0 {
		return apperr.New(code.ErrCategoryInUse)
	}

	return db.Delete(category).Error
}
