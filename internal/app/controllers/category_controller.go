package controllers

import (
	"github.com/gin-gonic/gin"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/domain/services/container"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/error/response"
)

// CategoryController handles category requests
type CategoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCategoryController creates a new category controller
func NewCategoryController(ctx *gin.Context, container *container.ServiceContainer) *CategoryController {
	return &CategoryController{Ctx: ctx, Container: container}
}

// CreateCategoryRequest is the category creation payload
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required" example:"Computers"`
	Code        *string `json:"code" example:"COMP"`
	Description string  `json:"description"`
	ParentID    *uint   `json:"parent_id"`
	Icon        string  `json:"icon" example:"desktop"`
}

// UpdateCategoryRequest is the category update payload
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	ParentID    *uint   `json:"parent_id"`
	Icon        *string `json:"icon"`
	Status      *string `json:"status" example:"active"`
}

// HandleCategoryFunc returns a gin handler for the given category method
func HandleCategoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCategoryController(ctx, container)

		switch method {
		case "getAllCategories":
			controller.GetAllCategories()
		case "getCategory":
			controller.GetCategory()
		case "createCategory":
			controller.CreateCategory()
		case "updateCategory":
			controller.UpdateCategory()
		case "deleteCategory":
			controller.DeleteCategory()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *CategoryController) service() services.InterfaceCategoryService {
	return c.Container.GetService("category").(services.InterfaceCategoryService)
}

// GetAllCategories lists categories with their children preloaded
// @Summary List categories
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (c *CategoryController) GetAllCategories() {
	q := bindPagination(c.Ctx)

	categories, total, err := c.service().GetAllCategories(c.Ctx.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(categories, total, q))
}

// GetCategory returns a single category
// @Summary Get category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} models.Category
// @Router /categories/{id} [get]
func (c *CategoryController) GetCategory() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	category, err := c.service().GetCategoryByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, category)
}

// CreateCategory creates a classification category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCategoryRequest true "category"
// @Success 200 {object} models.Category
// @Router /categories [post]
func (c *CategoryController) CreateCategory() {
	var req CreateCategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		ParentID:    req.ParentID,
		Icon:        req.Icon,
	}
	if err := c.service().CreateCategory(c.Ctx.Request.Context(), category); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, category)
}

// UpdateCategory updates an existing category
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param body body UpdateCategoryRequest true "fields to change"
// @Success 200 {object} models.Category
// @Router /categories/{id} [put]
func (c *CategoryController) UpdateCategory() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req UpdateCategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Code != nil {
		updates["code"] = *req.Code
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	category, err := c.service().UpdateCategory(c.Ctx.Request.Context(), id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, category)
}

// DeleteCategory removes a category with no device types or children
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) DeleteCategory() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteCategory(c.Ctx.Request.Context(), id); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
