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

// DeviceTypeController handles device type requests
type DeviceTypeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceTypeController creates a new device type controller
func NewDeviceTypeController(ctx *gin.Context, container *container.ServiceContainer) *DeviceTypeController {
	return &DeviceTypeController{Ctx: ctx, Container: container}
}

// CreateDeviceTypeRequest is the device type creation payload
type CreateDeviceTypeRequest struct {
	CategoryID   uint   `json:"category_id" binding:"required" example:"1"`
	Name         string `json:"name" binding:"required" example:"Desktop PC"`
	Model        string `json:"model" example:"OptiPlex 7090"`
	Manufacturer string `json:"manufacturer" example:"Dell"`
	Description  string `json:"description"`
}

// UpdateDeviceTypeRequest is the device type update payload
type UpdateDeviceTypeRequest struct {
	CategoryID   *uint   `json:"category_id"`
	Name         *string `json:"name"`
	Model        *string `json:"model"`
	Manufacturer *string `json:"manufacturer"`
	Description  *string `json:"description"`
	Status       *string `json:"status" example:"active"`
}

// HandleDeviceTypeFunc returns a gin handler for the given method
func HandleDeviceTypeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceTypeController(ctx, container)

		switch method {
		case "getAllDeviceTypes":
			controller.GetAllDeviceTypes()
		case "getDeviceType":
			controller.GetDeviceType()
		case "createDeviceType":
			controller.CreateDeviceType()
		case "updateDeviceType":
			controller.UpdateDeviceType()
		case "deleteDeviceType":
			controller.DeleteDeviceType()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *DeviceTypeController) service() services.InterfaceDeviceTypeService {
	return c.Container.GetService("deviceType").(services.InterfaceDeviceTypeService)
}

// GetAllDeviceTypes lists device types, optionally filtered by category
// @Summary List device types
// @Tags DeviceTypes
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "filter by category"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /device-types [get]
func (c *DeviceTypeController) GetAllDeviceTypes() {
	q := bindPagination(c.Ctx)
	categoryID := parseUintQuery(c.Ctx, "category_id")

	deviceTypes, total, err := c.service().GetAllDeviceTypes(c.Ctx.Request.Context(), categoryID, q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(deviceTypes, total, q))
}

// GetDeviceType returns a single device type
// @Summary Get device type
// @Tags DeviceTypes
// @Produce json
// @Security BearerAuth
// @Param id path int true "device type id"
// @Success 200 {object} models.DeviceType
// @Router /device-types/{id} [get]
func (c *DeviceTypeController) GetDeviceType() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	dt, err := c.service().GetDeviceTypeByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, dt)
}

// CreateDeviceType creates a device type inside a category
// @Summary Create device type
// @Tags DeviceTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateDeviceTypeRequest true "device type"
// @Success 200 {object} models.DeviceType
// @Router /device-types [post]
func (c *DeviceTypeController) CreateDeviceType() {
	var req CreateDeviceTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	dt := &models.DeviceType{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Model:        req.Model,
		Manufacturer: req.Manufacturer,
		Description:  req.Description,
	}
	if err := c.service().CreateDeviceType(c.Ctx.Request.Context(), dt); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, dt)
}

// UpdateDeviceType updates an existing device type
// @Summary Update device type
// @Tags DeviceTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "device type id"
// @Param body body UpdateDeviceTypeRequest true "fields to change"
// @Success 200 {object} models.DeviceType
// @Router /device-types/{id} [put]
func (c *DeviceTypeController) UpdateDeviceType() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req UpdateDeviceTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Manufacturer != nil {
		updates["manufacturer"] = *req.Manufacturer
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	dt, err := c.service().UpdateDeviceType(c.Ctx.Request.Context(), id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, dt)
}

// DeleteDeviceType removes a device type with no devices
// @Summary Delete device type
// @Tags DeviceTypes
// @Produce json
// @Security BearerAuth
// @Param id path int true "device type id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /device-types/{id} [delete]
func (c *DeviceTypeController) DeleteDeviceType() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteDeviceType(c.Ctx.Request.Context(), id); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
