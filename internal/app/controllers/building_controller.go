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

// BuildingController handles building requests
type BuildingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBuildingController creates a new building controller
func NewBuildingController(ctx *gin.Context, container *container.ServiceContainer) *BuildingController {
	return &BuildingController{Ctx: ctx, Container: container}
}

// CreateBuildingRequest is the building creation payload
type CreateBuildingRequest struct {
	Name        string `json:"name" binding:"required" example:"Main Campus Block A"`
	Description string `json:"description" example:"Four floor teaching building"`
}

// UpdateBuildingRequest is the building update payload
type UpdateBuildingRequest struct {
	Name        *string `json:"name" example:"Main Campus Block A"`
	Description *string `json:"description" example:"Four floor teaching building"`
	Status      *string `json:"status" example:"active"`
}

// HandleBuildingFunc returns a gin handler for the given building method
func HandleBuildingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBuildingController(ctx, container)

		switch method {
		case "getAllBuildings":
			controller.GetAllBuildings()
		case "getBuilding":
			controller.GetBuilding()
		case "createBuilding":
			controller.CreateBuilding()
		case "updateBuilding":
			controller.UpdateBuilding()
		case "deleteBuilding":
			controller.DeleteBuilding()
		case "getBuildingRooms":
			controller.GetBuildingRooms()
		case "getBuildingResponsibles":
			controller.GetBuildingResponsibles()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *BuildingController) service() services.InterfaceBuildingService {
	return c.Container.GetService("building").(services.InterfaceBuildingService)
}

// GetAllBuildings lists buildings with pagination
// @Summary List buildings
// @Tags Buildings
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /buildings [get]
func (c *BuildingController) GetAllBuildings() {
	q := bindPagination(c.Ctx)

	buildings, total, err := c.service().GetAllBuildings(c.Ctx.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(buildings, total, q))
}

// GetBuilding returns a single building with rooms and images
// @Summary Get building
// @Tags Buildings
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Success 200 {object} models.Building
// @Failure 404 {object} response.ErrorResponse
// @Router /buildings/{id} [get]
func (c *BuildingController) GetBuilding() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	building, err := c.service().GetBuildingByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, building)
}

// CreateBuilding creates a building
// @Summary Create building
// @Tags Buildings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateBuildingRequest true "building"
// @Success 200 {object} models.Building
// @Router /buildings [post]
func (c *BuildingController) CreateBuilding() {
	var req CreateBuildingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	building := &models.Building{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.service().CreateBuilding(c.Ctx.Request.Context(), building); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, building)
}

// UpdateBuilding updates an existing building
// @Summary Update building
// @Tags Buildings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Param body body UpdateBuildingRequest true "fields to change"
// @Success 200 {object} models.Building
// @Router /buildings/{id} [put]
func (c *BuildingController) UpdateBuilding() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req UpdateBuildingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	building, err := c.service().UpdateBuilding(c.Ctx.Request.Context(), id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, building)
}

// DeleteBuilding removes a building and its rooms
// @Summary Delete building
// @Tags Buildings
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /buildings/{id} [delete]
func (c *BuildingController) DeleteBuilding() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteBuilding(c.Ctx.Request.Context(), id); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// GetBuildingRooms lists the rooms of a building
// @Summary List building rooms
// @Tags Buildings
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Success 200 {array} models.Room
// @Router /buildings/{id}/rooms [get]
func (c *BuildingController) GetBuildingRooms() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	rooms, err := c.service().GetBuildingRooms(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, rooms)
}

// GetBuildingResponsibles lists responsible persons attached to a building
// @Summary List building responsibles
// @Tags Buildings
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Success 200 {array} models.ResponsiblePerson
// @Router /buildings/{id}/responsibles [get]
func (c *BuildingController) GetBuildingResponsibles() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	responsibles, err := c.service().GetBuildingResponsibles(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, responsibles)
}
