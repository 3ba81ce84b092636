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

// RoomController handles room requests
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController creates a new room controller
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{Ctx: ctx, Container: container}
}

// CreateRoomRequest is the room creation payload
type CreateRoomRequest struct {
	BuildingID  uint   `json:"building_id" binding:"required" example:"1"`
	Name        string `json:"name" binding:"required" example:"204"`
	Description string `json:"description" example:"Computer lab"`
}

// UpdateRoomRequest is the room update payload
type UpdateRoomRequest struct {
	Name        *string `json:"name" example:"205"`
	Description *string `json:"description"`
	Status      *string `json:"status" example:"active"`
}

// HandleRoomFunc returns a gin handler for the given room method
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getAllRooms":
			controller.GetAllRooms()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		case "getRoomDevices":
			controller.GetRoomDevices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *RoomController) service() services.InterfaceRoomService {
	return c.Container.GetService("room").(services.InterfaceRoomService)
}

// GetAllRooms lists rooms, optionally by building
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param building_id query int false "filter by building"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /rooms [get]
func (c *RoomController) GetAllRooms() {
	q := bindPagination(c.Ctx)
	buildingID := parseUintQuery(c.Ctx, "building_id")

	rooms, total, err := c.service().GetAllRooms(c.Ctx.Request.Context(), buildingID, q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(rooms, total, q))
}

// GetRoom returns a single room
// @Summary Get room
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "room id"
// @Success 200 {object} models.Room
// @Failure 404 {object} response.ErrorResponse
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	room, err := c.service().GetRoomByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, room)
}

// CreateRoom creates a room inside a building
// @Summary Create room
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRoomRequest true "room"
// @Success 200 {object} models.Room
// @Router /rooms [post]
func (c *RoomController) CreateRoom() {
	var req CreateRoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	room := &models.Room{
		BuildingID:  req.BuildingID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.service().CreateRoom(c.Ctx.Request.Context(), room); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, room)
}

// UpdateRoom updates an existing room
// @Summary Update room
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "room id"
// @Param body body UpdateRoomRequest true "fields to change"
// @Success 200 {object} models.Room
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req UpdateRoomRequest
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

	room, err := c.service().UpdateRoom(c.Ctx.Request.Context(), id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, room)
}

// DeleteRoom removes a room when no devices occupy it
// @Summary Delete room
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "room id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteRoom(c.Ctx.Request.Context(), id); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// GetRoomDevices lists the devices currently placed in a room
// @Summary List room devices
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "room id"
// @Success 200 {array} models.DeviceLocation
// @Router /rooms/{id}/devices [get]
func (c *RoomController) GetRoomDevices() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	locations, err := c.service().GetRoomDevices(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, locations)
}
