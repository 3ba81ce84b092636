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

// ServiceLogController handles maintenance log requests
type ServiceLogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewServiceLogController creates a new service log controller
func NewServiceLogController(ctx *gin.Context, container *container.ServiceContainer) *ServiceLogController {
	return &ServiceLogController{Ctx: ctx, Container: container}
}

// CreateServiceLogRequest is the maintenance record payload
type CreateServiceLogRequest struct {
	DeviceID        uint     `json:"device_id" binding:"required" example:"17"`
	ServiceType     string   `json:"service_type" binding:"required" example:"preventive"`
	ServiceDate     string   `json:"service_date" binding:"required" example:"2024-11-02"`
	Description     string   `json:"description" binding:"required" example:"Cleaned fans, replaced thermal paste"`
	Cost            *float64 `json:"cost" example:"120000"`
	NextServiceDate *string  `json:"next_service_date" example:"2025-05-02"`
	RepairRequestID *uint    `json:"repair_request_id"`
}

// UpdateServiceLogRequest is the maintenance record update payload
type UpdateServiceLogRequest struct {
	ServiceType     *string  `json:"service_type"`
	ServiceDate     *string  `json:"service_date"`
	Description     *string  `json:"description"`
	Cost            *float64 `json:"cost"`
	NextServiceDate *string  `json:"next_service_date"`
}

// HandleServiceLogFunc returns a gin handler for the given method
func HandleServiceLogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewServiceLogController(ctx, container)

		switch method {
		case "getAllServiceLogs":
			controller.GetAllServiceLogs()
		case "getServiceLog":
			controller.GetServiceLog()
		case "createServiceLog":
			controller.CreateServiceLog()
		case "updateServiceLog":
			controller.UpdateServiceLog()
		case "deleteServiceLog":
			controller.DeleteServiceLog()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *ServiceLogController) service() services.InterfaceServiceLogService {
	return c.Container.GetService("serviceLog").(services.InterfaceServiceLogService)
}

// GetAllServiceLogs lists maintenance records, optionally by device
// @Summary List service logs
// @Tags ServiceLogs
// @Produce json
// @Security BearerAuth
// @Param device_id query int false "filter by device"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /service-logs [get]
func (c *ServiceLogController) GetAllServiceLogs() {
	q := bindPagination(c.Ctx)
	deviceID := parseUintQuery(c.Ctx, "device_id")

	logs, total, err := c.service().GetAllServiceLogs(c.Ctx.Request.Context(), deviceID, q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(logs, total, q))
}

// GetServiceLog returns a single maintenance record
// @Summary Get service log
// @Tags ServiceLogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "service log id"
// @Success 200 {object} models.ServiceLog
// @Failure 404 {object} response.ErrorResponse
// @Router /service-logs/{id} [get]
func (c *ServiceLogController) GetServiceLog() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	log, err := c.service().GetServiceLogByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, log)
}

// CreateServiceLog records maintenance work on a device
// @Summary Create service log
// @Tags ServiceLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateServiceLogRequest true "record"
// @Success 200 {object} models.ServiceLog
// @Failure 400 {object} response.ErrorResponse
// @Router /service-logs [post]
func (c *ServiceLogController) CreateServiceLog() {
	var req CreateServiceLogRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	serviceDate, err := parseDate(req.ServiceDate)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "service_date must be YYYY-MM-DD", nil)
		return
	}

	log := &models.ServiceLog{
		DeviceID:        req.DeviceID,
		ServiceType:     req.ServiceType,
		ServiceDate:     serviceDate,
		Description:     req.Description,
		Cost:            req.Cost,
		RepairRequestID: req.RepairRequestID,
	}
	if req.NextServiceDate != nil {
		next, err := parseDate(*req.NextServiceDate)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "next_service_date must be YYYY-MM-DD", nil)
			return
		}
		log.NextServiceDate = &next
	}

	if err := c.service().CreateServiceLog(c.Ctx.Request.Context(), log); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, log)
}

// UpdateServiceLog updates a maintenance record
// @Summary Update service log
// @Tags ServiceLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "service log id"
// @Param body body UpdateServiceLogRequest true "fields to change"
// @Success 200 {object} models.ServiceLog
// @Router /service-logs/{id} [put]
func (c *ServiceLogController) UpdateServiceLog() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req UpdateServiceLogRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.ServiceType != nil {
		updates["service_type"] = *req.ServiceType
	}
	if req.ServiceDate != nil {
		d, err := parseDate(*req.ServiceDate)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "service_date must be YYYY-MM-DD", nil)
			return
		}
		updates["service_date"] = d
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Cost != nil {
		updates["cost"] = *req.Cost
	}
	if req.NextServiceDate != nil {
		d, err := parseDate(*req.NextServiceDate)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "next_service_date must be YYYY-MM-DD", nil)
			return
		}
		updates["next_service_date"] = d
	}

	log, err := c.service().UpdateServiceLog(c.Ctx.Request.Context(), id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, log)
}

// DeleteServiceLog removes a maintenance record
// @Summary Delete service log
// @Tags ServiceLogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "service log id"
// @Success 200 {object} response.Response
// @Router /service-logs/{id} [delete]
func (c *ServiceLogController) DeleteServiceLog() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteServiceLog(c.Ctx.Request.Context(), id); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
