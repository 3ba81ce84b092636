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

// RepairController handles the repair request workflow
type RepairController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRepairController creates a new repair controller
func NewRepairController(ctx *gin.Context, container *container.ServiceContainer) *RepairController {
	return &RepairController{Ctx: ctx, Container: container}
}

// CreateRepairRequest opens a new ticket
type CreateRepairRequest struct {
	DeviceID           uint   `json:"device_id" binding:"required" example:"17"`
	ProblemDescription string `json:"problem_description" binding:"required" example:"No display output"`
	Priority           string `json:"priority" example:"high"`
}

// AssignRepairRequestPayload assigns the ticket to a user
type AssignRepairRequestPayload struct {
	AssigneeID uint `json:"assignee_id" binding:"required" example:"5"`
}

// CompleteRepairRequestPayload closes the ticket with the work done
type CompleteRepairRequestPayload struct {
	WorkDescription string   `json:"work_description" example:"Replaced power supply"`
	Cost            *float64 `json:"cost" example:"350000"`
}

// CancelRepairRequestPayload cancels the ticket with a reason
type CancelRepairRequestPayload struct {
	Reason string `json:"reason" example:"Device written off instead"`
}

// HandleRepairFunc returns a gin handler for the given repair method
func HandleRepairFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRepairController(ctx, container)

		switch method {
		case "getAllRepairRequests":
			controller.GetAllRepairRequests()
		case "getRepairRequest":
			controller.GetRepairRequest()
		case "createRepairRequest":
			controller.CreateRepairRequest()
		case "assignRepairRequest":
			controller.AssignRepairRequest()
		case "startRepairRequest":
			controller.StartRepairRequest()
		case "completeRepairRequest":
			controller.CompleteRepairRequest()
		case "cancelRepairRequest":
			controller.CancelRepairRequest()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *RepairController) service() services.InterfaceRepairService {
	return c.Container.GetService("repair").(services.InterfaceRepairService)
}

// GetAllRepairRequests lists tickets with filters and pagination
// @Summary List repair requests
// @Tags Repairs
// @Produce json
// @Security BearerAuth
// @Param device_id query int false "filter by device"
// @Param status query string false "filter by status"
// @Param priority query string false "filter by priority"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /repairs [get]
func (c *RepairController) GetAllRepairRequests() {
	q := bindPagination(c.Ctx)
	filter := services.RepairFilter{
		DeviceID: parseUintQuery(c.Ctx, "device_id"),
		Status:   c.Ctx.Query("status"),
		Priority: c.Ctx.Query("priority"),
	}

	repairs, total, err := c.service().GetAllRepairRequests(c.Ctx.Request.Context(), filter, q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(repairs, total, q))
}

// GetRepairRequest returns a single ticket
// @Summary Get repair request
// @Tags Repairs
// @Produce json
// @Security BearerAuth
// @Param id path int true "repair id"
// @Success 200 {object} models.RepairRequest
// @Failure 404 {object} response.ErrorResponse
// @Router /repairs/{id} [get]
func (c *RepairController) GetRepairRequest() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	repair, err := c.service().GetRepairRequestByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, repair)
}

// CreateRepairRequest opens a repair ticket for a device
// @Summary Create repair request
// @Tags Repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRepairRequest true "ticket"
// @Success 200 {object} models.RepairRequest
// @Failure 400 {object} response.ErrorResponse
// @Router /repairs [post]
func (c *RepairController) CreateRepairRequest() {
	var req CreateRepairRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	repair := &models.RepairRequest{
		DeviceID:           req.DeviceID,
		ProblemDescription: req.ProblemDescription,
		Priority:           req.Priority,
	}
	if err := c.service().CreateRepairRequest(c.Ctx.Request.Context(), repair); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, repair)
}

// AssignRepairRequest moves a new ticket to assigned
// @Summary Assign repair request
// @Tags Repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "repair id"
// @Param body body AssignRepairRequestPayload true "assignee"
// @Success 200 {object} models.RepairRequest
// @Failure 400 {object} response.ErrorResponse
// @Router /repairs/{id}/assign [post]
func (c *RepairController) AssignRepairRequest() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req AssignRepairRequestPayload
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	repair, err := c.service().AssignRepairRequest(c.Ctx.Request.Context(), id, req.AssigneeID)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, repair)
}

// StartRepairRequest moves an assigned ticket to in_progress
// @Summary Start repair
// @Tags Repairs
// @Produce json
// @Security BearerAuth
// @Param id path int true "repair id"
// @Success 200 {object} models.RepairRequest
// @Failure 400 {object} response.ErrorResponse
// @Router /repairs/{id}/start [post]
func (c *RepairController) StartRepairRequest() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	repair, err := c.service().StartRepairRequest(c.Ctx.Request.Context(), id)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, repair)
}

// CompleteRepairRequest closes an in_progress ticket
// @Summary Complete repair
// @Tags Repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "repair id"
// @Param body body CompleteRepairRequestPayload true "closing details"
// @Success 200 {object} models.RepairRequest
// @Failure 400 {object} response.ErrorResponse
// @Router /repairs/{id}/complete [post]
func (c *RepairController) CompleteRepairRequest() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req CompleteRepairRequestPayload
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	repair, err := c.service().CompleteRepairRequest(c.Ctx.Request.Context(), id, services.CompleteRepairInput{
		WorkDescription: req.WorkDescription,
		Cost:            req.Cost,
	})
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, repair)
}

// CancelRepairRequest cancels any non-terminal ticket
// @Summary Cancel repair
// @Tags Repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "repair id"
// @Param body body CancelRepairRequestPayload true "reason"
// @Success 200 {object} models.RepairRequest
// @Failure 400 {object} response.ErrorResponse
// @Router /repairs/{id}/cancel [post]
func (c *RepairController) CancelRepairRequest() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req CancelRepairRequestPayload
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	repair, err := c.service().CancelRepairRequest(c.Ctx.Request.Context(), id, req.Reason)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, repair)
}
