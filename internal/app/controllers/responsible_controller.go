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

// ResponsibleController handles responsible person requests
type ResponsibleController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResponsibleController creates a new responsible person controller
func NewResponsibleController(ctx *gin.Context, container *container.ServiceContainer) *ResponsibleController {
	return &ResponsibleController{Ctx: ctx, Container: container}
}

// CreateResponsibleRequest assigns a user to a building or room
type CreateResponsibleRequest struct {
	UserID     uint   `json:"user_id" binding:"required" example:"3"`
	BuildingID uint   `json:"building_id" binding:"required" example:"1"`
	RoomID     *uint  `json:"room_id" example:"12"`
	Position   string `json:"position" example:"Lab supervisor"`
	Phone      string `json:"phone" example:"+998901234567"`
}

// UpdateResponsibleRequest is the responsible person update payload
type UpdateResponsibleRequest struct {
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status" example:"active"`
}

// HandleResponsibleFunc returns a gin handler for the given method
func HandleResponsibleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResponsibleController(ctx, container)

		switch method {
		case "getAllResponsibles":
			controller.GetAllResponsibles()
		case "getResponsible":
			controller.GetResponsible()
		case "createResponsible":
			controller.CreateResponsible()
		case "updateResponsible":
			controller.UpdateResponsible()
		case "deleteResponsible":
			controller.DeleteResponsible()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *ResponsibleController) service() services.InterfaceResponsiblePersonService {
	return c.Container.GetService("responsible").(services.InterfaceResponsiblePersonService)
}

// GetAllResponsibles lists responsible persons
// @Summary List responsibles
// @Tags Responsibles
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /responsibles [get]
func (c *ResponsibleController) GetAllResponsibles() {
	q := bindPagination(c.Ctx)

	responsibles, total, err := c.service().GetAllResponsibles(c.Ctx.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(responsibles, total, q))
}

// GetResponsible returns a single responsible person
// @Summary Get responsible
// @Tags Responsibles
// @Produce json
// @Security BearerAuth
// @Param id path int true "responsible id"
// @Success 200 {object} models.ResponsiblePerson
// @Router /responsibles/{id} [get]
func (c *ResponsibleController) GetResponsible() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	rp, err := c.service().GetResponsibleByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, rp)
}

// CreateResponsible assigns a user as responsible for a building or room
// @Summary Create responsible
// @Tags Responsibles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateResponsibleRequest true "assignment"
// @Success 200 {object} models.ResponsiblePerson
// @Router /responsibles [post]
func (c *ResponsibleController) CreateResponsible() {
	var req CreateResponsibleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	rp := &models.ResponsiblePerson{
		UserID:     req.UserID,
		BuildingID: req.BuildingID,
		RoomID:     req.RoomID,
		Position:   req.Position,
		Phone:      req.Phone,
	}
	if err := c.service().CreateResponsible(c.Ctx.Request.Context(), rp); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, rp)
}

// UpdateResponsible updates position, phone or status
// @Summary Update responsible
// @Tags Responsibles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "responsible id"
// @Param body body UpdateResponsibleRequest true "fields to change"
// @Success 200 {object} models.ResponsiblePerson
// @Router /responsibles/{id} [put]
func (c *ResponsibleController) UpdateResponsible() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req UpdateResponsibleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	rp, err := c.service().UpdateResponsible(c.Ctx.Request.Context(), id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, rp)
}

// DeleteResponsible removes the assignment and detaches device locations
// @Summary Delete responsible
// @Tags Responsibles
// @Produce json
// @Security BearerAuth
// @Param id path int true "responsible id"
// @Success 200 {object} response.Response
// @Router /responsibles/{id} [delete]
func (c *ResponsibleController) DeleteResponsible() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteResponsible(c.Ctx.Request.Context(), id); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
