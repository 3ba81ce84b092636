package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/domain/services/container"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/error/response"
)

// DeviceController handles device requests including the location and
// condition subsystems
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceController creates a new device controller
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{Ctx: ctx, Container: container}
}

// CreateDeviceRequest is the device creation payload. Dates use YYYY-MM-DD.
type CreateDeviceRequest struct {
	DeviceTypeID    uint     `json:"device_type_id" binding:"required" example:"4"`
	InventoryNumber string   `json:"inventory_number" binding:"required" example:"RTTM-2024-00017"`
	SerialNumber    string   `json:"serial_number" example:"CN0H2Y4K"`
	PurchaseDate    string   `json:"purchase_date" binding:"required" example:"2024-03-15"`
	PurchasePrice   *float64 `json:"purchase_price" example:"7400000"`
	WarrantyUntil   *string  `json:"warranty_until" example:"2027-03-15"`
	IPAddress       string   `json:"ip_address" example:"10.10.4.21"`
	MACAddress      string   `json:"mac_address" example:"00:1B:44:11:3A:B7"`
	Notes           string   `json:"notes"`
}

// UpdateDeviceRequest is the device update payload. Condition is not
// accepted here, it changes through the condition endpoint only.
type UpdateDeviceRequest struct {
	DeviceTypeID    *uint    `json:"device_type_id"`
	InventoryNumber *string  `json:"inventory_number"`
	SerialNumber    *string  `json:"serial_number"`
	PurchaseDate    *string  `json:"purchase_date" example:"2024-03-15"`
	PurchasePrice   *float64 `json:"purchase_price"`
	WarrantyUntil   *string  `json:"warranty_until"`
	IPAddress       *string  `json:"ip_address"`
	MACAddress      *string  `json:"mac_address"`
	Notes           *string  `json:"notes"`
	Status          *string  `json:"status" example:"active"`
}

// MoveDeviceRequest places a device into a room
type MoveDeviceRequest struct {
	RoomID              uint   `json:"room_id" binding:"required" example:"12"`
	ResponsiblePersonID *uint  `json:"responsible_person_id" example:"3"`
	PositionDescription string `json:"position_description" example:"Desk by the window"`
	Reason              string `json:"reason" example:"New lab assignment"`
}

// ChangeConditionRequest changes a device's condition
type ChangeConditionRequest struct {
	Condition string `json:"condition" binding:"required" example:"broken"`
	Reason    string `json:"reason" example:"Power supply failure"`
}

// HandleDeviceFunc returns a gin handler for the given device method
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getAllDevices":
			controller.GetAllDevices()
		case "getDevice":
			controller.GetDevice()
		case "getDeviceByInventoryNumber":
			controller.GetDeviceByInventoryNumber()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		case "moveDevice":
			controller.MoveDevice()
		case "getLocation":
			controller.GetLocation()
		case "getLocationHistory":
			controller.GetLocationHistory()
		case "changeCondition":
			controller.ChangeCondition()
		case "getConditionHistory":
			controller.GetConditionHistory()
		case "exportDevices":
			controller.ExportDevices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *DeviceController) service() services.InterfaceDeviceService {
	return c.Container.GetService("device").(services.InterfaceDeviceService)
}

func (c *DeviceController) locations() services.InterfaceLocationService {
	return c.Container.GetService("location").(services.InterfaceLocationService)
}

func (c *DeviceController) deviceFilter() services.DeviceFilter {
	return services.DeviceFilter{
		DeviceTypeID: parseUintQuery(c.Ctx, "device_type_id"),
		CategoryID:   parseUintQuery(c.Ctx, "category_id"),
		Condition:    c.Ctx.Query("condition"),
		Status:       c.Ctx.Query("status"),
		Search:       c.Ctx.Query("search"),
	}
}

// parseDate parses a YYYY-MM-DD value
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// GetAllDevices lists devices with filters and pagination
// @Summary List devices
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param device_type_id query int false "filter by device type"
// @Param category_id query int false "filter by category"
// @Param condition query string false "filter by condition"
// @Param search query string false "match inventory or serial number"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /devices [get]
func (c *DeviceController) GetAllDevices() {
	q := bindPagination(c.Ctx)

	devices, total, err := c.service().GetAllDevices(c.Ctx.Request.Context(), c.deviceFilter(), q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(devices, total, q))
}

// GetDevice returns a single device with type, location and images
// @Summary Get device
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Success 200 {object} models.Device
// @Failure 404 {object} response.ErrorResponse
// @Router /devices/{id} [get]
func (c *DeviceController) GetDevice() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	device, err := c.service().GetDeviceByID(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, device)
}

// GetDeviceByInventoryNumber looks a device up by its business key
// @Summary Get device by inventory number
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param number path string true "inventory number"
// @Success 200 {object} models.Device
// @Failure 404 {object} response.ErrorResponse
// @Router /devices/by-inventory/{number} [get]
func (c *DeviceController) GetDeviceByInventoryNumber() {
	number := c.Ctx.Param("number")
	if number == "" {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	device, err := c.service().GetDeviceByInventoryNumber(c.Ctx.Request.Context(), number)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, device)
}

// CreateDevice registers a new device
// @Summary Create device
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateDeviceRequest true "device"
// @Success 200 {object} models.Device
// @Failure 400 {object} response.ErrorResponse
// @Router /devices [post]
func (c *DeviceController) CreateDevice() {
	var req CreateDeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "purchase_date must be YYYY-MM-DD", nil)
		return
	}

	device := &models.Device{
		DeviceTypeID:    req.DeviceTypeID,
		InventoryNumber: req.InventoryNumber,
		SerialNumber:    req.SerialNumber,
		PurchaseDate:    purchaseDate,
		PurchasePrice:   req.PurchasePrice,
		IPAddress:       req.IPAddress,
		MACAddress:      req.MACAddress,
		Notes:           req.Notes,
	}
	if req.WarrantyUntil != nil {
		warranty, err := parseDate(*req.WarrantyUntil)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "warranty_until must be YYYY-MM-DD", nil)
			return
		}
		device.WarrantyUntil = &warranty
	}

	if err := c.service().CreateDevice(c.Ctx.Request.Context(), device); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, device)
}

// UpdateDevice updates device attributes other than condition
// @Summary Update device
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param body body UpdateDeviceRequest true "fields to change"
// @Success 200 {object} models.Device
// @Router /devices/{id} [put]
func (c *DeviceController) UpdateDevice() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req UpdateDeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.DeviceTypeID != nil {
		updates["device_type_id"] = *req.DeviceTypeID
	}
	if req.InventoryNumber != nil {
		updates["inventory_number"] = *req.InventoryNumber
	}
	if req.SerialNumber != nil {
		updates["serial_number"] = *req.SerialNumber
	}
	if req.PurchaseDate != nil {
		d, err := parseDate(*req.PurchaseDate)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "purchase_date must be YYYY-MM-DD", nil)
			return
		}
		updates["purchase_date"] = d
	}
	if req.PurchasePrice != nil {
		updates["purchase_price"] = *req.PurchasePrice
	}
	if req.WarrantyUntil != nil {
		d, err := parseDate(*req.WarrantyUntil)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "warranty_until must be YYYY-MM-DD", nil)
			return
		}
		updates["warranty_until"] = d
	}
	if req.IPAddress != nil {
		updates["ip_address"] = *req.IPAddress
	}
	if req.MACAddress != nil {
		updates["mac_address"] = *req.MACAddress
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	device, err := c.service().UpdateDevice(c.Ctx.Request.Context(), id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, device)
}

// DeleteDevice removes a device with its images, location and histories
// @Summary Delete device
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Success 200 {object} response.Response
// @Router /devices/{id} [delete]
func (c *DeviceController) DeleteDevice() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteDevice(c.Ctx.Request.Context(), id); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// MoveDevice places or moves a device and appends a history row
// @Summary Move device
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param body body MoveDeviceRequest true "destination"
// @Success 200 {object} models.DeviceLocation
// @Failure 400 {object} response.ErrorResponse
// @Router /devices/{id}/move [post]
func (c *DeviceController) MoveDevice() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req MoveDeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	location, err := c.locations().MoveDevice(c.Ctx.Request.Context(), id, services.MoveDeviceInput{
		RoomID:              req.RoomID,
		ResponsiblePersonID: req.ResponsiblePersonID,
		PositionDescription: req.PositionDescription,
		Reason:              req.Reason,
	})
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, location)
}

// GetLocation returns where a device currently is
// @Summary Get device location
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Success 200 {object} models.DeviceLocation
// @Failure 404 {object} response.ErrorResponse
// @Router /devices/{id}/location [get]
func (c *DeviceController) GetLocation() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	location, err := c.locations().GetLocation(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, location)
}

// GetLocationHistory lists a device's movements, newest first
// @Summary Device location history
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /devices/{id}/location/history [get]
func (c *DeviceController) GetLocationHistory() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}
	q := bindPagination(c.Ctx)

	history, total, err := c.locations().GetLocationHistory(c.Ctx.Request.Context(), id, q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(history, total, q))
}

// ChangeCondition changes a device condition and appends a history row
// @Summary Change device condition
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param body body ChangeConditionRequest true "new condition"
// @Success 200 {object} models.Device
// @Failure 400 {object} response.ErrorResponse
// @Router /devices/{id}/condition [post]
func (c *DeviceController) ChangeCondition() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	var req ChangeConditionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	device, err := c.service().ChangeCondition(c.Ctx.Request.Context(), id, req.Condition, req.Reason)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, device)
}

// GetConditionHistory lists a device's condition changes, newest first
// @Summary Device condition history
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /devices/{id}/condition/history [get]
func (c *DeviceController) GetConditionHistory() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}
	q := bindPagination(c.Ctx)

	history, total, err := c.service().GetConditionHistory(c.Ctx.Request.Context(), id, q.Page, q.PageSize)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, pagedData(history, total, q))
}

// ExportDevices streams the filtered device list as an xlsx workbook
// @Summary Export devices as Excel
// @Tags Devices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param device_type_id query int false "filter by device type"
// @Param category_id query int false "filter by category"
// @Param condition query string false "filter by condition"
// @Success 200 {file} binary
// @Router /devices/export [get]
func (c *DeviceController) ExportDevices() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)

	buf, err := reportService.ExportDevices(c.Ctx.Request.Context(), c.deviceFilter())
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	filename := fmt.Sprintf("devices_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Ctx.Data(200,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
