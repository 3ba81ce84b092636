package controllers

import (
	"github.com/gin-gonic/gin"

	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/domain/services/container"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/error/response"
)

// ImageController handles image uploads for buildings, rooms and devices
type ImageController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewImageController creates a new image controller
func NewImageController(ctx *gin.Context, container *container.ServiceContainer) *ImageController {
	return &ImageController{Ctx: ctx, Container: container}
}

// HandleImageFunc returns a gin handler for the given image method
func HandleImageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewImageController(ctx, container)

		switch method {
		case "addBuildingImage":
			controller.AddBuildingImage()
		case "setMainBuildingImage":
			controller.SetMainBuildingImage()
		case "deleteBuildingImage":
			controller.DeleteBuildingImage()
		case "addRoomImage":
			controller.AddRoomImage()
		case "setMainRoomImage":
			controller.SetMainRoomImage()
		case "deleteRoomImage":
			controller.DeleteRoomImage()
		case "addDeviceImage":
			controller.AddDeviceImage()
		case "setMainDeviceImage":
			controller.SetMainDeviceImage()
		case "deleteDeviceImage":
			controller.DeleteDeviceImage()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

func (c *ImageController) service() services.InterfaceImageService {
	return c.Container.GetService("image").(services.InterfaceImageService)
}

// uploadForm reads the shared multipart fields of an image upload
func (c *ImageController) uploadForm() (title string, isMain bool, ok bool) {
	file, err := c.Ctx.FormFile("file")
	if err != nil || file == nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "file is required", nil)
		return "", false, false
	}
	return c.Ctx.PostForm("title"), c.Ctx.PostForm("is_main") == "true", true
}

// AddBuildingImage uploads a photo for a building
// @Summary Upload building image
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Param file formData file true "image file"
// @Param title formData string false "caption"
// @Param is_main formData bool false "mark as main image"
// @Success 200 {object} models.BuildingImage
// @Failure 400 {object} response.ErrorResponse
// @Router /buildings/{id}/images [post]
func (c *ImageController) AddBuildingImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}
	title, isMain, ok := c.uploadForm()
	if !ok {
		return
	}
	file, _ := c.Ctx.FormFile("file")

	img, err := c.service().AddBuildingImage(c.Ctx.Request.Context(), id, file, title, isMain)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, img)
}

// SetMainBuildingImage marks an image as the building's main image
// @Summary Set main building image
// @Tags Images
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Param imageId path int true "image id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /buildings/{id}/images/{imageId}/main [post]
func (c *ImageController) SetMainBuildingImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	imageID, ok2 := parseUintParam(c.Ctx, "imageId")
	if !ok || !ok2 {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().SetMainBuildingImage(c.Ctx.Request.Context(), id, imageID); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// DeleteBuildingImage removes a building image and its file
// @Summary Delete building image
// @Tags Images
// @Produce json
// @Security BearerAuth
// @Param id path int true "building id"
// @Param imageId path int true "image id"
// @Success 200 {object} response.Response
// @Router /buildings/{id}/images/{imageId} [delete]
func (c *ImageController) DeleteBuildingImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	imageID, ok2 := parseUintParam(c.Ctx, "imageId")
	if !ok || !ok2 {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteBuildingImage(c.Ctx.Request.Context(), id, imageID); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// AddRoomImage uploads a photo for a room
// @Summary Upload room image
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "room id"
// @Param file formData file true "image file"
// @Param title formData string false "caption"
// @Param is_main formData bool false "mark as main image"
// @Success 200 {object} models.RoomImage
// @Router /rooms/{id}/images [post]
func (c *ImageController) AddRoomImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}
	title, isMain, ok := c.uploadForm()
	if !ok {
		return
	}
	file, _ := c.Ctx.FormFile("file")

	img, err := c.service().AddRoomImage(c.Ctx.Request.Context(), id, file, title, isMain)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, img)
}

// SetMainRoomImage marks an image as the room's main image
// @Summary Set main room image
// @Tags Images
// @Produce json
// @Security BearerAuth
// @Param id path int true "room id"
// @Param imageId path int true "image id"
// @Success 200 {object} response.Response
// @Router /rooms/{id}/images/{imageId}/main [post]
func (c *ImageController) SetMainRoomImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	imageID, ok2 := parseUintParam(c.Ctx, "imageId")
	if !ok || !ok2 {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().SetMainRoomImage(c.Ctx.Request.Context(), id, imageID); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// DeleteRoomImage removes a room image and its file
// @Summary Delete room image
// @Tags Images
// @Produce json
// @Security BearerAuth
// @Param id path int true "room id"
// @Param imageId path int true "image id"
// @Success 200 {object} response.Response
// @Router /rooms/{id}/images/{imageId} [delete]
func (c *ImageController) DeleteRoomImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	imageID, ok2 := parseUintParam(c.Ctx, "imageId")
	if !ok || !ok2 {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteRoomImage(c.Ctx.Request.Context(), id, imageID); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// AddDeviceImage uploads a photo for a device
// @Summary Upload device image
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param file formData file true "image file"
// @Param title formData string false "caption"
// @Param is_main formData bool false "mark as main image"
// @Success 200 {object} models.DeviceImage
// @Router /devices/{id}/images [post]
func (c *ImageController) AddDeviceImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}
	title, isMain, ok := c.uploadForm()
	if !ok {
		return
	}
	file, _ := c.Ctx.FormFile("file")

	img, err := c.service().AddDeviceImage(c.Ctx.Request.Context(), id, file, title, isMain)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, img)
}

// SetMainDeviceImage marks an image as the device's main image
// @Summary Set main device image
// @Tags Images
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param imageId path int true "image id"
// @Success 200 {object} response.Response
// @Router /devices/{id}/images/{imageId}/main [post]
func (c *ImageController) SetMainDeviceImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	imageID, ok2 := parseUintParam(c.Ctx, "imageId")
	if !ok || !ok2 {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().SetMainDeviceImage(c.Ctx.Request.Context(), id, imageID); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// DeleteDeviceImage removes a device image and its file
// @Summary Delete device image
// @Tags Images
// @Produce json
// @Security BearerAuth
// @Param id path int true "device id"
// @Param imageId path int true "image id"
// @Success 200 {object} response.Response
// @Router /devices/{id}/images/{imageId} [delete]
func (c *ImageController) DeleteDeviceImage() {
	id, ok := parseUintParam(c.Ctx, "id")
	imageID, ok2 := parseUintParam(c.Ctx, "imageId")
	if !ok || !ok2 {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if err := c.service().DeleteDeviceImage(c.Ctx.Request.Context(), id, imageID); err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
