package controllers

import (
	"github.com/gin-gonic/gin"

	"rttm-inventory-service/internal/domain/actor"
	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/domain/services/container"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/error/response"
)

// AuthController handles login and OAuth requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{Ctx: ctx, Container: container}
}

// LoginRequest is the password login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// HandleAuthFunc returns a gin handler for the given auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "hemisCallback":
			controller.HemisCallback()
		case "me":
			controller.Me()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "unknown method", nil)
		}
	}
}

// Login authenticates with username and password
// @Summary Password login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, err.Error(), nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	token, user, err := authService.Login(c.Ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// HemisCallback finishes the Hemis OAuth flow
// @Summary Hemis OAuth callback
// @Tags Auth
// @Produce json
// @Param code query string true "authorization code"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/callback/hemis [get]
func (c *AuthController) HemisCallback() {
	oauthCode := c.Ctx.Query("code")
	if oauthCode == "" {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "missing code", nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	token, user, err := authService.HemisCallback(c.Ctx.Request.Context(), oauthCode)
	if err != nil {
		response.FailWithMessage(c.Ctx, apperr.CodeOf(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /auth/me [get]
func (c *AuthController) Me() {
	a, ok := actor.Current(c.Ctx.Request.Context())
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	user, err := authService.GetUserByID(c.Ctx.Request.Context(), a.ID)
	if err != nil {
		response.Fail(c.Ctx, apperr.CodeOf(err), nil)
		return
	}

	response.Success(c.Ctx, user)
}
