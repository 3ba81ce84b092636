package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/actor"
	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/error/response"
	"rttm-inventory-service/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken strips the "Bearer " prefix from the authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authenticate validates the bearer token and binds the acting user to the
// request context. Every audited write downstream reads the actor from
// there; the binding dies with the request, so it can never leak into
// another one.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Authorization header is required", nil)
			c.Abort()
			return
		}

		token, err := jwtService.ValidateToken(extractToken(authHeader))
		if err != nil || !token.Valid {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(float64)
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		if userID == 0 {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid token claims", nil)
			c.Abort()
			return
		}

		a := actor.Actor{
			ID:            uint(userID),
			Username:      username,
			Role:          role,
			Authenticated: true,
		}
		c.Request = c.Request.WithContext(actor.WithActor(c.Request.Context(), a))
		c.Set("actor", a)

		c.Next()
	}
}

// RequireAdmin allows only users with the admin role; must run after
// Authenticate
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := actor.Current(c.Request.Context())
		if !ok || a.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    code.ErrTokenInvalid,
				"message": "Insufficient permissions: requires admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
