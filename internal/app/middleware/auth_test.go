package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/actor"
	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/domain/services"
	"rttm-inventory-service/internal/infrastructure/config"
)

func issueToken(t *testing.T, cfg *config.Config, id uint, username, role string) string {
	t.Helper()
	u := &models.User{Username: username, Role: role}
	u.ID = id
	token, err := services.NewJWTService(cfg, nil).GenerateToken(u)
	require.NoError(t, err)
	return token
}

func TestAuthenticateBindsActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	InitAuthMiddleware(cfg, nil)

	var seen actor.Actor
	var seenOK bool

	r := gin.New()
	r.GET("/probe", Authenticate(), func(c *gin.Context) {
		seen, seenOK = actor.Current(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, cfg, 7, "alice", models.RoleStaff))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, seenOK, "handler must see the actor in the request context")
	assert.EqualValues(t, 7, seen.ID)
	assert.Equal(t, "alice", seen.Username)
	assert.True(t, seen.Authenticated)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	InitAuthMiddleware(cfg, nil)

	r := gin.New()
	r.GET("/probe", Authenticate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// No header at all
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token signed with another secret
	otherCfg := &config.Config{JWTSecretKey: "other-secret"}
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, otherCfg, 7, "alice", models.RoleStaff))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	InitAuthMiddleware(cfg, nil)

	r := gin.New()
	r.DELETE("/guarded", Authenticate(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, cfg, 1, "root", models.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, cfg, 2, "plain", models.RoleStaff))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
