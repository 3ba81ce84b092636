package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/utils"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminPassword: "admin123",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := authTestConfig()
	svc := NewJWTService(cfg, newTestDB(t))

	user := &models.User{Username: "alice", Role: models.RoleAdmin}
	user.ID = 7

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 7, claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, models.RoleAdmin, claims["role"])

	// A token signed with another secret must not validate
	otherCfg := &config.Config{JWTSecretKey: "other-secret"}
	other := NewJWTService(otherCfg, nil)
	forged, err := other.GenerateToken(user)
	require.NoError(t, err)
	_, err = svc.ValidateToken(forged)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	cfg := authTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg, db))

	hash, err := utils.HashPassword("sw0rdfish")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username:     "bob",
		PasswordHash: hash,
		Role:         models.RoleStaff,
		IsActive:     true,
	}).Error)

	token, user, err := svc.Login(context.Background(), "bob", "sw0rdfish")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "bob", user.Username)

	// Wrong password and unknown user answer identically
	_, _, err = svc.Login(context.Background(), "bob", "wrong")
	assert.Equal(t, code.ErrUserPasswordIncorrect, apperr.CodeOf(err))
	_, _, err = svc.Login(context.Background(), "nobody", "whatever")
	assert.Equal(t, code.ErrUserPasswordIncorrect, apperr.CodeOf(err))

	// Deactivated accounts cannot log in
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "bob").Update("is_active", false).Error)
	_, _, err = svc.Login(context.Background(), "bob", "sw0rdfish")
	assert.Equal(t, code.ErrUserPasswordIncorrect, apperr.CodeOf(err))
}

func TestEnsureAdminExists(t *testing.T) {
	db := newTestDB(t)
	cfg := authTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg, db))

	require.NoError(t, svc.EnsureAdminExists(context.Background()))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("admin123", admin.PasswordHash))

	// Idempotent: the seed does not duplicate
	require.NoError(t, svc.EnsureAdminExists(context.Background()))
	var n int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	// An admin logs in with the seeded password
	_, user, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}
