package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/pkg/logger"
	"rttm-inventory-service/utils"
)

// hemisTokenResponse is the OAuth token endpoint answer
type hemisTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// hemisUser is the subset of the Hemis profile we keep
type hemisUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InterfaceAuthService defines login and account provisioning
type InterfaceAuthService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	HemisCallback(ctx context.Context, oauthCode string) (string, *models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	EnsureAdminExists(ctx context.Context) error
}

// AuthService handles local password login and the Hemis OAuth callback
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
	client *resty.Client
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
		client: resty.New(),
	}
}

// 1. Login checks the password and issues a token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.New(code.ErrUserPasswordIncorrect)
		}
		return "", nil, err
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, apperr.New(code.ErrUserPasswordIncorrect)
	}

	token, err := s.JWT.GenerateToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// 2. HemisCallback exchanges the OAuth code for an access token, fetches the
// profile and provisions (or finds) the local account
func (s *AuthService) HemisCallback(ctx context.Context, oauthCode string) (string, *models.User, error) {
	var tokenResp hemisTokenResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          oauthCode,
			"redirect_uri":  s.Config.HemisRedirectURI,
			"client_id":     s.Config.HemisClientID,
			"client_secret": s.Config.HemisClientSecret,
		}).
		SetResult(&tokenResp).
		Post(s.Config.HemisTokenURL)
	if err != nil {
		return "", nil, apperr.Wrap(code.ErrOAuthExchange, err)
	}
	if resp.IsError() || tokenResp.AccessToken == "" {
		logger.Warning("hemis token exchange failed: status=%d", resp.StatusCode())
		return "", nil, apperr.New(code.ErrOAuthExchange)
	}

	var profile hemisUser
	resp, err = s.client.R().
		SetContext(ctx).
		SetAuthToken(tokenResp.AccessToken).
		SetResult(&profile).
		Get(s.Config.HemisUserURL)
	if err != nil {
		return "", nil, apperr.Wrap(code.ErrOAuthExchange, err)
	}
	if resp.IsError() || profile.ID == 0 {
		logger.Warning("hemis user fetch failed: status=%d", resp.StatusCode())
		return "", nil, apperr.New(code.ErrOAuthExchange)
	}

	user, err := s.findOrCreateHemisUser(ctx, &profile)
	if err != nil {
		return "", nil, err
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// findOrCreateHemisUser looks the account up by hemis id, provisioning a
// staff account with an unusable random password on first login
func (s *AuthService) findOrCreateHemisUser(ctx context.Context, profile *hemisUser) (*models.User, error) {
	hemisID := fmt.Sprintf("%d", profile.ID)

	var user models.User
	err := s.DB.WithContext(ctx).Where("hemis_id = ?", hemisID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(utils.RandomToken(24))
	if err != nil {
		return nil, err
	}

	username := profile.Login
	if username == "" {
		username = "hemis_" + hemisID
	}

	user = models.User{
		Username:     username,
		FullName:     profile.Name,
		Email:        profile.Email,
		HemisID:      &hemisID,
		Role:         models.RoleStaff,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	logger.Info("provisioned user %s from hemis id %s", user.Username, hemisID)
	return &user, nil
}

// 3. GetUserByID returns one user
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// 4. EnsureAdminExists seeds the default admin account on first boot
func (s *AuthService) EnsureAdminExists(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(s.Config.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("seeded default admin account")
	return nil
}
