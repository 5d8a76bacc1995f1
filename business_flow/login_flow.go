// Package businessflow contains the core business logic and use cases for authentication workflows
package businessflow

import (
	"context"
	"strings"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/app/services"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"golang.org/x/crypto/bcrypt"
)

// LoginFlow handles staff authentication
type LoginFlow interface {
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, request *dto.RefreshRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
}

// LoginFlowImpl implements the login business flow
type LoginFlowImpl struct {
	userRepo     repository.UserRepository
	tokenService services.TokenService
}

// NewLoginFlow creates a new login flow instance
func NewLoginFlow(userRepo repository.UserRepository, tokenService services.TokenService) LoginFlow {
	return &LoginFlowImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login authenticates a staff account with username/email and password
func (lf *LoginFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	if request == nil {
		return nil, NewValidationError("request is required", nil)
	}

	identifier := strings.TrimSpace(request.Identifier)
	if identifier == "" || request.Password == "" {
		return nil, NewUnauthorizedError("login failed", ErrIncorrectPassword)
	}

	user, err := lf.userRepo.ByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewUnauthorizedError("login failed", ErrUserNotFound)
	}

	if !utils.IsTrue(user.IsActive) {
		return nil, NewUnauthorizedError("login failed", ErrAccountInactive)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)); err != nil {
		return nil, NewUnauthorizedError("login failed", ErrIncorrectPassword)
	}

	accessToken, refreshToken, err := lf.tokenService.GenerateTokens(user.ID, utils.IsTrue(user.IsAdmin))
	if err != nil {
		return nil, err
	}

	return lf.tokenResponse("Login successful", accessToken, refreshToken, user), nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (lf *LoginFlowImpl) Refresh(ctx context.Context, request *dto.RefreshRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	if request == nil || request.RefreshToken == "" {
		return nil, NewUnauthorizedError("refresh failed", ErrIncorrectPassword)
	}

	claims, err := lf.tokenService.ValidateToken(request.RefreshToken)
	if err != nil {
		return nil, NewUnauthorizedError("refresh failed", err)
	}
	if claims.TokenType != "refresh" {
		return nil, NewUnauthorizedError("refresh failed", services.ErrTokenInvalid)
	}

	user, err := lf.userRepo.ByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewUnauthorizedError("refresh failed", ErrUserNotFound)
	}
	if !utils.IsTrue(user.IsActive) {
		return nil, NewUnauthorizedError("refresh failed", ErrAccountInactive)
	}

	accessToken, refreshToken, err := lf.tokenService.RefreshToken(request.RefreshToken)
	if err != nil {
		return nil, NewUnauthorizedError("refresh failed", err)
	}

	return lf.tokenResponse("Token refreshed", accessToken, refreshToken, user), nil
}

func (lf *LoginFlowImpl) tokenResponse(message, accessToken, refreshToken string, user *models.User) *dto.LoginResponse {
	return &dto.LoginResponse{
		Message:      message,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(utils.AccessTokenTTL.Seconds()),
		User: dto.StaffUserDTO{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			IsAdmin:  utils.IsTrue(user.IsAdmin),
		},
	}
}
