package services

import (
	"context"
	"errors"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
	"github.com/dip-mandal/hod-website/internal/app/repositories"
	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
	"github.com/dip-mandal/hod-website/internal/pkg/auth"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
)

// AuthService handles admin authentication.
type AuthService struct {
	adminUserRepo *repositories.AdminUserRepository
	jwtService    *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminUserRepo *repositories.AdminUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminUserRepo: adminUserRepo,
		jwtService:    jwtService,
	}
}

// Login verifies credentials and issues a bearer token. Both a missing account
// and a wrong password come back as ErrInvalidCredentials so the response does
// not leak which admin emails exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.adminUserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn().Str("email", req.Email).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("email", user.Email).Msg("Admin logged in")
	return &dto.LoginResponse{Token: token, ExpiresIn: expiresIn}, nil
}

// GetCurrentUser resolves the authenticated admin from the token subject.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := s.adminUserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{ID: user.ID, Email: user.Email, FullName: user.FullName}, nil
}
