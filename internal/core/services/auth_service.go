package services

import (
	"context"
	"fmt"

	"github.com/spendwise/spendwise_backend/internal/apperrors"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/utils"
	"github.com/spendwise/spendwise_backend/pkg/config"
)

// tokenSubject is the fixed subject of issued tokens: the app has exactly
// one user.
const tokenSubject = "owner"

// authService implements the AuthSvc interface for the single-user PIN
// login.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the app PIN against the configured hash and issues a
// bearer token. With no hash configured login always fails.
func (s *authService) Login(ctx context.Context, pin string) (string, error) {
	if s.cfg.AppPINHash == "" {
		s.LogWarn(ctx, "Login attempted with no PIN hash configured")
		return "", apperrors.ErrUnauthorized
	}
	if !utils.CheckPINHash(pin, s.cfg.AppPINHash) {
		s.LogWarn(ctx, "Login failed: PIN mismatch")
		return "", apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(tokenSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded")
	return token, nil
}
