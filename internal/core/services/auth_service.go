package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dashfinanceiro/dashfin_app/internal/apperrors"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
	"github.com/dashfinanceiro/dashfin_app/internal/platform/config"
	"github.com/dashfinanceiro/dashfin_app/internal/utils"
)

// householdSubject is the JWT subject for every issued token. The dashboard
// has a single shared access key rather than per-user accounts.
const householdSubject = "household"

type authService struct {
	BaseService
	accessKeyHash     string
	jwtSecret         string
	jwtExpiryDuration time.Duration
	jwtIssuer         string
}

// NewAuthService creates the access-key login service. The configured key is
// bcrypt-hashed once at startup so the plaintext never sits in memory longer
// than needed.
func NewAuthService(cfg *config.Config) (portssvc.AuthSvcFacade, error) {
	svc := &authService{
		jwtSecret:         cfg.JWTSecret,
		jwtExpiryDuration: cfg.JWTExpiryDuration,
		jwtIssuer:         cfg.JWTIssuer,
	}
	if cfg.DashboardAccessKey != "" {
		hash, err := utils.HashPassword(cfg.DashboardAccessKey)
		if err != nil {
			return nil, fmt.Errorf("hashing dashboard access key: %w", err)
		}
		svc.accessKeyHash = hash
	}
	return svc, nil
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.accessKeyHash == "" || !utils.CheckPasswordHash(req.AccessKey, s.accessKeyHash) {
		s.LogInfo(ctx, "login rejected")
		return nil, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.jwtExpiryDuration)
	token, err := utils.GenerateJWT(householdSubject, s.jwtSecret, s.jwtExpiryDuration, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign token")
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
