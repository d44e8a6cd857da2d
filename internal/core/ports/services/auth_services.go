package services

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/dto"
)

// AuthSvcFacade guards the dashboard with a single shared household access
// key. There are no user accounts: a successful login yields a bearer token
// for the whole API.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
