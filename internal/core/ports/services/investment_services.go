package services

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
)

// InvestmentSvcFacade manages the append-only investment ledger and its
// compound-growth projections.
type InvestmentSvcFacade interface {
	// CreateInvestment validates and appends a new position.
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error)

	// ListInvestments returns the ledger with 1/5/10-year projections and
	// per-owner totals.
	ListInvestments(ctx context.Context) (*dto.ListInvestmentsResponse, error)
}
