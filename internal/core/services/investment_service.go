package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dashfinanceiro/dashfin_app/internal/apperrors"
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// investmentService manages the append-only investment ledger.
type investmentService struct {
	BaseService
	invRepo portsrepo.InvestmentRepositoryFacade
}

// NewInvestmentService creates the investment ledger service.
func NewInvestmentService(invRepo portsrepo.InvestmentRepositoryFacade) portssvc.InvestmentSvcFacade {
	return &investmentService{invRepo: invRepo}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}
	owner, ok := domain.ParseOwner(req.Owner)
	if !ok {
		return nil, fmt.Errorf("unknown owner %q: %w", req.Owner, apperrors.ErrValidation)
	}

	investment := domain.Investment{
		InvestmentID: uuid.NewString(),
		Owner:        owner,
		Kind:         req.Kind,
		Title:        req.Title,
		Amount:       req.Amount,
		Date:         req.Date,
		AnnualRate:   req.AnnualRate,
	}

	if err := s.invRepo.AddInvestment(ctx, investment); err != nil {
		return nil, fmt.Errorf("adding investment: %w", err)
	}

	s.LogInfo(ctx, "Investment recorded",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("owner", string(owner)),
		slog.String("kind", investment.Kind))
	return &investment, nil
}

func (s *investmentService) ListInvestments(ctx context.Context) (*dto.ListInvestmentsResponse, error) {
	investments, err := s.invRepo.ListInvestments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}

	res := &dto.ListInvestmentsResponse{
		Investments:   make([]dto.InvestmentResponse, 0, len(investments)),
		TotalByOwner:  make(map[domain.Owner]decimal.Decimal, len(domain.Owners)),
		TotalInvested: decimal.Zero,
	}
	for _, owner := range domain.Owners {
		res.TotalByOwner[owner] = decimal.Zero
	}

	for _, inv := range investments {
		res.Investments = append(res.Investments, dto.ToInvestmentResponse(inv))
		res.TotalByOwner[inv.Owner] = res.TotalByOwner[inv.Owner].Add(inv.Amount)
		res.TotalInvested = res.TotalInvested.Add(inv.Amount)
	}
	return res, nil
}
