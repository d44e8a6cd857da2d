package dto

import (
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/dashfinanceiro/dashfin_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ProjectionYears are the horizons shown for every position.
var ProjectionYears = []int{1, 5, 10}

// CreateInvestmentRequest defines the data needed to record a new
// investment position.
type CreateInvestmentRequest struct {
	Owner      string          `json:"owner" binding:"required,owner"`
	Kind       string          `json:"kind" binding:"required"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       string          `json:"date" binding:"required,isodate"`
	AnnualRate decimal.Decimal `json:"annualRate"`
}

// ProjectionResponse is the compound-growth projection of a position after
// a whole number of years.
type ProjectionResponse struct {
	Years int             `json:"years"`
	Value decimal.Decimal `json:"value"`
	Gain  decimal.Decimal `json:"gain"`
}

// InvestmentResponse is the API shape of an investment, including its
// standard 1/5/10 year projections.
type InvestmentResponse struct {
	ID          string               `json:"id"`
	Owner       string               `json:"owner"`
	Kind        string               `json:"kind"`
	Title       string               `json:"title,omitempty"`
	Amount      decimal.Decimal      `json:"amount"`
	Date        string               `json:"date"`
	AnnualRate  decimal.Decimal      `json:"annualRate"`
	Projections []ProjectionResponse `json:"projections"`
}

// ToInvestmentResponse converts a domain investment to its API shape,
// computing the standard compound projections.
func ToInvestmentResponse(inv domain.Investment) InvestmentResponse {
	projections := make([]ProjectionResponse, 0, len(ProjectionYears))
	for _, years := range ProjectionYears {
		value := accounting.CompoundAmount(inv.Amount, inv.AnnualRate, years)
		projections = append(projections, ProjectionResponse{
			Years: years,
			Value: value,
			Gain:  value.Sub(inv.Amount),
		})
	}
	return InvestmentResponse{
		ID:          inv.InvestmentID,
		Owner:       string(inv.Owner),
		Kind:        inv.Kind,
		Title:       inv.Title,
		Amount:      inv.Amount,
		Date:        inv.Date,
		AnnualRate:  inv.AnnualRate,
		Projections: projections,
	}
}

// ListInvestmentsResponse carries the ledger plus per-owner totals.
type ListInvestmentsResponse struct {
	Investments   []InvestmentResponse             `json:"investments"`
	TotalByOwner  map[domain.Owner]decimal.Decimal `json:"totalByOwner"`
	TotalInvested decimal.Decimal                  `json:"totalInvested"`
}
