package services

import (
	"context"
	"time"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// ReportingService aggregates the committed ledger for the charts view.
// Expenses are transactions with a negative amount; totals are absolute
// values, ordered descending.
type ReportingService interface {
	// Summary returns the headline statistics block.
	Summary(ctx context.Context) (*domain.LedgerSummary, error)

	// SpendingByCategory totals expenses per category.
	SpendingByCategory(ctx context.Context) ([]domain.CategorySpend, error)

	// TopMerchants returns the limit highest-spend descriptions.
	TopMerchants(ctx context.Context, limit int) ([]domain.MerchantSpend, error)

	// OwnerComparison totals expenses per account holder.
	OwnerComparison(ctx context.Context) ([]domain.OwnerSpend, error)

	// MonthlyEvolution totals expenses per calendar month per owner,
	// months ascending.
	MonthlyEvolution(ctx context.Context) ([]domain.MonthlySpend, error)

	// CategoryDeltas compares the calendar month containing now against
	// the previous month and against six months ago, per category.
	CategoryDeltas(ctx context.Context, now time.Time) ([]domain.CategoryDelta, error)
}
