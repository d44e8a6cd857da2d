package repositories

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// InvestmentReader defines read operations on the investment ledger.
type InvestmentReader interface {
	// ListInvestments returns a defensive copy of the ledger in insertion
	// order.
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
}

// InvestmentWriter defines write operations on the investment ledger. The
// ledger is append-only: there is no update or delete path.
type InvestmentWriter interface {
	AddInvestment(ctx context.Context, inv domain.Investment) error
}

// InvestmentRepositoryFacade combines all investment-ledger operations.
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
