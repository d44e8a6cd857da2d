package repositories

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// PendingBatchRepository owns the single pending-batch slot: the one
// in-flight set of parsed transactions awaiting verification. There is at
// most one batch at a time; SavePending replaces it wholesale.
type PendingBatchRepository interface {
	// LoadPending returns a defensive copy of the staged batch, empty when
	// nothing is staged.
	LoadPending(ctx context.Context) ([]domain.Transaction, error)

	// SavePending replaces the staged batch with txns.
	SavePending(ctx context.Context, txns []domain.Transaction) error

	// ClearPending empties the slot without touching the committed ledger.
	ClearPending(ctx context.Context) error
}
