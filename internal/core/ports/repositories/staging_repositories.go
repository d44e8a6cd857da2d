package repositories

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// StagingCommitRepository moves a verified batch into the committed ledger.
// The operation spans two slots (append to the transaction ledger, clear
// the pending batch) and must be atomic: either both happen or neither.
type StagingCommitRepository interface {
	CommitPending(ctx context.Context, txns []domain.Transaction) error
}
