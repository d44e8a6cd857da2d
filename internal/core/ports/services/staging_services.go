package services

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// StagingReaderSvc defines read operations on the pending batch.
type StagingReaderSvc interface {
	// ListPending returns the staged rows with their current per-row
	// validation errors and batch summary.
	ListPending(ctx context.Context) ([]domain.Transaction, domain.RowErrors, domain.BatchSummary, error)
}

// StagingWriterSvc defines the verification workflow mutations. None of
// them touch the committed ledger except CommitPending.
type StagingWriterSvc interface {
	// EditPending mutates one field of one staged row and returns the
	// updated row. A numeric value that fails to parse becomes the invalid
	// sentinel, never a silent zero.
	EditPending(ctx context.Context, transactionID string, field domain.TransactionField, value string) (*domain.Transaction, error)

	// RemovePending drops one row from the batch.
	RemovePending(ctx context.Context, transactionID string) error

	// CommitPending appends the whole batch to the committed ledger and
	// clears the slot, all-or-nothing. When any row fails validation it
	// returns the row errors together with apperrors.ErrCommitBlocked and
	// changes nothing.
	CommitPending(ctx context.Context) (int, domain.RowErrors, error)

	// CancelPending discards the batch without touching the ledger.
	CancelPending(ctx context.Context) error
}

// StagingSvcFacade combines the verification staging operations.
type StagingSvcFacade interface {
	StagingReaderSvc
	StagingWriterSvc
}
