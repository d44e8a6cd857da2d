package services

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
)

// TransactionReaderSvc defines read operations on the committed ledger.
type TransactionReaderSvc interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the table-view mutations of the committed
// ledger.
type TransactionWriterSvc interface {
	// UpdateTransaction merges the given fields into the matching record.
	// Returns apperrors.ErrNotFound when the ID is absent (the ledger is
	// untouched either way).
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes the matching record; no-op when absent.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines committed-ledger operations.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
