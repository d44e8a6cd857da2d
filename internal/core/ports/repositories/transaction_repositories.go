package repositories

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// TransactionReader defines read operations on the committed ledger.
type TransactionReader interface {
	// ListTransactions returns a defensive copy of the committed ledger in
	// insertion order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations on the committed ledger. Every
// call is all-or-nothing: a failed write leaves previously committed data
// untouched.
type TransactionWriter interface {
	// AppendTransactions adds records to the end of the ledger, preserving
	// their order.
	AppendTransactions(ctx context.Context, txns []domain.Transaction) error

	// UpdateTransaction merges patch into the record with the given ID and
	// returns the merged record. It returns (nil, nil) when the ID is
	// absent; the ledger is then untouched.
	UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error)

	// DeleteTransaction removes the record with the given ID; no-op when
	// absent.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all committed-ledger operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
