package pgsql

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	"github.com/dashfinanceiro/dashfin_app/internal/models"
	"github.com/dashfinanceiro/dashfin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the committed ledger.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactions returns the committed ledger in insertion order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var stored []models.Transaction
	if err := readSlot(ctx, r.Pool, slotTransactions, &stored); err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactions(stored), nil
}

// AppendTransactions adds records to the end of the ledger. The slot is
// rewritten whole inside one transaction so a failure changes nothing.
func (r *PgxTransactionRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var stored []models.Transaction
	if err := readSlotForUpdate(ctx, tx, slotTransactions, &stored); err != nil {
		return err
	}
	stored = append(stored, mapping.ToModelTransactions(txns)...)
	if err := writeSlot(ctx, tx, slotTransactions, stored); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction merges patch into the record with the given ID and
// returns the merged record, or (nil, nil) when the ID is absent.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var stored []models.Transaction
	if err := readSlotForUpdate(ctx, tx, slotTransactions, &stored); err != nil {
		return nil, err
	}

	for i, m := range stored {
		if m.TransactionID != transactionID {
			continue
		}
		merged := patch.ApplyTo(mapping.ToDomainTransaction(m))
		stored[i] = mapping.ToModelTransaction(merged)
		if err := writeSlot(ctx, tx, slotTransactions, stored); err != nil {
			return nil, err
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		return &merged, nil
	}

	return nil, nil
}

// DeleteTransaction removes the record with the given ID; no-op when absent.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var stored []models.Transaction
	if err := readSlotForUpdate(ctx, tx, slotTransactions, &stored); err != nil {
		return err
	}

	kept := stored[:0]
	for _, m := range stored {
		if m.TransactionID != transactionID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(stored) {
		return r.Commit(ctx, tx)
	}

	if err := writeSlot(ctx, tx, slotTransactions, kept); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
