package pgsql

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	"github.com/dashfinanceiro/dashfin_app/internal/models"
	"github.com/dashfinanceiro/dashfin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPendingRepository struct {
	BaseRepository
}

// newPgxPendingRepository creates a new repository for the staged batch.
// It also implements the commit bridge, since moving a batch from the
// pending slot to the ledger slot has to happen in one transaction.
func newPgxPendingRepository(pool *pgxpool.Pool) *PgxPendingRepository {
	return &PgxPendingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interfaces
var (
	_ portsrepo.PendingBatchRepository  = (*PgxPendingRepository)(nil)
	_ portsrepo.StagingCommitRepository = (*PgxPendingRepository)(nil)
)

// LoadPending returns the staged batch, empty when nothing is staged.
func (r *PgxPendingRepository) LoadPending(ctx context.Context) ([]domain.Transaction, error) {
	var stored []models.Transaction
	if err := readSlot(ctx, r.Pool, slotPending, &stored); err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactions(stored), nil
}

// SavePending replaces the staged batch wholesale.
func (r *PgxPendingRepository) SavePending(ctx context.Context, txns []domain.Transaction) error {
	stored := mapping.ToModelTransactions(txns)
	return writeSlot(ctx, r.Pool, slotPending, stored)
}

// ClearPending empties the pending slot without touching the ledger.
func (r *PgxPendingRepository) ClearPending(ctx context.Context) error {
	return writeSlot(ctx, r.Pool, slotPending, []models.Transaction{})
}

// CommitPending appends txns to the ledger slot and clears the pending slot
// in a single transaction. Either both slots change or neither does.
func (r *PgxPendingRepository) CommitPending(ctx context.Context, txns []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var ledger []models.Transaction
	if err := readSlotForUpdate(ctx, tx, slotTransactions, &ledger); err != nil {
		return err
	}
	ledger = append(ledger, mapping.ToModelTransactions(txns)...)
	if err := writeSlot(ctx, tx, slotTransactions, ledger); err != nil {
		return err
	}
	if err := writeSlot(ctx, tx, slotPending, []models.Transaction{}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
