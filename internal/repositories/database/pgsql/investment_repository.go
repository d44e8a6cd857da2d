package pgsql

import (
	"context"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	"github.com/dashfinanceiro/dashfin_app/internal/models"
	"github.com/dashfinanceiro/dashfin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for the investment ledger.
func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryFacade {
	return &PgxInvestmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

// ListInvestments returns the investment ledger in insertion order.
func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	var stored []models.Investment
	if err := readSlot(ctx, r.Pool, slotInvestments, &stored); err != nil {
		return nil, err
	}
	return mapping.ToDomainInvestments(stored), nil
}

// AddInvestment appends one entry. The ledger is append-only.
func (r *PgxInvestmentRepository) AddInvestment(ctx context.Context, inv domain.Investment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var stored []models.Investment
	if err := readSlotForUpdate(ctx, tx, slotInvestments, &stored); err != nil {
		return err
	}
	stored = append(stored, mapping.ToModelInvestment(inv))
	if err := writeSlot(ctx, tx, slotInvestments, stored); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
