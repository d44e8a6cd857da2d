package pgsql

import (
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryContainer(dbPool *pgxpool.Pool) portsrepo.RepositoryContainer {
	pendingRepo := newPgxPendingRepository(dbPool)

	return portsrepo.RepositoryContainer{
		Transaction: newPgxTransactionRepository(dbPool),
		Investment:  newPgxInvestmentRepository(dbPool),
		Pending:     pendingRepo,
		Staging:     pendingRepo,
	}
}
