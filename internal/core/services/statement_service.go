package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dashfinanceiro/dashfin_app/internal/categorizer"
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/importer"
)

// statementService runs the upload pipeline: buffer the whole file,
// normalize, parse, categorize, stage.
type statementService struct {
	BaseService
	pendingRepo portsrepo.PendingBatchRepository
}

// NewStatementService creates the import pipeline service.
func NewStatementService(pendingRepo portsrepo.PendingBatchRepository) portssvc.StatementSvcFacade {
	return &statementService{pendingRepo: pendingRepo}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

func (s *statementService) ImportStatement(ctx context.Context, r io.Reader, owner domain.Owner) ([]domain.Transaction, error) {
	if !owner.IsValid() {
		return nil, fmt.Errorf("unknown owner %q", owner)
	}

	// The whole file is buffered before parsing begins; there is no
	// streaming parse.
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement file: %w", err)
	}

	cleaned := importer.NormalizeStatement(string(raw))
	transactions, err := importer.ParseStatement(cleaned, owner)
	if err != nil {
		// Atomic failure: nothing staged, previous pending batch untouched.
		return nil, err
	}

	transactions = categorizer.ApplyAll(transactions)

	// Staging replaces any prior pending batch wholesale, resolved or not.
	if err := s.pendingRepo.SavePending(ctx, transactions); err != nil {
		return nil, fmt.Errorf("staging imported transactions: %w", err)
	}

	s.LogInfo(ctx, "Statement imported and staged",
		slog.String("owner", string(owner)),
		slog.Int("transactions", len(transactions)))
	return transactions, nil
}
