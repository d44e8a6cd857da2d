package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dashfinanceiro/dashfin_app/internal/apperrors"
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// stagingService implements the verification workflow over the single
// pending-batch slot. State machine: Empty -> Staged -> Empty (commit or
// cancel); edits and removals stay within Staged.
type stagingService struct {
	BaseService
	pendingRepo portsrepo.PendingBatchRepository
	commitRepo  portsrepo.StagingCommitRepository
}

// NewStagingService creates the verification staging service.
func NewStagingService(pendingRepo portsrepo.PendingBatchRepository, commitRepo portsrepo.StagingCommitRepository) portssvc.StagingSvcFacade {
	return &stagingService{pendingRepo: pendingRepo, commitRepo: commitRepo}
}

var _ portssvc.StagingSvcFacade = (*stagingService)(nil)

func (s *stagingService) ListPending(ctx context.Context) ([]domain.Transaction, domain.RowErrors, domain.BatchSummary, error) {
	pending, err := s.pendingRepo.LoadPending(ctx)
	if err != nil {
		return nil, nil, domain.BatchSummary{}, fmt.Errorf("loading pending batch: %w", err)
	}
	return pending, validateBatch(pending), summarizeBatch(pending), nil
}

func (s *stagingService) EditPending(ctx context.Context, transactionID string, field domain.TransactionField, value string) (*domain.Transaction, error) {
	if !field.IsValid() {
		return nil, fmt.Errorf("unknown field %q: %w", field, apperrors.ErrValidation)
	}

	pending, err := s.pendingRepo.LoadPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pending batch: %w", err)
	}

	idx := -1
	for i := range pending {
		if pending[i].TransactionID == transactionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.ErrNotFound
	}

	pending[idx] = applyFieldEdit(pending[idx], field, value)

	if err := s.pendingRepo.SavePending(ctx, pending); err != nil {
		return nil, fmt.Errorf("saving edited batch: %w", err)
	}

	edited := pending[idx]
	return &edited, nil
}

func (s *stagingService) RemovePending(ctx context.Context, transactionID string) error {
	pending, err := s.pendingRepo.LoadPending(ctx)
	if err != nil {
		return fmt.Errorf("loading pending batch: %w", err)
	}

	remaining := make([]domain.Transaction, 0, len(pending))
	for _, txn := range pending {
		if txn.TransactionID != transactionID {
			remaining = append(remaining, txn)
		}
	}
	if len(remaining) == len(pending) {
		return apperrors.ErrNotFound
	}

	if err := s.pendingRepo.SavePending(ctx, remaining); err != nil {
		return fmt.Errorf("saving batch after removal: %w", err)
	}
	return nil
}

func (s *stagingService) CommitPending(ctx context.Context) (int, domain.RowErrors, error) {
	pending, err := s.pendingRepo.LoadPending(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("loading pending batch: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil, apperrors.ErrEmptyBatch
	}

	rowErrors := validateBatch(pending)
	if rowErrors.HasErrors() {
		// Blocked: ledger and pending batch both stay untouched.
		return 0, rowErrors, apperrors.ErrCommitBlocked
	}

	if err := s.commitRepo.CommitPending(ctx, pending); err != nil {
		return 0, nil, fmt.Errorf("committing batch: %w", err)
	}

	s.LogInfo(ctx, "Pending batch committed", slog.Int("transactions", len(pending)))
	return len(pending), nil, nil
}

func (s *stagingService) CancelPending(ctx context.Context) error {
	if err := s.pendingRepo.ClearPending(ctx); err != nil {
		return fmt.Errorf("clearing pending batch: %w", err)
	}
	s.LogInfo(ctx, "Pending batch cancelled")
	return nil
}

// validateBatch checks every row independently; one bad row never hides
// another row's errors.
func validateBatch(pending []domain.Transaction) domain.RowErrors {
	rowErrors := domain.RowErrors{}
	for _, txn := range pending {
		if errs := txn.ValidateForCommit(); errs != nil {
			rowErrors[txn.TransactionID] = errs
		}
	}
	return rowErrors
}

func summarizeBatch(pending []domain.Transaction) domain.BatchSummary {
	summary := domain.BatchSummary{
		Count:   len(pending),
		Inflow:  decimal.Zero,
		Outflow: decimal.Zero,
	}
	for _, txn := range pending {
		if !txn.Amount.Valid {
			continue
		}
		if txn.Amount.Decimal.IsPositive() {
			summary.Inflow = summary.Inflow.Add(txn.Amount.Decimal)
		} else {
			summary.Outflow = summary.Outflow.Add(txn.Amount.Decimal.Abs())
		}
	}
	if n := len(pending); n > 0 && pending[n-1].Balance.Valid {
		summary.FinalBalance = pending[n-1].Balance.Decimal
	} else {
		summary.FinalBalance = decimal.Zero
	}
	return summary
}

// applyFieldEdit writes one field. Numeric fields that fail to parse become
// the invalid sentinel so validation can flag them; they are never coerced
// to zero.
func applyFieldEdit(txn domain.Transaction, field domain.TransactionField, value string) domain.Transaction {
	switch field {
	case domain.FieldPostedDate:
		txn.PostedDate = strings.TrimSpace(value)
	case domain.FieldHistoric:
		txn.Historic = value
	case domain.FieldDescription:
		txn.Description = value
	case domain.FieldCategory:
		txn.Category = domain.Category(strings.TrimSpace(value))
	case domain.FieldAmount:
		txn.Amount = parseEditedNumber(value)
	case domain.FieldBalance:
		txn.Balance = parseEditedNumber(value)
	}
	return txn
}

func parseEditedNumber(value string) decimal.NullDecimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return domain.InvalidMoney()
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return domain.InvalidMoney()
	}
	return domain.Money(d)
}
