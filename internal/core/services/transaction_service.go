package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dashfinanceiro/dashfin_app/internal/apperrors"
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
)

// transactionService serves the committed-ledger table views.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates the committed-ledger service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	patch := req.ToPatch()
	if patch.IsZero() {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	updated, err := s.txnRepo.UpdateTransaction(ctx, transactionID, patch)
	if err != nil {
		return nil, fmt.Errorf("updating transaction %s: %w", transactionID, err)
	}
	if updated == nil {
		// Unknown ID leaves the ledger untouched.
		return nil, apperrors.ErrNotFound
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("deleting transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
