package services_test

import (
	"context"
	"testing"

	"github.com/dashfinanceiro/dashfin_app/internal/apperrors"
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/dashfinanceiro/dashfin_app/internal/core/services"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyLedgerIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(nil, nil).Once()

	txns, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_MergesPatch() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	newCategory := string(domain.CategoryLeisure)
	req := dto.UpdateTransactionRequest{Category: &newCategory}

	merged := validStagedTxn()
	merged.TransactionID = transactionID
	merged.Category = domain.CategoryLeisure

	suite.mockRepo.On("UpdateTransaction", ctx, transactionID, mock.MatchedBy(func(patch domain.TransactionPatch) bool {
		return patch.Category != nil && *patch.Category == domain.CategoryLeisure && patch.Amount == nil
	})).Return(&merged, nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, transactionID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryLeisure, updated.Category)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_EmptyPatch() {
	ctx := context.Background()

	_, err := suite.service.UpdateTransaction(ctx, uuid.NewString(), dto.UpdateTransactionRequest{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_UnknownID() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	amount := decimal.NewFromInt(10)
	req := dto.UpdateTransactionRequest{Amount: &amount}

	suite.mockRepo.On("UpdateTransaction", ctx, transactionID, mock.Anything).Return(nil, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, transactionID, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_AbsentIDIsNoop() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	suite.mockRepo.On("DeleteTransaction", ctx, transactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
