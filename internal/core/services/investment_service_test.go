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

// --- Mock InvestmentRepository ---
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) AddInvestment(ctx context.Context, inv domain.Investment) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

// --- Test Suite ---
type InvestmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvestmentRepository
	service  portssvc.InvestmentSvcFacade
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvestmentRepository)
	suite.service = services.NewInvestmentService(suite.mockRepo)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_Success() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{
		Owner:      "Daniela",
		Kind:       "CDB",
		Title:      "CDB 110% CDI",
		Amount:     decimal.NewFromInt(1000),
		Date:       "2024-03-01",
		AnnualRate: decimal.NewFromInt(12),
	}

	suite.mockRepo.On("AddInvestment", ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.InvestmentID != "" && inv.Owner == domain.OwnerDaniela && inv.Kind == "CDB"
	})).Return(nil).Once()

	created, err := suite.service.CreateInvestment(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.InvestmentID)
	suite.True(created.Amount.Equal(decimal.NewFromInt(1000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{
		Owner:  "Daniela",
		Kind:   "CDB",
		Amount: decimal.NewFromInt(-1),
		Date:   "2024-03-01",
	}

	_, err := suite.service.CreateInvestment(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddInvestment", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_UnknownOwner() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{
		Owner:  "Fulano",
		Kind:   "CDB",
		Amount: decimal.NewFromInt(100),
		Date:   "2024-03-01",
	}

	_, err := suite.service.CreateInvestment(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvestmentServiceTestSuite) TestListInvestments_ProjectionsAndTotals() {
	ctx := context.Background()
	investments := []domain.Investment{
		{
			InvestmentID: uuid.NewString(),
			Owner:        domain.OwnerDaniela,
			Kind:         "CDB",
			Amount:       decimal.NewFromInt(1000),
			Date:         "2024-01-01",
			AnnualRate:   decimal.NewFromInt(10),
		},
		{
			InvestmentID: uuid.NewString(),
			Owner:        domain.OwnerGiovani,
			Kind:         "Ações",
			Amount:       decimal.NewFromInt(500),
			Date:         "2024-02-01",
			AnnualRate:   decimal.Zero,
		},
	}
	suite.mockRepo.On("ListInvestments", ctx).Return(investments, nil).Once()

	resp, err := suite.service.ListInvestments(ctx)

	suite.Require().NoError(err)
	suite.Len(resp.Investments, 2)
	suite.True(resp.TotalInvested.Equal(decimal.NewFromInt(1500)))
	suite.True(resp.TotalByOwner[domain.OwnerDaniela].Equal(decimal.NewFromInt(1000)))
	suite.True(resp.TotalByOwner[domain.OwnerGiovani].Equal(decimal.NewFromInt(500)))

	first := resp.Investments[0]
	suite.Require().Len(first.Projections, 3)
	suite.Equal(1, first.Projections[0].Years)
	// 1000 at 10% a year: 1100 after one year
	suite.True(first.Projections[0].Value.Equal(decimal.RequireFromString("1100")),
		"got %s", first.Projections[0].Value)
	suite.True(first.Projections[0].Gain.Equal(decimal.RequireFromString("100")))
	// 1000 * 1.1^10 ~= 2593.74
	suite.Equal(10, first.Projections[2].Years)
	suite.True(first.Projections[2].Value.Round(2).Equal(decimal.RequireFromString("2593.74")),
		"got %s", first.Projections[2].Value)

	// Zero rate projects flat
	second := resp.Investments[1]
	suite.True(second.Projections[2].Value.Equal(decimal.NewFromInt(500)))
	suite.True(second.Projections[2].Gain.IsZero())
}

func (suite *InvestmentServiceTestSuite) TestListInvestments_EmptyLedgerHasBothOwnerTotals() {
	ctx := context.Background()
	suite.mockRepo.On("ListInvestments", ctx).Return([]domain.Investment{}, nil).Once()

	resp, err := suite.service.ListInvestments(ctx)

	suite.Require().NoError(err)
	suite.Empty(resp.Investments)
	suite.True(resp.TotalByOwner[domain.OwnerDaniela].IsZero())
	suite.True(resp.TotalByOwner[domain.OwnerGiovani].IsZero())
	suite.True(resp.TotalInvested.IsZero())
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
