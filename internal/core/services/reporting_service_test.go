package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func ledgerTxn(date string, description string, amount string, owner domain.Owner, category domain.Category) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		PostedDate:    date,
		Historic:      "Pix",
		Description:   description,
		Amount:        domain.Money(decimal.RequireFromString(amount)),
		Balance:       domain.Money(decimal.Zero),
		Owner:         owner,
		Category:      category,
	}
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) stubLedger(txns []domain.Transaction) {
	suite.mockRepo.On("ListTransactions", context.Background()).Return(txns, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	suite.stubLedger([]domain.Transaction{
		ledgerTxn("2024-03-10", "Ifood", "-50", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-03-11", "Uber", "-20", domain.OwnerGiovani, domain.CategoryTransport),
		ledgerTxn("2024-03-12", "Salario", "5000", domain.OwnerDaniela, domain.CategoryOther),
	})

	summary, err := suite.service.Summary(context.Background())

	suite.Require().NoError(err)
	suite.Equal(3, summary.TransactionCount)
	// Income never counts as spend
	suite.True(summary.SpendByOwner[domain.OwnerDaniela].Equal(decimal.NewFromInt(50)))
	suite.True(summary.SpendByOwner[domain.OwnerGiovani].Equal(decimal.NewFromInt(20)))
	suite.Require().NotNil(summary.TopCategory)
	suite.Equal(domain.CategoryFood, summary.TopCategory.Category)
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptyLedger() {
	suite.stubLedger([]domain.Transaction{})

	summary, err := suite.service.Summary(context.Background())

	suite.Require().NoError(err)
	suite.Equal(0, summary.TransactionCount)
	suite.Nil(summary.TopCategory)
	suite.True(summary.SpendByOwner[domain.OwnerDaniela].IsZero())
}

func (suite *ReportingServiceTestSuite) TestSpendingByCategory_DescendingAbsoluteTotals() {
	suite.stubLedger([]domain.Transaction{
		ledgerTxn("2024-03-10", "Ifood", "-50", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-03-11", "Mercado", "-70", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-03-12", "Uber", "-30", domain.OwnerGiovani, domain.CategoryTransport),
	})

	spend, err := suite.service.SpendingByCategory(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(spend, 2)
	suite.Equal(domain.CategoryFood, spend[0].Category)
	suite.True(spend[0].Total.Equal(decimal.NewFromInt(120)))
	suite.Equal(domain.CategoryTransport, spend[1].Category)
	suite.True(spend[1].Total.Equal(decimal.NewFromInt(30)))
}

func (suite *ReportingServiceTestSuite) TestSpendingByCategory_UncategorizedFallsToOther() {
	txn := ledgerTxn("2024-03-10", "misc", "-10", domain.OwnerDaniela, "")
	suite.stubLedger([]domain.Transaction{txn})

	spend, err := suite.service.SpendingByCategory(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(spend, 1)
	suite.Equal(domain.CategoryOther, spend[0].Category)
}

func (suite *ReportingServiceTestSuite) TestTopMerchants_RanksAndLimits() {
	suite.stubLedger([]domain.Transaction{
		ledgerTxn("2024-03-10", "Ifood", "-50", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-03-11", "Ifood", "-30", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-03-12", "Uber", "-60", domain.OwnerGiovani, domain.CategoryTransport),
		ledgerTxn("2024-03-13", "Padaria", "-5", domain.OwnerDaniela, domain.CategoryFood),
	})

	merchants, err := suite.service.TopMerchants(context.Background(), 2)

	suite.Require().NoError(err)
	suite.Require().Len(merchants, 2)
	suite.Equal("Ifood", merchants[0].Description)
	suite.Equal(2, merchants[0].Count)
	suite.True(merchants[0].Total.Equal(decimal.NewFromInt(80)))
	suite.Equal("Uber", merchants[1].Description)
}

func (suite *ReportingServiceTestSuite) TestOwnerComparison_AlwaysBothOwners() {
	suite.stubLedger([]domain.Transaction{
		ledgerTxn("2024-03-10", "Ifood", "-50", domain.OwnerDaniela, domain.CategoryFood),
	})

	owners, err := suite.service.OwnerComparison(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(owners, 2)
	suite.Equal(domain.OwnerDaniela, owners[0].Owner)
	suite.True(owners[0].Total.Equal(decimal.NewFromInt(50)))
	suite.Equal(domain.OwnerGiovani, owners[1].Owner)
	suite.True(owners[1].Total.IsZero())
}

func (suite *ReportingServiceTestSuite) TestMonthlyEvolution_MonthsAscending() {
	suite.stubLedger([]domain.Transaction{
		ledgerTxn("2024-03-10", "Ifood", "-50", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-01-05", "Uber", "-20", domain.OwnerGiovani, domain.CategoryTransport),
		ledgerTxn("2024-01-20", "Mercado", "-30", domain.OwnerDaniela, domain.CategoryFood),
		// Unparseable dates are skipped by time-based reports
		ledgerTxn("invalid", "x", "-99", domain.OwnerDaniela, domain.CategoryOther),
	})

	months, err := suite.service.MonthlyEvolution(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(months, 2)
	suite.Equal("2024-01", months[0].Month)
	suite.True(months[0].Totals[domain.OwnerDaniela].Equal(decimal.NewFromInt(30)))
	suite.True(months[0].Totals[domain.OwnerGiovani].Equal(decimal.NewFromInt(20)))
	suite.Equal("2024-03", months[1].Month)
}

func (suite *ReportingServiceTestSuite) TestCategoryDeltas() {
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	suite.stubLedger([]domain.Transaction{
		ledgerTxn("2024-03-10", "Ifood", "-100", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-02-10", "Ifood", "-50", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2023-09-10", "Mercado", "-200", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2024-03-15", "Cinema", "-40", domain.OwnerGiovani, domain.CategoryLeisure),
	})

	deltas, err := suite.service.CategoryDeltas(context.Background(), now)

	suite.Require().NoError(err)
	suite.Require().Len(deltas, 2)

	food := deltas[0]
	suite.Equal(domain.CategoryFood, food.Category)
	suite.True(food.Current.Equal(decimal.NewFromInt(100)))
	suite.True(food.Previous.Equal(decimal.NewFromInt(50)))
	suite.True(food.SixMonthsAgo.Equal(decimal.NewFromInt(200)))
	// 100 vs 50: +100%
	suite.True(food.DeltaPrevPct.Equal(decimal.NewFromInt(100)))
	// 100 vs 200: -50%
	suite.True(food.DeltaSixMonPct.Equal(decimal.NewFromInt(-50)))
	suite.Equal(domain.TrendUp, food.TrendPrevious)
	suite.Equal(domain.TrendDown, food.TrendSixMonths)
	suite.False(food.FirstOccurrence)

	leisure := deltas[1]
	suite.Equal(domain.CategoryLeisure, leisure.Category)
	suite.True(leisure.FirstOccurrence)
	// New category with no reference spending reads as +100%
	suite.True(leisure.DeltaPrevPct.Equal(decimal.NewFromInt(100)))
	suite.Equal(domain.TrendUp, leisure.TrendPrevious)
}

func (suite *ReportingServiceTestSuite) TestCategoryDeltas_JanuaryLooksBackAcrossYears() {
	now := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	suite.stubLedger([]domain.Transaction{
		ledgerTxn("2024-01-10", "Ifood", "-60", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2023-12-10", "Ifood", "-30", domain.OwnerDaniela, domain.CategoryFood),
		ledgerTxn("2023-07-10", "Ifood", "-10", domain.OwnerDaniela, domain.CategoryFood),
	})

	deltas, err := suite.service.CategoryDeltas(context.Background(), now)

	suite.Require().NoError(err)
	suite.Require().Len(deltas, 1)
	suite.True(deltas[0].Previous.Equal(decimal.NewFromInt(30)))
	suite.True(deltas[0].SixMonthsAgo.Equal(decimal.NewFromInt(10)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
