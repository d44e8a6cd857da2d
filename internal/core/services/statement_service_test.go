package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/dashfinanceiro/dashfin_app/internal/core/services"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/importer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockPending *MockPendingRepository
	service     portssvc.StatementSvcFacade
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockPending = new(MockPendingRepository)
	suite.service = services.NewStatementService(suite.mockPending)
}

func (suite *StatementServiceTestSuite) TestImportStatement_StagesParsedBatch() {
	ctx := context.Background()
	statement := "Extrato Conta Corrente\n" +
		"Data Lancamento;Historico;Descricao;Valor;Saldo\n" +
		"15/03/2024;Pix;Ifood;-45,90;1.200,50\n"

	suite.mockPending.On("SavePending", ctx, mock.MatchedBy(func(batch []domain.Transaction) bool {
		return len(batch) == 1 &&
			batch[0].PostedDate == "2024-03-15" &&
			batch[0].Category == domain.CategoryFood &&
			batch[0].Amount.Decimal.Equal(decimal.RequireFromString("-45.90"))
	})).Return(nil).Once()

	staged, err := suite.service.ImportStatement(ctx, strings.NewReader(statement), domain.OwnerDaniela)

	suite.Require().NoError(err)
	suite.Len(staged, 1)
	suite.Equal(domain.OwnerDaniela, staged[0].Owner)
	suite.mockPending.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestImportStatement_ParseFailureStagesNothing() {
	ctx := context.Background()
	statement := "Data Lancamento;Historico;Descricao;Valor\n" +
		"15/03/2024;Pix;Ifood;-45,90\n"

	_, err := suite.service.ImportStatement(ctx, strings.NewReader(statement), domain.OwnerDaniela)

	var columnsErr *importer.MissingColumnsError
	suite.Require().ErrorAs(err, &columnsErr)
	// Atomic failure: the previous pending batch is never replaced
	suite.mockPending.AssertNotCalled(suite.T(), "SavePending", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestImportStatement_EmptyFile() {
	ctx := context.Background()

	_, err := suite.service.ImportStatement(ctx, strings.NewReader(""), domain.OwnerGiovani)

	var emptyErr *importer.EmptyInputError
	suite.Require().ErrorAs(err, &emptyErr)
	suite.mockPending.AssertNotCalled(suite.T(), "SavePending", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestImportStatement_UnknownOwner() {
	ctx := context.Background()

	_, err := suite.service.ImportStatement(ctx, strings.NewReader("x"), domain.Owner("Alguem"))

	suite.Require().Error(err)
	suite.mockPending.AssertNotCalled(suite.T(), "SavePending", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestImportStatement_ReplacesPriorBatchWholesale() {
	ctx := context.Background()
	statement := "Data Lancamento;Historico;Descricao;Valor;Saldo\n" +
		"01/04/2024;TED;Mercado;-100,00;900,00\n" +
		"02/04/2024;Pix;Padaria;-10,00;890,00\n"

	// SavePending receives the new batch regardless of whatever was staged
	suite.mockPending.On("SavePending", ctx, mock.MatchedBy(func(batch []domain.Transaction) bool {
		return len(batch) == 2
	})).Return(nil).Once()

	staged, err := suite.service.ImportStatement(ctx, strings.NewReader(statement), domain.OwnerGiovani)

	suite.Require().NoError(err)
	suite.Len(staged, 2)
	suite.mockPending.AssertExpectations(suite.T())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
