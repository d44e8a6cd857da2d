package importer

import (
	"testing"
	"time"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = "Data Lancamento;Historico;Descricao;Valor;Saldo\n" +
	"15/03/2024;Pix;Ifood;-45,90;1.200,50\n" +
	"16/03/2024;TED;Salario;5.000,00;6.200,50\n"

func TestParseStatement_SemicolonStatement(t *testing.T) {
	txns, err := ParseStatement(sampleStatement, domain.OwnerDaniela)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	first := txns[0]
	assert.NotEmpty(t, first.TransactionID)
	assert.Equal(t, "2024-03-15", first.PostedDate)
	assert.Equal(t, "Pix", first.Historic)
	assert.Equal(t, "Ifood", first.Description)
	require.True(t, first.Amount.Valid)
	assert.True(t, first.Amount.Decimal.Equal(decimal.RequireFromString("-45.90")))
	require.True(t, first.Balance.Valid)
	assert.True(t, first.Balance.Decimal.Equal(decimal.RequireFromString("1200.50")))
	assert.Equal(t, domain.OwnerDaniela, first.Owner)
	assert.Empty(t, first.Category)

	second := txns[1]
	assert.True(t, second.Amount.Decimal.Equal(decimal.RequireFromString("5000.00")))

	// Every row carries a distinct ID
	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}

func TestParseStatement_CommaDelimiter(t *testing.T) {
	statement := "data lancamento,historico,descricao,valor,saldo\n" +
		"01/01/2024,Pix,Mercado,-10,100\n"

	txns, err := ParseStatement(statement, domain.OwnerGiovani)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.Decimal.Equal(decimal.NewFromInt(-10)))
	assert.True(t, txns[0].Balance.Decimal.Equal(decimal.NewFromInt(100)))
}

func TestParseStatement_MissingColumn(t *testing.T) {
	statement := "Data Lancamento;Historico;Descricao;Valor\n" +
		"15/03/2024;Pix;Ifood;-45,90\n"

	txns, err := ParseStatement(statement, domain.OwnerDaniela)
	assert.Nil(t, txns)

	var columnsErr *MissingColumnsError
	require.ErrorAs(t, err, &columnsErr)
	assert.Equal(t, []string{"saldo"}, columnsErr.Missing)
	assert.Contains(t, columnsErr.Found, "Valor")
}

func TestParseStatement_EmptyInput(t *testing.T) {
	var emptyErr *EmptyInputError

	_, err := ParseStatement("", domain.OwnerDaniela)
	require.ErrorAs(t, err, &emptyErr)

	_, err = ParseStatement("   \n  \n", domain.OwnerDaniela)
	require.ErrorAs(t, err, &emptyErr)
}

func TestParseStatement_HeaderOnlyIsEmpty(t *testing.T) {
	statement := "Data Lancamento;Historico;Descricao;Valor;Saldo\n"
	_, err := ParseStatement(statement, domain.OwnerDaniela)

	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
}

func TestParseStatement_SkipsBlankRows(t *testing.T) {
	statement := "Data Lancamento;Historico;Descricao;Valor;Saldo\n" +
		";;;;\n" +
		"15/03/2024;Pix;Ifood;-45,90;1.200,50\n" +
		"   ;  ;;;\n"

	txns, err := ParseStatement(statement, domain.OwnerDaniela)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestParseStatement_ShortRowYieldsEmptyFields(t *testing.T) {
	statement := "Data Lancamento;Historico;Descricao;Valor;Saldo\n" +
		"15/03/2024;Pix\n"

	txns, err := ParseStatement(statement, domain.OwnerDaniela)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Empty(t, txns[0].Description)
	// Missing numeric cells parse as zero, not as invalid
	assert.True(t, txns[0].Amount.Valid)
	assert.True(t, txns[0].Amount.Decimal.IsZero())
}

func TestParseBrazilianNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1.234,56", want: "1234.56"},
		{in: "-45,90", want: "-45.90"},
		{in: "5.000,00", want: "5000.00"},
		{in: "R$ 1.000,00", want: "1000.00"},
		{in: "100", want: "100"},
		{in: "0,5", want: "0.5"},
		{in: "", want: "0"},
		{in: "abc", want: "0"},
		{in: "--", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseBrazilianNumber(tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"parseBrazilianNumber(%q) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-03-15", normalizeDate("15/03/2024"))
	assert.Equal(t, "2024-01-05", normalizeDate("5/1/2024"))
	assert.Equal(t, "2024-03-15", normalizeDate("  15/03/2024  "))

	// Already normalized dates pass through
	assert.Equal(t, "2024-03-15", normalizeDate("2024-03-15"))

	// Garbage without slashes passes through for validation to catch
	assert.Equal(t, "not-a-date", normalizeDate("not-a-date"))

	// Empty defaults to today
	assert.Equal(t, time.Now().Format("2006-01-02"), normalizeDate(""))
}
