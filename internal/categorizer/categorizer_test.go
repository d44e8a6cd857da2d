package categorizer

import (
	"testing"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func txnWithDescription(description string) domain.Transaction {
	return domain.Transaction{Description: description}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		description string
		want        domain.Category
	}{
		{description: "Ifood", want: domain.CategoryFood},
		{description: "SUPERMERCADO BARATEIRA", want: domain.CategoryFood},
		{description: "Posto Shell", want: domain.CategoryTransport},
		{description: "Netflix.com", want: domain.CategoryLeisure},
		{description: "Conta de luz", want: domain.CategoryHousing},
		{description: "Magazine Luiza", want: domain.CategoryShopping},
		{description: "Drogaria Pacheco", want: domain.CategoryHealth},
		{description: "Mensalidade faculdade", want: domain.CategoryEducation},
		{description: "Tarifa bancária", want: domain.CategoryServices},
		{description: "Transferência para poupança", want: domain.CategoryOther},
		{description: "", want: domain.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(txnWithDescription(tt.description)))
		})
	}
}

func TestCategorize_MatchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.CategoryFood, Categorize(txnWithDescription("IFOOD *PEDIDO 123")))
	assert.Equal(t, domain.CategoryFood, Categorize(txnWithDescription("ifood *pedido 123")))
}

func TestCategorize_RuleOrderBreaksTies(t *testing.T) {
	// "uber eats" contains "uber" too; the food rule is evaluated first.
	assert.Equal(t, domain.CategoryFood, Categorize(txnWithDescription("Uber Eats Pedido")))
	assert.Equal(t, domain.CategoryTransport, Categorize(txnWithDescription("Uber Trip")))
}

func TestApply_DoesNotOverwriteExistingCategory(t *testing.T) {
	txn := txnWithDescription("Ifood")
	txn.Category = domain.CategoryLeisure

	assert.Equal(t, domain.CategoryLeisure, Apply(txn).Category)
}

func TestApply_FillsEmptyCategory(t *testing.T) {
	got := Apply(txnWithDescription("Padaria do bairro"))
	assert.Equal(t, domain.CategoryFood, got.Category)
}

func TestApply_Idempotent(t *testing.T) {
	once := Apply(txnWithDescription("posto ipiranga"))
	twice := Apply(once)
	assert.Equal(t, once, twice)
}

func TestApplyAll(t *testing.T) {
	txns := []domain.Transaction{
		txnWithDescription("Ifood"),
		txnWithDescription("algo desconhecido"),
	}
	got := ApplyAll(txns)
	assert.Equal(t, domain.CategoryFood, got[0].Category)
	assert.Equal(t, domain.CategoryOther, got[1].Category)
}
