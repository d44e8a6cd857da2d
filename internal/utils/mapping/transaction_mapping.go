package mapping

import (
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/dashfinanceiro/dashfin_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		DataLancamento: d.PostedDate,
		Historico:      d.Historic,
		Descricao:      d.Description,
		Valor:          d.Amount,
		Saldo:          d.Balance,
		Pessoa:         string(d.Owner),
		Categoria:      string(d.Category),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		PostedDate:    m.DataLancamento,
		Historic:      m.Historico,
		Description:   m.Descricao,
		Amount:        m.Valor,
		Balance:       m.Saldo,
		Owner:         domain.Owner(m.Pessoa),
		Category:      domain.Category(m.Categoria),
	}
}

// ToModelTransactions converts a slice of domain Transactions to model Transactions
func ToModelTransactions(ds []domain.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToModelTransaction(d))
	}
	return out
}

// ToDomainTransactions converts a slice of model Transactions to domain Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDomainTransaction(m))
	}
	return out
}
