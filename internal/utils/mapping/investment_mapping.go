package mapping

import (
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/dashfinanceiro/dashfin_app/internal/models"
)

// ToModelInvestment converts a domain Investment to a model Investment
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:   d.InvestmentID,
		Pessoa:         string(d.Owner),
		Tipo:           d.Kind,
		Titulo:         d.Title,
		Valor:          d.Amount,
		Data:           d.Date,
		TaxaRendimento: d.AnnualRate,
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID: m.InvestmentID,
		Owner:        domain.Owner(m.Pessoa),
		Kind:         m.Tipo,
		Title:        m.Titulo,
		Amount:       m.Valor,
		Date:         m.Data,
		AnnualRate:   m.TaxaRendimento,
	}
}

// ToModelInvestments converts a slice of domain Investments to model Investments
func ToModelInvestments(ds []domain.Investment) []models.Investment {
	out := make([]models.Investment, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToModelInvestment(d))
	}
	return out
}

// ToDomainInvestments converts a slice of model Investments to domain Investments
func ToDomainInvestments(ms []models.Investment) []domain.Investment {
	out := make([]domain.Investment, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDomainInvestment(m))
	}
	return out
}
