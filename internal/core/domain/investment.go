package domain

import "github.com/shopspring/decimal"

// Investment is a manually entered position. Investments are append-only:
// once created they are never updated or deleted.
type Investment struct {
	InvestmentID string          `json:"investmentID"` // Primary key (UUID)
	Owner        Owner           `json:"owner"`
	Kind         string          `json:"kind"`            // Free-form type (CDB, Ações, ...)
	Title        string          `json:"title,omitempty"` // Optional label
	Amount       decimal.Decimal `json:"amount"`          // Principal, >= 0
	Date         string          `json:"date"`            // YYYY-MM-DD
	AnnualRate   decimal.Decimal `json:"annualRate"`      // Percent per year
}

// InvestmentKinds lists the suggested position types offered by the
// investments form. Kind itself stays free-form.
var InvestmentKinds = []string{
	"Renda Fixa",
	"Ações",
	"Fundos",
	"Cripto",
	"Tesouro Direto",
	"CDB",
	"LCI/LCA",
	"Outros",
}
