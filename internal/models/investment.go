package models

import "github.com/shopspring/decimal"

// Investment is the stored shape of an investment entry, with the original
// Portuguese field names kept for payload stability.
type Investment struct {
	InvestmentID   string          `json:"id"`
	Pessoa         string          `json:"pessoa"`
	Tipo           string          `json:"tipo"`
	Titulo         string          `json:"titulo"`
	Valor          decimal.Decimal `json:"valor"`
	Data           string          `json:"data"`           // YYYY-MM-DD
	TaxaRendimento decimal.Decimal `json:"taxaRendimento"` // Annual rate, percent
}
