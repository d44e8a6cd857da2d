package models

import "github.com/shopspring/decimal"

// Transaction is the stored shape of a ledger row. The JSON field names are
// the Portuguese ones used by the original bank statements and must stay
// stable: the storage slots are long-lived documents and older payloads have
// to keep deserializing.
type Transaction struct {
	TransactionID  string              `json:"id"`
	DataLancamento string              `json:"dataLancamento"` // Posted date, YYYY-MM-DD
	Historico      string              `json:"historico"`
	Descricao      string              `json:"descricao"`
	Valor          decimal.NullDecimal `json:"valor"` // null when the source value was unparseable
	Saldo          decimal.NullDecimal `json:"saldo"`
	Pessoa         string              `json:"pessoa"`
	Categoria      string              `json:"categoria"`
}
