package domain

import "github.com/shopspring/decimal"

// TransactionPatch carries a partial update for a committed transaction.
// Nil fields are left untouched by the merge.
type TransactionPatch struct {
	PostedDate  *string
	Historic    *string
	Description *string
	Amount      *decimal.Decimal
	Balance     *decimal.Decimal
	Owner       *Owner
	Category    *Category
}

// IsZero reports whether the patch carries no fields at all.
func (p TransactionPatch) IsZero() bool {
	return p.PostedDate == nil && p.Historic == nil && p.Description == nil &&
		p.Amount == nil && p.Balance == nil && p.Owner == nil && p.Category == nil
}

// ApplyTo merges the patch into txn and returns the result.
func (p TransactionPatch) ApplyTo(txn Transaction) Transaction {
	if p.PostedDate != nil {
		txn.PostedDate = *p.PostedDate
	}
	if p.Historic != nil {
		txn.Historic = *p.Historic
	}
	if p.Description != nil {
		txn.Description = *p.Description
	}
	if p.Amount != nil {
		txn.Amount = Money(*p.Amount)
	}
	if p.Balance != nil {
		txn.Balance = Money(*p.Balance)
	}
	if p.Owner != nil {
		txn.Owner = *p.Owner
	}
	if p.Category != nil {
		txn.Category = *p.Category
	}
	return txn
}
