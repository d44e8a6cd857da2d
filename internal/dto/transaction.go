package dto

import (
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse is the API shape of a transaction, staged or
// committed. Amount and Balance render as null when the staged value is the
// invalid sentinel.
type TransactionResponse struct {
	ID          string              `json:"id"`
	PostedDate  string              `json:"postedDate"`
	Historic    string              `json:"historic"`
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Balance     decimal.NullDecimal `json:"balance"`
	Owner       string              `json:"owner"`
	Category    string              `json:"category,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its API shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.TransactionID,
		PostedDate:  txn.PostedDate,
		Historic:    txn.Historic,
		Description: txn.Description,
		Amount:      txn.Amount,
		Balance:     txn.Balance,
		Owner:       string(txn.Owner),
		Category:    string(txn.Category),
	}
}

// ToTransactionResponses converts a batch.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// UpdateTransactionRequest is a partial update of a committed transaction.
// Absent fields stay untouched.
type UpdateTransactionRequest struct {
	PostedDate  *string          `json:"postedDate" binding:"omitempty,isodate"`
	Historic    *string          `json:"historic"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Balance     *decimal.Decimal `json:"balance"`
	Owner       *string          `json:"owner" binding:"omitempty,owner"`
	Category    *string          `json:"category" binding:"omitempty,spendcategory"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTransactionRequest) ToPatch() domain.TransactionPatch {
	patch := domain.TransactionPatch{
		PostedDate:  r.PostedDate,
		Historic:    r.Historic,
		Description: r.Description,
		Amount:      r.Amount,
		Balance:     r.Balance,
	}
	if r.Owner != nil {
		owner := domain.Owner(*r.Owner)
		patch.Owner = &owner
	}
	if r.Category != nil {
		category := domain.Category(*r.Category)
		patch.Category = &category
	}
	return patch
}
