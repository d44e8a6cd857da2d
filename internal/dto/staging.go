package dto

import "github.com/dashfinanceiro/dashfin_app/internal/core/domain"

// EditPendingRequest mutates one field of one staged row. Value is always a
// string; numeric fields that fail to parse become the invalid sentinel so
// the verification gate can flag them instead of silently storing zero.
type EditPendingRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// StagingResponse is the verification view: the staged rows, their
// per-field errors, and the batch summary.
type StagingResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	RowErrors    domain.RowErrors      `json:"rowErrors,omitempty"`
	Summary      domain.BatchSummary   `json:"summary"`
	Valid        bool                  `json:"valid"`
}

// CommitResponse reports a successful commit.
type CommitResponse struct {
	Committed int `json:"committed"`
}

// ImportStatementResponse reports a successful import: the batch is staged,
// nothing is committed yet.
type ImportStatementResponse struct {
	Staged       int                   `json:"staged"`
	Transactions []TransactionResponse `json:"transactions"`
}
