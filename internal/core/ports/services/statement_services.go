package services

import (
	"context"
	"io"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// StatementSvcFacade runs the import pipeline: normalize the raw CSV, parse
// it into transactions, auto-categorize, and stage the batch for
// verification (replacing any previous pending batch).
type StatementSvcFacade interface {
	// ImportStatement reads the whole file from r before parsing. It is
	// atomic: on error nothing is staged and the previous pending batch is
	// left untouched.
	ImportStatement(ctx context.Context, r io.Reader, owner domain.Owner) ([]domain.Transaction, error)
}
