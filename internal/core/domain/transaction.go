package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionField names an editable field of a staged transaction.
type TransactionField string

const (
	FieldPostedDate  TransactionField = "postedDate"
	FieldHistoric    TransactionField = "historic"
	FieldDescription TransactionField = "description"
	FieldAmount      TransactionField = "amount"
	FieldBalance     TransactionField = "balance"
	FieldCategory    TransactionField = "category"
)

// IsValid reports whether f names a known editable field.
func (f TransactionField) IsValid() bool {
	switch f {
	case FieldPostedDate, FieldHistoric, FieldDescription, FieldAmount, FieldBalance, FieldCategory:
		return true
	}
	return false
}

// Transaction is one bank-statement line. Amount and Balance use
// decimal.NullDecimal so that a value the user cleared or mistyped while
// verifying a staged batch stays distinguishable from a legitimate zero;
// committed transactions always carry valid decimals.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary key (UUID), immutable once created
	PostedDate    string              `json:"postedDate"`    // Calendar date, YYYY-MM-DD
	Historic      string              `json:"historic"`      // Payment channel/type as printed on the statement
	Description   string              `json:"description"`   // Merchant / free-text description
	Amount        decimal.NullDecimal `json:"amount"`        // Signed: negative = expense, positive = income
	Balance       decimal.NullDecimal `json:"balance"`       // Account balance reported on the source row
	Owner         Owner               `json:"owner"`
	Category      Category            `json:"category,omitempty"`
}

// FieldErrors maps a failing field of one row to a human-readable message.
type FieldErrors map[TransactionField]string

// RowErrors collects per-row validation failures, keyed by transaction ID.
// An empty map means every row passed every check.
type RowErrors map[string]FieldErrors

// HasErrors reports whether any row failed validation.
func (r RowErrors) HasErrors() bool {
	return len(r) > 0
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s is a well-formed YYYY-MM-DD string naming a
// real calendar date.
func IsISODate(s string) bool {
	if !isoDateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidateForCommit runs every per-row check the verification gate requires.
// It returns nil when the row may be committed.
func (t Transaction) ValidateForCommit() FieldErrors {
	errs := FieldErrors{}

	if !IsISODate(t.PostedDate) {
		errs[FieldPostedDate] = "data inválida (use YYYY-MM-DD)"
	}
	if strings.TrimSpace(t.Historic) == "" {
		errs[FieldHistoric] = "histórico é obrigatório"
	}
	if strings.TrimSpace(t.Description) == "" {
		errs[FieldDescription] = "descrição é obrigatória"
	}
	if strings.TrimSpace(string(t.Category)) == "" {
		errs[FieldCategory] = "categoria é obrigatória"
	} else if !t.Category.IsValid() {
		errs[FieldCategory] = "categoria desconhecida"
	}
	if !t.Amount.Valid {
		errs[FieldAmount] = "valor deve ser numérico"
	}
	if !t.Balance.Valid {
		errs[FieldBalance] = "saldo deve ser numérico"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Money wraps a valid decimal in the NullDecimal carrier used by Amount and
// Balance.
func Money(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// InvalidMoney is the sentinel for a numeric field that could not be parsed.
func InvalidMoney() decimal.NullDecimal {
	return decimal.NullDecimal{}
}
