package importer

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseStatement converts cleaned CSV text into uncommitted transactions
// tagged with owner. Categories are left unset; the categorizer fills them
// afterwards. Column resolution is header-based and tolerant of casing,
// diacritics and ordering.
func ParseStatement(cleaned string, owner domain.Owner) ([]domain.Transaction, error) {
	if strings.TrimSpace(cleaned) == "" {
		return nil, &EmptyInputError{Reason: "no usable text after normalization"}
	}

	reader := csv.NewReader(strings.NewReader(cleaned))
	reader.Comma = DetectDelimiter(cleaned)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement csv: %w", err)
	}
	if len(records) == 0 {
		return nil, &EmptyInputError{Reason: "no rows found"}
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	found := make([]string, 0, len(header))
	for i, col := range header {
		found = append(found, strings.TrimSpace(col))
		key := NormalizeKey(col)
		if _, taken := columns[key]; !taken {
			columns[key] = i
		}
	}

	var missing []string
	for _, want := range requiredColumns {
		if _, ok := columns[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing, Found: found}
	}

	var transactions []domain.Transaction
	for _, row := range records[1:] {
		if isBlankRow(row) {
			continue
		}
		transactions = append(transactions, domain.Transaction{
			TransactionID: uuid.NewString(),
			PostedDate:    normalizeDate(fieldAt(row, columns["data lancamento"])),
			Historic:      strings.TrimSpace(fieldAt(row, columns["historico"])),
			Description:   strings.TrimSpace(fieldAt(row, columns["descricao"])),
			Amount:        domain.Money(parseBrazilianNumber(fieldAt(row, columns["valor"]))),
			Balance:       domain.Money(parseBrazilianNumber(fieldAt(row, columns["saldo"]))),
			Owner:         owner,
		})
	}

	if len(transactions) == 0 {
		return nil, &EmptyInputError{Reason: "zero data rows"}
	}
	return transactions, nil
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func fieldAt(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}

// parseBrazilianNumber reads a Brazilian-formatted amount: "." is a
// thousands separator, "," the decimal separator. Any other non-numeric
// rune is dropped. A value that still fails to parse becomes zero so a
// single bad cell never aborts the whole import.
func parseBrazilianNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// normalizeDate rewrites DD/MM/YYYY to YYYY-MM-DD, zero-padding day and
// month. Values without "/" pass through untouched; a missing date defaults
// to today.
func normalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Now().Format("2006-01-02")
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 && parts[0] != "" && parts[1] != "" && parts[2] != "" {
			return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0]))
		}
	}
	return s
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
