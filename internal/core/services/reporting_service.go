package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService aggregates the committed ledger for the charts view. It
// is read-only: everything is computed in memory from a ledger snapshot.
type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewReportingService creates the charts aggregation service.
func NewReportingService(txnRepo portsrepo.TransactionReader) portssvc.ReportingService {
	return &reportingService{txnRepo: txnRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// expense returns the absolute spend of txn, or false when the row is not
// an expense (missing or non-negative amount).
func expense(txn domain.Transaction) (decimal.Decimal, bool) {
	if !txn.Amount.Valid || !txn.Amount.Decimal.IsNegative() {
		return decimal.Decimal{}, false
	}
	return txn.Amount.Decimal.Abs(), true
}

// postedMonth parses the posted date and reduces it to its calendar month.
// Rows with unparseable dates are skipped by time-based reports.
func postedMonth(txn domain.Transaction) (year int, month time.Month, ok bool) {
	t, err := time.Parse("2006-01-02", txn.PostedDate)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

func (s *reportingService) snapshot(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger for report: %w", err)
	}
	return txns, nil
}

func (s *reportingService) Summary(ctx context.Context) (*domain.LedgerSummary, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.LedgerSummary{
		TransactionCount: len(txns),
		SpendByOwner:     make(map[domain.Owner]decimal.Decimal, len(domain.Owners)),
	}
	for _, owner := range domain.Owners {
		summary.SpendByOwner[owner] = decimal.Zero
	}
	for _, txn := range txns {
		if spend, ok := expense(txn); ok {
			summary.SpendByOwner[txn.Owner] = summary.SpendByOwner[txn.Owner].Add(spend)
		}
	}

	categories := spendingByCategory(txns)
	if len(categories) > 0 {
		top := categories[0]
		summary.TopCategory = &top
	}
	return summary, nil
}

func (s *reportingService) SpendingByCategory(ctx context.Context) ([]domain.CategorySpend, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return spendingByCategory(txns), nil
}

func spendingByCategory(txns []domain.Transaction) []domain.CategorySpend {
	totals := make(map[domain.Category]decimal.Decimal)
	for _, txn := range txns {
		spend, ok := expense(txn)
		if !ok {
			continue
		}
		category := txn.Category
		if category == "" {
			category = domain.CategoryOther
		}
		totals[category] = totals[category].Add(spend)
	}

	out := make([]domain.CategorySpend, 0, len(totals))
	for category, total := range totals {
		out = append(out, domain.CategorySpend{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Total.Cmp(out[j].Total); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func (s *reportingService) TopMerchants(ctx context.Context, limit int) ([]domain.MerchantSpend, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count int
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, txn := range txns {
		spend, ok := expense(txn)
		if !ok {
			continue
		}
		description := txn.Description
		if description == "" {
			description = "Desconhecido"
		}
		b, seen := buckets[description]
		if !seen {
			b = &bucket{total: decimal.Zero}
			buckets[description] = b
		}
		b.count++
		b.total = b.total.Add(spend)
	}

	out := make([]domain.MerchantSpend, 0, len(buckets))
	for description, b := range buckets {
		out = append(out, domain.MerchantSpend{Description: description, Count: b.count, Total: b.total})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Total.Cmp(out[j].Total); cmp != 0 {
			return cmp > 0
		}
		return out[i].Description < out[j].Description
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *reportingService) OwnerComparison(ctx context.Context) ([]domain.OwnerSpend, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.Owner]decimal.Decimal, len(domain.Owners))
	for _, owner := range domain.Owners {
		totals[owner] = decimal.Zero
	}
	for _, txn := range txns {
		if spend, ok := expense(txn); ok {
			totals[txn.Owner] = totals[txn.Owner].Add(spend)
		}
	}

	out := make([]domain.OwnerSpend, 0, len(domain.Owners))
	for _, owner := range domain.Owners {
		out = append(out, domain.OwnerSpend{Owner: owner, Total: totals[owner]})
	}
	return out, nil
}

func (s *reportingService) MonthlyEvolution(ctx context.Context) ([]domain.MonthlySpend, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	months := make(map[string]map[domain.Owner]decimal.Decimal)
	for _, txn := range txns {
		spend, ok := expense(txn)
		if !ok {
			continue
		}
		year, month, ok := postedMonth(txn)
		if !ok {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", year, int(month))
		totals, seen := months[key]
		if !seen {
			totals = make(map[domain.Owner]decimal.Decimal, len(domain.Owners))
			for _, owner := range domain.Owners {
				totals[owner] = decimal.Zero
			}
			months[key] = totals
		}
		totals[txn.Owner] = totals[txn.Owner].Add(spend)
	}

	out := make([]domain.MonthlySpend, 0, len(months))
	for key, totals := range months {
		out = append(out, domain.MonthlySpend{Month: key, Totals: totals})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (s *reportingService) CategoryDeltas(ctx context.Context, now time.Time) ([]domain.CategoryDelta, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Reference months are anchored to the first day of the current
	// calendar month before stepping back, so a Jan 31 "one month ago"
	// lands in December instead of skipping it. Leap years follow the
	// civil calendar.
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previousMonth := firstOfMonth.AddDate(0, -1, 0)
	sixMonthsAgo := firstOfMonth.AddDate(0, -6, 0)

	current := categoryTotalsInMonth(txns, firstOfMonth.Year(), firstOfMonth.Month())
	previous := categoryTotalsInMonth(txns, previousMonth.Year(), previousMonth.Month())
	six := categoryTotalsInMonth(txns, sixMonthsAgo.Year(), sixMonthsAgo.Month())

	seen := make(map[domain.Category]bool)
	for _, totals := range []map[domain.Category]decimal.Decimal{current, previous, six} {
		for category := range totals {
			seen[category] = true
		}
	}

	out := make([]domain.CategoryDelta, 0, len(seen))
	for category := range seen {
		cur := current[category]
		prev := previous[category]
		sixAgo := six[category]
		if cur.IsZero() && prev.IsZero() && sixAgo.IsZero() {
			continue
		}
		out = append(out, domain.CategoryDelta{
			Category:        category,
			Current:         cur,
			Previous:        prev,
			SixMonthsAgo:    sixAgo,
			DeltaPrevPct:    accounting.PercentDelta(cur, prev),
			DeltaSixMonPct:  accounting.PercentDelta(cur, sixAgo),
			TrendPrevious:   trendOf(cur, prev),
			TrendSixMonths:  trendOf(cur, sixAgo),
			FirstOccurrence: prev.IsZero() && sixAgo.IsZero(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Current.Cmp(out[j].Current); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func categoryTotalsInMonth(txns []domain.Transaction, year int, month time.Month) map[domain.Category]decimal.Decimal {
	totals := make(map[domain.Category]decimal.Decimal)
	for _, txn := range txns {
		spend, ok := expense(txn)
		if !ok {
			continue
		}
		y, m, ok := postedMonth(txn)
		if !ok || y != year || m != month {
			continue
		}
		category := txn.Category
		if category == "" {
			category = domain.CategoryOther
		}
		totals[category] = totals[category].Add(spend)
	}
	return totals
}

func trendOf(current, reference decimal.Decimal) domain.Trend {
	switch current.Cmp(reference) {
	case 1:
		return domain.TrendUp
	case -1:
		return domain.TrendDown
	default:
		return domain.TrendFlat
	}
}
