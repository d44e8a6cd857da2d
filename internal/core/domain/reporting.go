package domain

import "github.com/shopspring/decimal"

// Trend describes how spending moved between two periods.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// CategorySpend is the absolute expense total accumulated by one category.
type CategorySpend struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MerchantSpend aggregates expenses per statement description.
type MerchantSpend struct {
	Description string          `json:"description"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
}

// OwnerSpend is the absolute expense total of one account holder.
type OwnerSpend struct {
	Owner Owner           `json:"owner"`
	Total decimal.Decimal `json:"total"`
}

// MonthlySpend is the per-owner expense total of one calendar month.
type MonthlySpend struct {
	Month  string                    `json:"month"` // YYYY-MM
	Totals map[Owner]decimal.Decimal `json:"totals"`
}

// CategoryDelta compares one category's spending in the current calendar
// month against the previous month and against six months ago.
type CategoryDelta struct {
	Category        Category        `json:"category"`
	Current         decimal.Decimal `json:"current"`
	Previous        decimal.Decimal `json:"previous"`
	SixMonthsAgo    decimal.Decimal `json:"sixMonthsAgo"`
	DeltaPrevPct    decimal.Decimal `json:"deltaPreviousPct"`
	DeltaSixMonPct  decimal.Decimal `json:"deltaSixMonthsPct"`
	TrendPrevious   Trend           `json:"trendPrevious"`
	TrendSixMonths  Trend           `json:"trendSixMonths"`
	FirstOccurrence bool            `json:"firstOccurrence"` // no spending in either reference month
}

// LedgerSummary is the headline statistics block of the charts view.
type LedgerSummary struct {
	TransactionCount int                       `json:"transactionCount"`
	SpendByOwner     map[Owner]decimal.Decimal `json:"spendByOwner"`
	TopCategory      *CategorySpend            `json:"topCategory,omitempty"`
}

// BatchSummary sums up a pending batch for the verification view. Rows with
// an invalid amount are skipped from the inflow/outflow totals.
type BatchSummary struct {
	Count        int             `json:"count"`
	Inflow       decimal.Decimal `json:"inflow"`
	Outflow      decimal.Decimal `json:"outflow"`       // absolute value of expenses
	FinalBalance decimal.Decimal `json:"finalBalance"` // balance reported on the last row
}
