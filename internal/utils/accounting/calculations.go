package accounting

import (
	"github.com/shopspring/decimal"
)

// one hundred, for percent <-> fraction conversion.
var hundred = decimal.NewFromInt(100)

// CompoundAmount projects a principal at an annual percent rate over whole
// years: M = C * (1 + i)^n. Years below zero are treated as zero.
func CompoundAmount(principal decimal.Decimal, annualRatePct decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return principal
	}
	factor := decimal.NewFromInt(1).Add(annualRatePct.Div(hundred))
	return principal.Mul(factor.Pow(decimal.NewFromInt(int64(years))))
}

// CompoundGain is the projected earnings over the principal.
func CompoundGain(principal decimal.Decimal, annualRatePct decimal.Decimal, years int) decimal.Decimal {
	return CompoundAmount(principal, annualRatePct, years).Sub(principal)
}

// PercentDelta returns the percentage change from previous to current.
// When previous is zero the delta is 100% if current is non-zero, else 0%,
// so a category's first month of spending reads as a full increase.
func PercentDelta(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}
