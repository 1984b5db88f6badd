// Package money is the pure financial core: fee breakdowns, budget folds,
// suggested max bids and ROI. Every function is stateless and side-effect
// free; all arithmetic is decimal-exact and currency values are truncated to
// the centavo only where a contract requires flooring. No function here ever
// returns an error: invalid numeric input degrades to zero and
// division-by-zero conditions are guarded with a zero sentinel, so callers
// always have a displayable number.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// ParseCents converts a raw digit string of centavos into a currency value:
// "475000" becomes 4750.00. Non-digit characters are dropped, mirroring how
// masked currency inputs arrive from the client. Empty or unparseable input
// yields zero, never an error.
func ParseCents(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return decimal.Zero
	}

	cents, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}

	return cents.Shift(-2)
}

// TotalRateMultiplier is 1 + (feePercent+patioPercent)/100, the factor that
// turns a bid into the amount owed to the auctioneer.
func TotalRateMultiplier(feePercent, patioPercent decimal.Decimal) decimal.Decimal {
	return one.Add(feePercent.Add(patioPercent).Div(oneHundred))
}

// EffectiveRate resolves a lot-level override against the auction default.
func EffectiveRate(override *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}

	return fallback
}

// FormatBRL renders a value as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if neg {
		out = "-" + out
	}

	return out
}
