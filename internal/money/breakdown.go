package money

import "github.com/shopspring/decimal"

// Breakdown is the cost decomposition of a single bid.
type Breakdown struct {
	BidAmount   decimal.Decimal `json:"bid_amount"`
	FeeAmount   decimal.Decimal `json:"fee_amount"`
	PatioAmount decimal.Decimal `json:"patio_amount"`
	Total       decimal.Decimal `json:"total"`
}

// ComputeBreakdown applies the auctioneer and patio/admin rates to a bid.
// Negative inputs are not validated; that is the caller's responsibility.
func ComputeBreakdown(bid, feePercent, patioPercent decimal.Decimal) Breakdown {
	fee := bid.Mul(feePercent).Div(oneHundred)
	patio := bid.Mul(patioPercent).Div(oneHundred)

	return Breakdown{
		BidAmount:   bid,
		FeeAmount:   fee,
		PatioAmount: patio,
		Total:       bid.Add(fee).Add(patio),
	}
}

// MaxBidForLimit back-solves the largest bid whose breakdown total stays
// within limit, truncated to the centavo so the result can never exceed the
// limit through rounding. A limit of zero or less yields zero.
func MaxBidForLimit(limit, feePercent, patioPercent decimal.Decimal) decimal.Decimal {
	if limit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return limit.Div(TotalRateMultiplier(feePercent, patioPercent)).Truncate(2)
}

// IsOverLimit reports whether total exceeds a configured limit. A limit of
// zero or less means "no limit configured" and is never over.
func IsOverLimit(total, limit decimal.Decimal) bool {
	return limit.GreaterThan(decimal.Zero) && total.GreaterThan(limit)
}
