package money

import (
	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
)

// ItemsCost sums the extra cost entries of a lot.
func ItemsCost(items []domain.LotItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Cost)
	}

	return total
}

// LotTotalCost is winningBid × rate multiplier + extra items, using the lot's
// override rates when present and the auction defaults otherwise. A lot
// without a winning bid costs nothing yet.
func LotTotalCost(lot domain.Lot, auction domain.Auction) decimal.Decimal {
	if lot.WinningBid == nil {
		return decimal.Zero
	}

	fee := EffectiveRate(lot.OverrideFeePercent, auction.DefaultFeePercent)
	patio := EffectiveRate(lot.OverridePatioFeePercent, auction.DefaultPatioFeePercent)

	return lot.WinningBid.Mul(TotalRateMultiplier(fee, patio)).Add(ItemsCost(lot.Items))
}

// TotalSpent folds the purchased lots of an auction into cumulative spend.
// The fold is commutative; an empty slice yields zero.
func TotalSpent(lots []domain.Lot, auction domain.Auction) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		if lot.Status == domain.LotPurchased {
			total = total.Add(LotTotalCost(lot, auction))
		}
	}

	return total
}

// RemainingForLot is the auction budget minus the spend of every other
// purchased lot. The lot being edited is excluded because it is not yet
// "spent"; pass excludeLotID == 0 for the auction-level remaining figure.
func RemainingForLot(lots []domain.Lot, excludeLotID uint, auction domain.Auction) decimal.Decimal {
	spent := decimal.Zero
	for _, lot := range lots {
		if lot.ID == excludeLotID {
			continue
		}
		if lot.Status == domain.LotPurchased {
			spent = spent.Add(LotTotalCost(lot, auction))
		}
	}

	return auction.Budget.Sub(spent)
}

// SuggestedMaxBid is the largest bid for this lot that keeps the auction
// within budget after fees and the lot's extra costs, floored to the centavo.
// With no budget headroom the suggestion is zero.
func SuggestedMaxBid(lots []domain.Lot, lot domain.Lot, auction domain.Auction) decimal.Decimal {
	remaining := RemainingForLot(lots, lot.ID, auction)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	fee := EffectiveRate(lot.OverrideFeePercent, auction.DefaultFeePercent)
	patio := EffectiveRate(lot.OverridePatioFeePercent, auction.DefaultPatioFeePercent)

	maxBid := remaining.Sub(ItemsCost(lot.Items)).Div(TotalRateMultiplier(fee, patio)).Truncate(2)
	if maxBid.IsNegative() {
		return decimal.Zero
	}

	return maxBid
}

// ProfitResult is the realized outcome of a resold lot.
type ProfitResult struct {
	Profit     decimal.Decimal `json:"profit"`
	ROIPercent decimal.Decimal `json:"roi_percent"`
}

// ProfitAndROI computes profit and return on investment. A zero-cost lot
// reports 0% ROI rather than failing; whether a zero selling price should
// suppress the figure is a presentation decision, not made here.
func ProfitAndROI(sellingPrice, totalCost decimal.Decimal) ProfitResult {
	profit := sellingPrice.Sub(totalCost)

	roi := decimal.Zero
	if totalCost.GreaterThan(decimal.Zero) {
		roi = profit.Div(totalCost).Mul(oneHundred)
	}

	return ProfitResult{Profit: profit, ROIPercent: roi}
}
