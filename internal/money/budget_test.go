package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotecerto/lotecerto-api/internal/domain"
)

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func purchasedLot(id uint, bid string, items ...string) domain.Lot {
	lot := domain.Lot{
		ID:         id,
		Status:     domain.LotPurchased,
		WinningBid: dp(bid),
	}
	for _, cost := range items {
		lot.Items = append(lot.Items, domain.LotItem{Cost: decimal.RequireFromString(cost)})
	}

	return lot
}

func TestLotTotalCost(t *testing.T) {
	auction := domain.Auction{
		Budget:                 d("10000"),
		DefaultFeePercent:      d("5"),
		DefaultPatioFeePercent: d("2"),
	}

	// winningBid × 1.07 + items = 1000×1.07 + 100.00 + 250.50 = 1420.50
	lot := purchasedLot(1, "1000", "100.00", "250.50")
	assert.True(t, LotTotalCost(lot, auction).Equal(d("1420.50")))

	// Absent winning bid costs nothing, even with items.
	pending := domain.Lot{ID: 2, Status: domain.LotPending, Items: lot.Items}
	assert.True(t, LotTotalCost(pending, auction).IsZero())

	// Override rates supersede the auction defaults.
	override := purchasedLot(3, "1000")
	override.OverrideFeePercent = dp("10")
	override.OverridePatioFeePercent = dp("0")
	assert.True(t, LotTotalCost(override, auction).Equal(d("1100")))
}

func TestTotalSpent(t *testing.T) {
	auction := domain.Auction{
		Budget:            d("10000"),
		DefaultFeePercent: d("5"),
	}

	assert.True(t, TotalSpent(nil, auction).IsZero())
	assert.True(t, TotalSpent([]domain.Lot{}, auction).IsZero())

	lots := []domain.Lot{
		purchasedLot(1, "5000"),
		purchasedLot(2, "1000", "50"),
		{ID: 3, Status: domain.LotPending, WinningBid: dp("99999")},
		{ID: 4, Status: domain.LotLost},
	}

	want := d("5250").Add(d("1100"))
	assert.True(t, TotalSpent(lots, auction).Equal(want))

	// Order-independent fold.
	reversed := []domain.Lot{lots[3], lots[2], lots[1], lots[0]}
	assert.True(t, TotalSpent(reversed, auction).Equal(want))
}

func TestRemainingForLot(t *testing.T) {
	// Budget R$10.000,00, fee 5%, patio 0%. Lot A purchased at 5000.00
	// costs 5250.00; a second lot sees 4750.00 of headroom.
	auction := domain.Auction{
		Budget:            d("10000"),
		DefaultFeePercent: d("5"),
	}
	lots := []domain.Lot{
		purchasedLot(1, "5000"),
		{ID: 2, Status: domain.LotPending},
	}

	remaining := RemainingForLot(lots, 2, auction)
	require.True(t, remaining.Equal(d("4750")), "remaining = %s", remaining)

	// No exclusion: the auction-level remaining figure.
	assert.True(t, RemainingForLot(lots, 0, auction).Equal(d("4750")))

	// Excluding the purchased lot itself restores the full budget.
	assert.True(t, RemainingForLot(lots, 1, auction).Equal(d("10000")))
}

func TestSuggestedMaxBid(t *testing.T) {
	auction := domain.Auction{
		Budget:            d("10000"),
		DefaultFeePercent: d("5"),
	}
	lots := []domain.Lot{
		purchasedLot(1, "5000"),
		{ID: 2, Status: domain.LotPending},
	}

	// maxBid = floor(4750/1.05 × 100)/100 = 4523.80
	got := SuggestedMaxBid(lots, lots[1], auction)
	assert.True(t, got.Equal(d("4523.80")), "got %s", got)

	// Extra costs shrink the headroom before the rate division.
	withItems := lots[1]
	withItems.Items = []domain.LotItem{{Cost: d("550")}}
	got = SuggestedMaxBid(lots, withItems, auction)
	assert.True(t, got.Equal(d("4000")), "got %s", got)

	// Budget already blown: no suggestion.
	broke := domain.Auction{Budget: d("100"), DefaultFeePercent: d("5")}
	got = SuggestedMaxBid([]domain.Lot{purchasedLot(1, "500")}, domain.Lot{ID: 2}, broke)
	assert.True(t, got.IsZero())
}

func TestProfitAndROI(t *testing.T) {
	// sellingPrice 1500.00 − totalCost 1420.50 = 79.50; ROI ≈ 5.596%
	res := ProfitAndROI(d("1500"), d("1420.50"))
	assert.True(t, res.Profit.Equal(d("79.50")))
	assert.True(t, res.ROIPercent.Truncate(3).Equal(d("5.596")), "roi = %s", res.ROIPercent)

	// Zero revenue still computes: profit = -X, ROI = -100.
	res = ProfitAndROI(d("0"), d("1420.50"))
	assert.True(t, res.Profit.Equal(d("-1420.50")))
	assert.True(t, res.ROIPercent.Equal(d("-100")))

	// Zero-cost lot reports 0% rather than dividing by zero.
	res = ProfitAndROI(d("500"), d("0"))
	assert.True(t, res.Profit.Equal(d("500")))
	assert.True(t, res.ROIPercent.IsZero())
}

func TestItemsCost(t *testing.T) {
	assert.True(t, ItemsCost(nil).IsZero())

	items := []domain.LotItem{
		{Cost: d("100.00"), Checked: true},
		{Cost: d("250.50")},
	}
	assert.True(t, ItemsCost(items).Equal(d("350.50")))
}
