package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotecerto/lotecerto-api/internal/domain"
)

func TestPortfolioService_Get(t *testing.T) {
	soldBid := decimal.RequireFromString("1000")
	soldPrice := decimal.RequireFromString("1500")
	unsoldBid := decimal.RequireFromString("2000")

	lotRepo := newFakeLotRepo(
		domain.Lot{
			ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPurchased,
			WinningBid: &soldBid, SellingPrice: &soldPrice,
			Items: []domain.LotItem{
				{ID: "a", Name: "Despachante", Cost: decimal.RequireFromString("350.50")},
			},
		},
		domain.Lot{
			ID: 2, AuctionID: 1, Name: "Uno", Status: domain.LotPurchased,
			WinningBid: &unsoldBid,
		},
	)

	auction := testAuction(1, 7)
	auction.DefaultFeePercent = decimal.RequireFromString("7")
	svc := NewPortfolioService(lotRepo, newFakeAuctionRepo(auction))

	portfolio, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, portfolio.Entries, 2)

	var sold, unsold PortfolioEntry
	for _, e := range portfolio.Entries {
		if e.HasSale {
			sold = e
		} else {
			unsold = e
		}
	}

	// Sold lot: cost 1000*1.07 + 350.50 = 1420.50, profit 79.50, ROI ~5.596%.
	assert.True(t, sold.TotalCost.Equal(decimal.RequireFromString("1420.50")))
	assert.True(t, sold.Profit.Equal(decimal.RequireFromString("79.50")))
	assert.Equal(t, "5.60", sold.ROIPercent.StringFixed(2))
	assert.Equal(t, "Leilão Detran SP", sold.AuctionName)

	// Unsold lot still counts as investment but not revenue.
	assert.True(t, unsold.TotalCost.Equal(decimal.RequireFromString("2140")))
	assert.False(t, unsold.HasSale)

	assert.True(t, portfolio.TotalInvested.Equal(decimal.RequireFromString("3560.50")))
	assert.True(t, portfolio.TotalRevenue.Equal(decimal.RequireFromString("1500")))
	assert.True(t, portfolio.TotalProfit.Equal(decimal.RequireFromString("79.50")))
	assert.Equal(t, 1, portfolio.SoldCount)

	// Global ROI uses only sold cost: 79.50 / 1420.50.
	assert.Equal(t, "5.60", portfolio.GlobalROIPercent.StringFixed(2))
}

func TestPortfolioService_Get_ZeroSellingPriceIsNotASale(t *testing.T) {
	bid := decimal.RequireFromString("1000")
	zeroPrice := decimal.Zero

	lotRepo := newFakeLotRepo(
		domain.Lot{
			ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPurchased,
			WinningBid: &bid, SellingPrice: &zeroPrice,
		},
	)
	svc := NewPortfolioService(lotRepo, newFakeAuctionRepo(testAuction(1, 7)))

	portfolio, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, portfolio.Entries, 1)

	entry := portfolio.Entries[0]
	assert.False(t, entry.HasSale)
	assert.True(t, entry.Revenue.IsZero())

	// Still an investment, but nothing realized yet.
	assert.True(t, portfolio.TotalInvested.Equal(decimal.RequireFromString("1050")))
	assert.True(t, portfolio.TotalRevenue.IsZero())
	assert.True(t, portfolio.TotalProfit.IsZero())
	assert.Zero(t, portfolio.SoldCount)
	assert.True(t, portfolio.GlobalROIPercent.IsZero())
}

func TestPortfolioService_Get_Empty(t *testing.T) {
	svc := NewPortfolioService(newFakeLotRepo(), newFakeAuctionRepo())

	portfolio, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Empty(t, portfolio.Entries)
	assert.True(t, portfolio.TotalInvested.IsZero())
	assert.True(t, portfolio.GlobalROIPercent.IsZero())
	assert.Zero(t, portfolio.SoldCount)
}
