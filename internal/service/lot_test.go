package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotecerto/lotecerto-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func newLotServiceFixture(lots ...domain.Lot) (*LotService, *fakeLotRepo) {
	lotRepo := newFakeLotRepo(lots...)
	auctionRepo := newFakeAuctionRepo(testAuction(1, 7))

	return NewLotService(lotRepo, auctionRepo), lotRepo
}

func TestLotService_ListByAuction_PurchasedLast(t *testing.T) {
	svc, _ := newLotServiceFixture(
		domain.Lot{ID: 1, AuctionID: 1, Name: "Corsa", Status: domain.LotPurchased},
		domain.Lot{ID: 2, AuctionID: 1, Name: "Astra", Status: domain.LotPending},
		domain.Lot{ID: 3, AuctionID: 1, Name: "Zafira", Status: domain.LotLost},
		domain.Lot{ID: 4, AuctionID: 1, Name: "Blazer", Status: domain.LotPurchased},
	)

	lots, err := svc.ListByAuction(context.Background(), 7, 1)
	require.NoError(t, err)

	names := make([]string, 0, len(lots))
	for _, l := range lots {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Astra", "Zafira", "Blazer", "Corsa"}, names)
}

func TestLotService_Create_ForcesPendingAndNoSale(t *testing.T) {
	svc, _ := newLotServiceFixture()

	bid := decimal.RequireFromString("100")
	created, err := svc.Create(context.Background(), 7, domain.Lot{
		AuctionID:  1,
		Name:       "Gol",
		Status:     domain.LotPurchased,
		WinningBid: &bid,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LotPending, created.Status)
	assert.Nil(t, created.WinningBid)
	assert.Nil(t, created.SellingPrice)
}

func TestLotService_Create_WrongOwner(t *testing.T) {
	svc, _ := newLotServiceFixture()

	_, err := svc.Create(context.Background(), 8, domain.Lot{AuctionID: 1, Name: "Gol"})
	assert.ErrorIs(t, err, ErrNotAuctionOwner)
}

func TestLotService_SetStatus_KeepsWinningBid(t *testing.T) {
	bid := decimal.RequireFromString("1500")
	svc, _ := newLotServiceFixture(domain.Lot{
		ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPurchased, WinningBid: &bid,
	})

	lost, err := svc.SetStatus(context.Background(), 7, 1, domain.LotLost)
	require.NoError(t, err)
	require.NotNil(t, lost.WinningBid)
	assert.True(t, lost.WinningBid.Equal(bid))

	back, err := svc.SetStatus(context.Background(), 7, 1, domain.LotPurchased)
	require.NoError(t, err)
	assert.Equal(t, domain.LotPurchased, back.Status)
}

func TestLotService_SetStatus_Invalid(t *testing.T) {
	svc, _ := newLotServiceFixture(domain.Lot{ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPending})

	_, err := svc.SetStatus(context.Background(), 7, 1, domain.LotStatus("sold"))
	assert.ErrorIs(t, err, ErrInvalidLotStatus)
}

func TestLotService_SetSale(t *testing.T) {
	svc, _ := newLotServiceFixture(domain.Lot{ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPurchased})

	// "475000" centavos = R$ 4750.00
	lot, err := svc.SetSale(context.Background(), 7, 1, strPtr("475000"), nil)
	require.NoError(t, err)
	require.NotNil(t, lot.WinningBid)
	assert.True(t, lot.WinningBid.Equal(decimal.RequireFromString("4750")))
	assert.Nil(t, lot.SellingPrice)

	lot, err = svc.SetSale(context.Background(), 7, 1, nil, strPtr("600000"))
	require.NoError(t, err)
	require.NotNil(t, lot.WinningBid)
	require.NotNil(t, lot.SellingPrice)
	assert.True(t, lot.SellingPrice.Equal(decimal.RequireFromString("6000")))

	// Empty string clears.
	lot, err = svc.SetSale(context.Background(), 7, 1, strPtr(""), nil)
	require.NoError(t, err)
	assert.Nil(t, lot.WinningBid)
	require.NotNil(t, lot.SellingPrice)
}

func TestLotService_Items(t *testing.T) {
	svc, _ := newLotServiceFixture(domain.Lot{ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPending})

	lot, err := svc.AddItem(context.Background(), 7, 1, domain.LotItem{
		Name: "Pneus", Cost: decimal.RequireFromString("800"), Checked: true,
	})
	require.NoError(t, err)
	require.Len(t, lot.Items, 1)
	assert.NotEmpty(t, lot.Items[0].ID)
	assert.False(t, lot.Items[0].Checked)

	itemID := lot.Items[0].ID

	lot, err = svc.ToggleItemCheck(context.Background(), 7, 1, itemID)
	require.NoError(t, err)
	assert.True(t, lot.Items[0].Checked)

	_, err = svc.ToggleItemCheck(context.Background(), 7, 1, "missing")
	assert.ErrorIs(t, err, ErrLotItemNotFound)

	lot, err = svc.RemoveItem(context.Background(), 7, 1, itemID)
	require.NoError(t, err)
	assert.Empty(t, lot.Items)

	_, err = svc.RemoveItem(context.Background(), 7, 1, itemID)
	assert.ErrorIs(t, err, ErrLotItemNotFound)
}

func TestLotService_Strategy_NoBid(t *testing.T) {
	svc, _ := newLotServiceFixture(
		domain.Lot{ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPending},
	)

	strategy, err := svc.Strategy(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.True(t, strategy.FeePercent.Equal(decimal.RequireFromString("5")))
	assert.True(t, strategy.Remaining.Equal(decimal.RequireFromString("5000")))
	// floor(5000 / 1.05, 2)
	assert.Equal(t, "4761.90", strategy.SuggestedMaxBid.StringFixed(2))
	assert.Nil(t, strategy.Breakdown)
	assert.Nil(t, strategy.TotalCost)
	assert.False(t, strategy.OverBudget)
}

func TestLotService_Strategy_WithBidOverBudget(t *testing.T) {
	otherBid := decimal.RequireFromString("4000")
	myBid := decimal.RequireFromString("1200")

	svc, _ := newLotServiceFixture(
		domain.Lot{ID: 1, AuctionID: 1, Name: "Gol", Status: domain.LotPurchased, WinningBid: &otherBid},
		domain.Lot{ID: 2, AuctionID: 1, Name: "Uno", Status: domain.LotPurchased, WinningBid: &myBid},
	)

	strategy, err := svc.Strategy(context.Background(), 7, 2)
	require.NoError(t, err)

	// Other lot spends 4000 * 1.05 = 4200, leaving 800 of the 5000 budget.
	assert.True(t, strategy.SpentOnOtherLots.Equal(decimal.RequireFromString("4200")))
	assert.True(t, strategy.Remaining.Equal(decimal.RequireFromString("800")))

	require.NotNil(t, strategy.Breakdown)
	assert.True(t, strategy.Breakdown.Total.Equal(decimal.RequireFromString("1260")))
	require.NotNil(t, strategy.TotalCost)
	assert.True(t, strategy.TotalCost.Equal(decimal.RequireFromString("1260")))
	assert.True(t, strategy.OverBudget)
}
