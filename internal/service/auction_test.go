package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotecerto/lotecerto-api/internal/domain"
)

func testAuction(id, userID uint) domain.Auction {
	return domain.Auction{
		ID:                     id,
		UserID:                 userID,
		Name:                   "Leilão Detran SP",
		Budget:                 decimal.RequireFromString("5000"),
		Type:                   domain.AuctionTypeDetran,
		DefaultFeePercent:      decimal.RequireFromString("5"),
		DefaultPatioFeePercent: decimal.Zero,
		Status:                 domain.AuctionActive,
	}
}

func TestAuctionService_Create_DefaultsTypeToOutros(t *testing.T) {
	svc := NewAuctionService(newFakeAuctionRepo(), newFakeLotRepo())

	created, err := svc.Create(context.Background(), domain.Auction{UserID: 1, Name: "Sem tipo"})
	require.NoError(t, err)

	assert.Equal(t, domain.AuctionTypeOutros, created.Type)
	assert.Equal(t, domain.AuctionActive, created.Status)
}

func TestAuctionService_Update_KeepsOwnerAndStatus(t *testing.T) {
	repo := newFakeAuctionRepo(testAuction(1, 7))
	svc := NewAuctionService(repo, newFakeLotRepo())

	updated, err := svc.Update(context.Background(), 7, domain.Auction{
		ID:     1,
		UserID: 99,
		Name:   "Renomeado",
		Type:   domain.AuctionTypeJudicial,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), updated.UserID)
	assert.Equal(t, domain.AuctionActive, updated.Status)
	assert.Equal(t, "Renomeado", updated.Name)
}

func TestAuctionService_Update_WrongOwner(t *testing.T) {
	svc := NewAuctionService(newFakeAuctionRepo(testAuction(1, 7)), newFakeLotRepo())

	_, err := svc.Update(context.Background(), 8, domain.Auction{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrNotAuctionOwner)
}

func TestAuctionService_ToggleArchive_RoundTrip(t *testing.T) {
	repo := newFakeAuctionRepo(testAuction(1, 7))
	svc := NewAuctionService(repo, newFakeLotRepo())

	archived, err := svc.ToggleArchive(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.AuctionArchived, archived.Status)

	active, err := svc.ToggleArchive(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.AuctionActive, active.Status)
}

func TestAuctionService_Delete_RemovesLotsWithAuction(t *testing.T) {
	repo := newFakeAuctionRepo(testAuction(1, 7))
	svc := NewAuctionService(repo, newFakeLotRepo())

	require.NoError(t, svc.Delete(context.Background(), 7, 1))
	assert.Equal(t, []uint{1}, repo.deletedWithLots)

	err := svc.Delete(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrAuctionNotFound)
}

func TestAuctionService_Summary(t *testing.T) {
	winning := decimal.RequireFromString("1000")
	lotRepo := newFakeLotRepo(
		domain.Lot{
			ID:         1,
			AuctionID:  1,
			Name:       "Gol G5",
			Status:     domain.LotPurchased,
			WinningBid: &winning,
			Items: []domain.LotItem{
				{ID: "a", Name: "Despachante", Cost: decimal.RequireFromString("350.50")},
			},
		},
		domain.Lot{ID: 2, AuctionID: 1, Name: "Uno Mille", Status: domain.LotPending},
		domain.Lot{ID: 3, AuctionID: 2, Name: "Outro leilão", Status: domain.LotPurchased},
	)

	auction := testAuction(1, 7)
	auction.DefaultFeePercent = decimal.RequireFromString("7")
	svc := NewAuctionService(newFakeAuctionRepo(auction), lotRepo)

	summary, err := svc.Summary(context.Background(), 7, 1)
	require.NoError(t, err)

	// 1000 * 1.07 + 350.50
	assert.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("1420.50")), summary.TotalSpent.String())
	assert.True(t, summary.Remaining.Equal(decimal.RequireFromString("3579.50")), summary.Remaining.String())
	assert.Equal(t, 2, summary.LotCount)
	assert.Equal(t, 1, summary.PurchasedCount)
}
