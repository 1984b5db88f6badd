package request

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLotRequest_ToDomain_ParsesCents(t *testing.T) {
	req := SaveLotRequest{
		Name:            "Gol G5",
		InitialBidCents: "150000",
		FipeCents:       "2.500,00", // stray formatting is stripped
	}
	require.NoError(t, req.Validate())

	lot := req.ToDomain(3)

	assert.Equal(t, uint(3), lot.AuctionID)
	assert.True(t, lot.InitialBidValue.Equal(decimal.RequireFromString("1500")))
	assert.True(t, lot.FipeValue.Equal(decimal.RequireFromString("2500")))
	assert.True(t, lot.BidIncrement.IsZero())
	assert.Nil(t, lot.OverrideFeePercent)
}

func TestSaveLotRequest_Validate_RequiresName(t *testing.T) {
	req := SaveLotRequest{}
	assert.Error(t, req.Validate())
}

func TestSetLotStatusRequest_Validate(t *testing.T) {
	for _, status := range []string{"pending", "purchased", "lost"} {
		req := SetLotStatusRequest{Status: status}
		assert.NoError(t, req.Validate(), status)
	}

	assert.Error(t, (&SetLotStatusRequest{Status: "sold"}).Validate())
	assert.Error(t, (&SetLotStatusRequest{}).Validate())
}

func TestAddLotItemRequest_ToDomain(t *testing.T) {
	req := AddLotItemRequest{Name: "Despachante", CostCents: "35050", Observation: "urgente"}
	require.NoError(t, req.Validate())

	item := req.ToDomain()
	assert.True(t, item.Cost.Equal(decimal.RequireFromString("350.50")))
	assert.Equal(t, "urgente", item.Observation)
	assert.Empty(t, item.ID)
}
