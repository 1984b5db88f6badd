package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LotStatus string

const (
	LotPending   LotStatus = "pending"
	LotPurchased LotStatus = "purchased"
	LotLost      LotStatus = "lost"
)

// ValidLotStatus reports whether s is one of the three lot states. All
// transitions between them are allowed; corrections are expected.
func ValidLotStatus(s LotStatus) bool {
	return s == LotPending || s == LotPurchased || s == LotLost
}

// LotItem is an extra cost entry on a lot (parts, paperwork, repairs).
// Checked is a user-tracked completion flag and does not affect totals.
type LotItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Cost        decimal.Decimal `json:"cost"`
	Checked     bool            `json:"checked"`
	Observation string          `json:"observation,omitempty"`
}

// Lot is an individual item (typically a vehicle) offered within an auction.
// Override rates, when present, supersede the auction defaults for this lot.
type Lot struct {
	ID                      uint             `json:"id"`
	AuctionID               uint             `json:"auction_id"`
	Name                    string           `json:"name"`
	Description             string           `json:"description,omitempty"`
	Images                  []string         `json:"images"`
	InitialBidValue         decimal.Decimal  `json:"initial_bid_value"`
	FipeValue               decimal.Decimal  `json:"fipe_value"`
	BidIncrement            decimal.Decimal  `json:"bid_increment"`
	OverrideFeePercent      *decimal.Decimal `json:"override_fee_percent"`
	OverridePatioFeePercent *decimal.Decimal `json:"override_patio_fee_percent"`
	Items                   []LotItem        `json:"items"`
	Status                  LotStatus        `json:"status"`
	WinningBid              *decimal.Decimal `json:"winning_bid"`
	LotURL                  string           `json:"lot_url,omitempty"`
	SellingPrice            *decimal.Decimal `json:"selling_price"`
	Visited                 bool             `json:"visited"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}
