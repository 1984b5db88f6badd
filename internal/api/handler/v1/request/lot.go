package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/money"
)

// SaveLotRequest is shared by create and update. Money fields are centavo
// digit strings; nil override percents fall back to the auction defaults.
type SaveLotRequest struct {
	Name                    string           `json:"name"`
	Description             string           `json:"description"`
	InitialBidCents         string           `json:"initial_bid_cents"`
	FipeCents               string           `json:"fipe_cents"`
	BidIncrementCents       string           `json:"bid_increment_cents"`
	OverrideFeePercent      *decimal.Decimal `json:"override_fee_percent"`
	OverridePatioFeePercent *decimal.Decimal `json:"override_patio_fee_percent"`
	LotURL                  string           `json:"lot_url"`
	Visited                 bool             `json:"visited"`
}

func (req *SaveLotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}

func (req *SaveLotRequest) ToDomain(auctionID uint) domain.Lot {
	return domain.Lot{
		AuctionID:               auctionID,
		Name:                    req.Name,
		Description:             req.Description,
		InitialBidValue:         money.ParseCents(req.InitialBidCents),
		FipeValue:               money.ParseCents(req.FipeCents),
		BidIncrement:            money.ParseCents(req.BidIncrementCents),
		OverrideFeePercent:      req.OverrideFeePercent,
		OverridePatioFeePercent: req.OverridePatioFeePercent,
		LotURL:                  req.LotURL,
		Visited:                 req.Visited,
	}
}

type SetLotStatusRequest struct {
	Status string `json:"status"`
}

func (req *SetLotStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.LotPending),
			string(domain.LotPurchased),
			string(domain.LotLost),
		)),
	)
}

// SetSaleRequest updates the winning bid and/or selling price. A nil field
// is left untouched; an empty string clears the value.
type SetSaleRequest struct {
	WinningBidCents   *string `json:"winning_bid_cents"`
	SellingPriceCents *string `json:"selling_price_cents"`
}

type AddLotItemRequest struct {
	Name        string `json:"name"`
	CostCents   string `json:"cost_cents"`
	Observation string `json:"observation"`
}

func (req *AddLotItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}

func (req *AddLotItemRequest) ToDomain() domain.LotItem {
	return domain.LotItem{
		Name:        req.Name,
		Cost:        money.ParseCents(req.CostCents),
		Observation: req.Observation,
	}
}
