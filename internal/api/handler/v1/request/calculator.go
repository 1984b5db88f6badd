package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type BreakdownRequest struct {
	BidCents        string          `json:"bid_cents"`
	FeePercent      decimal.Decimal `json:"fee_percent"`
	PatioFeePercent decimal.Decimal `json:"patio_fee_percent"`
	LimitCents      string          `json:"limit_cents"`
}

func (req *BreakdownRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BidCents, validation.Required),
	)
}

type MaxBidRequest struct {
	LimitCents      string          `json:"limit_cents"`
	FeePercent      decimal.Decimal `json:"fee_percent"`
	PatioFeePercent decimal.Decimal `json:"patio_fee_percent"`
}

func (req *MaxBidRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.LimitCents, validation.Required),
	)
}
