package response

import (
	"github.com/shopspring/decimal"
)

type MaxBidResponse struct {
	MaxBid          decimal.Decimal `json:"max_bid"`
	MaxBidFormatted string          `json:"max_bid_formatted"`
}
