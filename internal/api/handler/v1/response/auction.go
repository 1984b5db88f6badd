package response

import (
	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/money"
	"github.com/lotecerto/lotecerto-api/internal/service"
)

type AuctionSummaryResponse struct {
	Auction             domain.Auction  `json:"auction"`
	TotalSpent          decimal.Decimal `json:"total_spent"`
	TotalSpentFormatted string          `json:"total_spent_formatted"`
	Remaining           decimal.Decimal `json:"remaining"`
	RemainingFormatted  string          `json:"remaining_formatted"`
	LotCount            int             `json:"lot_count"`
	PurchasedCount      int             `json:"purchased_count"`
}

func NewAuctionSummaryResponse(summary service.AuctionSummary) AuctionSummaryResponse {
	return AuctionSummaryResponse{
		Auction:             summary.Auction,
		TotalSpent:          summary.TotalSpent,
		TotalSpentFormatted: money.FormatBRL(summary.TotalSpent),
		Remaining:           summary.Remaining,
		RemainingFormatted:  money.FormatBRL(summary.Remaining),
		LotCount:            summary.LotCount,
		PurchasedCount:      summary.PurchasedCount,
	}
}
