package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/money"
	"github.com/lotecerto/lotecerto-api/internal/service"
)

type PortfolioEntryResponse struct {
	Lot         domain.Lot       `json:"lot"`
	AuctionName string           `json:"auction_name"`
	AuctionDate *time.Time       `json:"auction_date"`
	TotalCost   decimal.Decimal  `json:"total_cost"`
	Revenue     decimal.Decimal  `json:"revenue"`
	HasSale     bool             `json:"has_sale"`
	Profit      *decimal.Decimal `json:"profit,omitempty"`
	ROIPercent  *decimal.Decimal `json:"roi_percent,omitempty"`
}

type PortfolioResponse struct {
	Entries                []PortfolioEntryResponse `json:"entries"`
	TotalInvested          decimal.Decimal          `json:"total_invested"`
	TotalInvestedFormatted string                   `json:"total_invested_formatted"`
	TotalRevenue           decimal.Decimal          `json:"total_revenue"`
	TotalProfit            decimal.Decimal          `json:"total_profit"`
	TotalProfitFormatted   string                   `json:"total_profit_formatted"`
	SoldCount              int                      `json:"sold_count"`
	GlobalROIPercent       decimal.Decimal          `json:"global_roi_percent"`
}

// NewPortfolioResponse hides profit and ROI for lots that have no selling
// price yet; the figures exist but mean nothing until a sale is recorded.
func NewPortfolioResponse(p service.Portfolio) PortfolioResponse {
	entries := make([]PortfolioEntryResponse, 0, len(p.Entries))
	for _, entry := range p.Entries {
		r := PortfolioEntryResponse{
			Lot:         entry.Lot,
			AuctionName: entry.AuctionName,
			AuctionDate: entry.AuctionDate,
			TotalCost:   entry.TotalCost,
			Revenue:     entry.Revenue,
			HasSale:     entry.HasSale,
		}
		if entry.HasSale {
			profit := entry.Profit
			roi := entry.ROIPercent
			r.Profit = &profit
			r.ROIPercent = &roi
		}
		entries = append(entries, r)
	}

	return PortfolioResponse{
		Entries:                entries,
		TotalInvested:          p.TotalInvested,
		TotalInvestedFormatted: money.FormatBRL(p.TotalInvested),
		TotalRevenue:           p.TotalRevenue,
		TotalProfit:            p.TotalProfit,
		TotalProfitFormatted:   money.FormatBRL(p.TotalProfit),
		SoldCount:              p.SoldCount,
		GlobalROIPercent:       p.GlobalROIPercent,
	}
}
