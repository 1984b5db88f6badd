package response

import (
	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/money"
	"github.com/lotecerto/lotecerto-api/internal/service"
)

type BreakdownResponse struct {
	BidAmount      decimal.Decimal `json:"bid_amount"`
	FeeAmount      decimal.Decimal `json:"fee_amount"`
	PatioAmount    decimal.Decimal `json:"patio_amount"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	OverLimit      *bool           `json:"over_limit,omitempty"`
}

func NewBreakdownResponse(b money.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		BidAmount:      b.BidAmount,
		FeeAmount:      b.FeeAmount,
		PatioAmount:    b.PatioAmount,
		Total:          b.Total,
		TotalFormatted: money.FormatBRL(b.Total),
	}
}

type LotStrategyResponse struct {
	FeePercent               decimal.Decimal    `json:"fee_percent"`
	PatioFeePercent          decimal.Decimal    `json:"patio_fee_percent"`
	ItemsCost                decimal.Decimal    `json:"items_cost"`
	Budget                   decimal.Decimal    `json:"budget"`
	SpentOnOtherLots         decimal.Decimal    `json:"spent_on_other_lots"`
	Remaining                decimal.Decimal    `json:"remaining"`
	RemainingFormatted       string             `json:"remaining_formatted"`
	SuggestedMaxBid          decimal.Decimal    `json:"suggested_max_bid"`
	SuggestedMaxBidFormatted string             `json:"suggested_max_bid_formatted"`
	Breakdown                *BreakdownResponse `json:"breakdown,omitempty"`
	TotalCost                *decimal.Decimal   `json:"total_cost,omitempty"`
	OverBudget               bool               `json:"over_budget"`
}

func NewLotStrategyResponse(strategy service.LotStrategy) LotStrategyResponse {
	resp := LotStrategyResponse{
		FeePercent:               strategy.FeePercent,
		PatioFeePercent:          strategy.PatioFeePercent,
		ItemsCost:                strategy.ItemsCost,
		Budget:                   strategy.Budget,
		SpentOnOtherLots:         strategy.SpentOnOtherLots,
		Remaining:                strategy.Remaining,
		RemainingFormatted:       money.FormatBRL(strategy.Remaining),
		SuggestedMaxBid:          strategy.SuggestedMaxBid,
		SuggestedMaxBidFormatted: money.FormatBRL(strategy.SuggestedMaxBid),
		TotalCost:                strategy.TotalCost,
		OverBudget:               strategy.OverBudget,
	}

	if strategy.Breakdown != nil {
		breakdown := NewBreakdownResponse(*strategy.Breakdown)
		resp.Breakdown = &breakdown
	}

	return resp
}
