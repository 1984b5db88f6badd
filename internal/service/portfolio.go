package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/money"
)

type PortfolioLotRepository interface {
	FindPurchasedByUserID(ctx context.Context, userID uint) ([]domain.Lot, error)
}

type PortfolioAuctionRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]domain.Auction, error)
}

type PortfolioService struct {
	lotRepo     PortfolioLotRepository
	auctionRepo PortfolioAuctionRepository
}

func NewPortfolioService(lotRepo PortfolioLotRepository, auctionRepo PortfolioAuctionRepository) *PortfolioService {
	return &PortfolioService{
		lotRepo:     lotRepo,
		auctionRepo: auctionRepo,
	}
}

// PortfolioEntry is one purchased lot with its realized figures. Profit
// and ROI are always computed; HasSale tells presentation whether a
// positive selling price backs them. A recorded price of zero is treated
// as "not sold yet", the same as no price at all.
type PortfolioEntry struct {
	Lot         domain.Lot
	AuctionName string
	AuctionDate *time.Time
	TotalCost   decimal.Decimal
	Revenue     decimal.Decimal
	Profit      decimal.Decimal
	ROIPercent  decimal.Decimal
	HasSale     bool
}

// Portfolio aggregates every purchased lot across the user's auctions.
// Revenue and profit only count lots that were actually resold.
type Portfolio struct {
	Entries          []PortfolioEntry
	TotalInvested    decimal.Decimal
	TotalRevenue     decimal.Decimal
	TotalProfit      decimal.Decimal
	SoldCount        int
	GlobalROIPercent decimal.Decimal
}

func (s *PortfolioService) Get(ctx context.Context, userID uint) (Portfolio, error) {
	lots, err := s.lotRepo.FindPurchasedByUserID(ctx, userID)
	if err != nil {
		return Portfolio{}, fmt.Errorf("s.lotRepo.FindPurchasedByUserID -> %w", err)
	}

	auctions, err := s.auctionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return Portfolio{}, fmt.Errorf("s.auctionRepo.FindByUserID -> %w", err)
	}

	byID := make(map[uint]domain.Auction, len(auctions))
	for _, auction := range auctions {
		byID[auction.ID] = auction
	}

	portfolio := Portfolio{
		Entries:          make([]PortfolioEntry, 0, len(lots)),
		TotalInvested:    decimal.Zero,
		TotalRevenue:     decimal.Zero,
		TotalProfit:      decimal.Zero,
		GlobalROIPercent: decimal.Zero,
	}

	for _, lot := range lots {
		auction := byID[lot.AuctionID]
		cost := money.LotTotalCost(lot, auction)

		revenue := decimal.Zero
		hasSale := lot.SellingPrice != nil && lot.SellingPrice.GreaterThan(decimal.Zero)
		if hasSale {
			revenue = *lot.SellingPrice
		}
		result := money.ProfitAndROI(revenue, cost)

		portfolio.Entries = append(portfolio.Entries, PortfolioEntry{
			Lot:         lot,
			AuctionName: auction.Name,
			AuctionDate: auction.Date,
			TotalCost:   cost,
			Revenue:     revenue,
			Profit:      result.Profit,
			ROIPercent:  result.ROIPercent,
			HasSale:     hasSale,
		})

		portfolio.TotalInvested = portfolio.TotalInvested.Add(cost)
		if hasSale {
			portfolio.TotalRevenue = portfolio.TotalRevenue.Add(revenue)
			portfolio.TotalProfit = portfolio.TotalProfit.Add(result.Profit)
			portfolio.SoldCount++
		}
	}

	soldCost := portfolio.TotalRevenue.Sub(portfolio.TotalProfit)
	if portfolio.TotalRevenue.GreaterThan(decimal.Zero) && !soldCost.IsZero() {
		portfolio.GlobalROIPercent = portfolio.TotalProfit.Div(soldCost).Mul(decimal.NewFromInt(100))
	}

	return portfolio, nil
}
