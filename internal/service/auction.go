package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/money"
	"github.com/lotecerto/lotecerto-api/internal/repository"
)

var (
	ErrAuctionNotFound = repository.ErrAuctionNotFound
	ErrNotAuctionOwner = errors.New("auction does not belong to user")
)

type AuctionRepository interface {
	Create(ctx context.Context, auction domain.Auction) (domain.Auction, error)
	Update(ctx context.Context, auction domain.Auction) (domain.Auction, error)
	FindByID(ctx context.Context, id uint) (domain.Auction, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Auction, error)
	UpdateStatus(ctx context.Context, id uint, status domain.AuctionStatus) error
	DeleteWithLots(ctx context.Context, id uint) error
}

type AuctionLotRepository interface {
	FindByAuctionID(ctx context.Context, auctionID uint) ([]domain.Lot, error)
}

type AuctionService struct {
	repo    AuctionRepository
	lotRepo AuctionLotRepository
}

func NewAuctionService(repo AuctionRepository, lotRepo AuctionLotRepository) *AuctionService {
	return &AuctionService{
		repo:    repo,
		lotRepo: lotRepo,
	}
}

// AuctionSummary carries an auction together with the budget figures
// derived from its purchased lots.
type AuctionSummary struct {
	Auction        domain.Auction
	TotalSpent     decimal.Decimal
	Remaining      decimal.Decimal
	LotCount       int
	PurchasedCount int
}

func (s *AuctionService) List(ctx context.Context, userID uint) ([]domain.Auction, error) {
	auctions, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return auctions, nil
}

func (s *AuctionService) Create(ctx context.Context, auction domain.Auction) (domain.Auction, error) {
	if auction.Type == "" {
		auction.Type = domain.AuctionTypeOutros
	}
	auction.Status = domain.AuctionActive

	created, err := s.repo.Create(ctx, auction)
	if err != nil {
		return domain.Auction{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuctionService) Update(ctx context.Context, userID uint, auction domain.Auction) (domain.Auction, error) {
	current, err := s.getOwned(ctx, userID, auction.ID)
	if err != nil {
		return domain.Auction{}, err
	}

	auction.UserID = current.UserID
	auction.Status = current.Status
	if auction.Type == "" {
		auction.Type = current.Type
	}

	updated, err := s.repo.Update(ctx, auction)
	if err != nil {
		return domain.Auction{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ToggleArchive flips an auction between active and archived.
func (s *AuctionService) ToggleArchive(ctx context.Context, userID, auctionID uint) (domain.Auction, error) {
	auction, err := s.getOwned(ctx, userID, auctionID)
	if err != nil {
		return domain.Auction{}, err
	}

	next := domain.AuctionArchived
	if auction.Status == domain.AuctionArchived {
		next = domain.AuctionActive
	}

	if err = s.repo.UpdateStatus(ctx, auctionID, next); err != nil {
		return domain.Auction{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	auction.Status = next
	return auction, nil
}

// Delete removes an auction and every lot that belongs to it.
func (s *AuctionService) Delete(ctx context.Context, userID, auctionID uint) error {
	if _, err := s.getOwned(ctx, userID, auctionID); err != nil {
		return err
	}

	if err := s.repo.DeleteWithLots(ctx, auctionID); err != nil {
		return fmt.Errorf("s.repo.DeleteWithLots -> %w", err)
	}

	return nil
}

func (s *AuctionService) Summary(ctx context.Context, userID, auctionID uint) (AuctionSummary, error) {
	auction, err := s.getOwned(ctx, userID, auctionID)
	if err != nil {
		return AuctionSummary{}, err
	}

	lots, err := s.lotRepo.FindByAuctionID(ctx, auctionID)
	if err != nil {
		return AuctionSummary{}, fmt.Errorf("s.lotRepo.FindByAuctionID -> %w", err)
	}

	spent := money.TotalSpent(lots, auction)
	purchased := 0
	for _, lot := range lots {
		if lot.Status == domain.LotPurchased {
			purchased++
		}
	}

	return AuctionSummary{
		Auction:        auction,
		TotalSpent:     spent,
		Remaining:      auction.Budget.Sub(spent),
		LotCount:       len(lots),
		PurchasedCount: purchased,
	}, nil
}

func (s *AuctionService) getOwned(ctx context.Context, userID, auctionID uint) (domain.Auction, error) {
	auction, err := s.repo.FindByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return domain.Auction{}, ErrAuctionNotFound
		}

		return domain.Auction{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if auction.UserID != userID {
		return domain.Auction{}, ErrNotAuctionOwner
	}

	return auction, nil
}
