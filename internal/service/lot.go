package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/money"
	"github.com/lotecerto/lotecerto-api/internal/repository"
)

var (
	ErrLotNotFound      = repository.ErrLotNotFound
	ErrLotItemNotFound  = errors.New("lot item not found")
	ErrInvalidLotStatus = errors.New("invalid lot status")
)

type LotRepository interface {
	Create(ctx context.Context, lot domain.Lot) (domain.Lot, error)
	Update(ctx context.Context, lot domain.Lot) (domain.Lot, error)
	FindByID(ctx context.Context, id uint) (domain.Lot, error)
	FindByAuctionID(ctx context.Context, auctionID uint) ([]domain.Lot, error)
	Delete(ctx context.Context, id uint) error
}

type LotAuctionRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Auction, error)
}

type LotService struct {
	repo        LotRepository
	auctionRepo LotAuctionRepository
}

func NewLotService(repo LotRepository, auctionRepo LotAuctionRepository) *LotService {
	return &LotService{
		repo:        repo,
		auctionRepo: auctionRepo,
	}
}

// ListByAuction returns the auction's lots with the ones still in play
// first, each group ordered by name.
func (s *LotService) ListByAuction(ctx context.Context, userID, auctionID uint) ([]domain.Lot, error) {
	if _, err := s.getOwnedAuction(ctx, userID, auctionID); err != nil {
		return nil, err
	}

	lots, err := s.repo.FindByAuctionID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByAuctionID -> %w", err)
	}

	sort.SliceStable(lots, func(i, j int) bool {
		iDone := lots[i].Status == domain.LotPurchased
		jDone := lots[j].Status == domain.LotPurchased
		if iDone != jDone {
			return !iDone
		}

		return lots[i].Name < lots[j].Name
	})

	return lots, nil
}

func (s *LotService) Create(ctx context.Context, userID uint, lot domain.Lot) (domain.Lot, error) {
	if _, err := s.getOwnedAuction(ctx, userID, lot.AuctionID); err != nil {
		return domain.Lot{}, err
	}

	lot.Status = domain.LotPending
	lot.WinningBid = nil
	lot.SellingPrice = nil

	created, err := s.repo.Create(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *LotService) Update(ctx context.Context, userID uint, lot domain.Lot) (domain.Lot, error) {
	current, _, err := s.getOwnedLot(ctx, userID, lot.ID)
	if err != nil {
		return domain.Lot{}, err
	}

	lot.AuctionID = current.AuctionID
	lot.Status = current.Status
	lot.WinningBid = current.WinningBid
	lot.SellingPrice = current.SellingPrice
	lot.Images = current.Images
	lot.Items = current.Items

	updated, err := s.repo.Update(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *LotService) Delete(ctx context.Context, userID, lotID uint) error {
	if _, _, err := s.getOwnedLot(ctx, userID, lotID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, lotID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// SetStatus moves a lot to any of the three states. Leaving purchased
// keeps the recorded winning bid so that flipping back restores it.
func (s *LotService) SetStatus(ctx context.Context, userID, lotID uint, status domain.LotStatus) (domain.Lot, error) {
	if !domain.ValidLotStatus(status) {
		return domain.Lot{}, ErrInvalidLotStatus
	}

	lot, _, err := s.getOwnedLot(ctx, userID, lotID)
	if err != nil {
		return domain.Lot{}, err
	}

	lot.Status = status

	updated, err := s.repo.Update(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// SetSale records the winning bid and/or selling price from centavo
// strings. An empty string clears the corresponding value.
func (s *LotService) SetSale(ctx context.Context, userID, lotID uint, winningBidCents, sellingPriceCents *string) (domain.Lot, error) {
	lot, _, err := s.getOwnedLot(ctx, userID, lotID)
	if err != nil {
		return domain.Lot{}, err
	}

	if winningBidCents != nil {
		lot.WinningBid = parseOptionalCents(*winningBidCents)
	}
	if sellingPriceCents != nil {
		lot.SellingPrice = parseOptionalCents(*sellingPriceCents)
	}

	updated, err := s.repo.Update(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *LotService) AddItem(ctx context.Context, userID, lotID uint, item domain.LotItem) (domain.Lot, error) {
	lot, _, err := s.getOwnedLot(ctx, userID, lotID)
	if err != nil {
		return domain.Lot{}, err
	}

	item.ID = uuid.NewString()
	item.Checked = false
	lot.Items = append(lot.Items, item)

	updated, err := s.repo.Update(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *LotService) ToggleItemCheck(ctx context.Context, userID, lotID uint, itemID string) (domain.Lot, error) {
	lot, _, err := s.getOwnedLot(ctx, userID, lotID)
	if err != nil {
		return domain.Lot{}, err
	}

	found := false
	for i := range lot.Items {
		if lot.Items[i].ID == itemID {
			lot.Items[i].Checked = !lot.Items[i].Checked
			found = true
			break
		}
	}
	if !found {
		return domain.Lot{}, ErrLotItemNotFound
	}

	updated, err := s.repo.Update(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *LotService) RemoveItem(ctx context.Context, userID, lotID uint, itemID string) (domain.Lot, error) {
	lot, _, err := s.getOwnedLot(ctx, userID, lotID)
	if err != nil {
		return domain.Lot{}, err
	}

	kept := lot.Items[:0]
	found := false
	for _, item := range lot.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return domain.Lot{}, ErrLotItemNotFound
	}
	lot.Items = kept

	updated, err := s.repo.Update(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *LotService) AttachImages(ctx context.Context, userID, lotID uint, images []string) (domain.Lot, error) {
	lot, _, err := s.getOwnedLot(ctx, userID, lotID)
	if err != nil {
		return domain.Lot{}, err
	}

	lot.Images = append(lot.Images, images...)

	updated, err := s.repo.Update(ctx, lot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// LotStrategy is the bidding picture for one lot: effective rates, the
// budget headroom it can still claim and, once a winning bid is in, the
// realized cost against the auction budget.
type LotStrategy struct {
	FeePercent       decimal.Decimal
	PatioFeePercent  decimal.Decimal
	ItemsCost        decimal.Decimal
	Budget           decimal.Decimal
	SpentOnOtherLots decimal.Decimal
	Remaining        decimal.Decimal
	SuggestedMaxBid  decimal.Decimal
	Breakdown        *money.Breakdown
	TotalCost        *decimal.Decimal
	OverBudget       bool
}

func (s *LotService) Strategy(ctx context.Context, userID, lotID uint) (LotStrategy, error) {
	lot, auction, err := s.getOwnedLot(ctx, userID, lotID)
	if err != nil {
		return LotStrategy{}, err
	}

	lots, err := s.repo.FindByAuctionID(ctx, auction.ID)
	if err != nil {
		return LotStrategy{}, fmt.Errorf("s.repo.FindByAuctionID -> %w", err)
	}

	fee := money.EffectiveRate(lot.OverrideFeePercent, auction.DefaultFeePercent)
	patio := money.EffectiveRate(lot.OverridePatioFeePercent, auction.DefaultPatioFeePercent)
	remaining := money.RemainingForLot(lots, lot.ID, auction)

	strategy := LotStrategy{
		FeePercent:       fee,
		PatioFeePercent:  patio,
		ItemsCost:        money.ItemsCost(lot.Items),
		Budget:           auction.Budget,
		SpentOnOtherLots: auction.Budget.Sub(remaining),
		Remaining:        remaining,
		SuggestedMaxBid:  money.SuggestedMaxBid(lots, lot, auction),
	}

	if lot.WinningBid != nil {
		breakdown := money.ComputeBreakdown(*lot.WinningBid, fee, patio)
		total := breakdown.Total.Add(strategy.ItemsCost)
		strategy.Breakdown = &breakdown
		strategy.TotalCost = &total
		strategy.OverBudget = total.GreaterThan(remaining)
	}

	return strategy, nil
}

func (s *LotService) getOwnedLot(ctx context.Context, userID, lotID uint) (domain.Lot, domain.Auction, error) {
	lot, err := s.repo.FindByID(ctx, lotID)
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return domain.Lot{}, domain.Auction{}, ErrLotNotFound
		}

		return domain.Lot{}, domain.Auction{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	auction, err := s.getOwnedAuction(ctx, userID, lot.AuctionID)
	if err != nil {
		return domain.Lot{}, domain.Auction{}, err
	}

	return lot, auction, nil
}

func (s *LotService) getOwnedAuction(ctx context.Context, userID, auctionID uint) (domain.Auction, error) {
	auction, err := s.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return domain.Auction{}, ErrAuctionNotFound
		}

		return domain.Auction{}, fmt.Errorf("s.auctionRepo.FindByID -> %w", err)
	}

	if auction.UserID != userID {
		return domain.Auction{}, ErrNotAuctionOwner
	}

	return auction, nil
}

func parseOptionalCents(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}

	v := money.ParseCents(raw)
	return &v
}
