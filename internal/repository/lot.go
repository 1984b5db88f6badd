package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/repository/dao"
)

var ErrLotNotFound = dao.ErrLotNotFound

type LotDAO interface {
	Insert(ctx context.Context, lot dao.Lot) (dao.Lot, error)
	Update(ctx context.Context, lot dao.Lot) (dao.Lot, error)
	FindByID(ctx context.Context, id uint) (dao.Lot, error)
	FindByAuctionID(ctx context.Context, auctionID uint) ([]dao.Lot, error)
	FindPurchasedByUserID(ctx context.Context, userID uint) ([]dao.Lot, error)
	Delete(ctx context.Context, id uint) error
}

type LotRepository struct {
	dao LotDAO
}

func NewLotRepository(dao LotDAO) *LotRepository {
	return &LotRepository{
		dao: dao,
	}
}

func (r *LotRepository) Create(ctx context.Context, lot domain.Lot) (domain.Lot, error) {
	daoLot, err := r.domainToDao(lot)
	if err != nil {
		return domain.Lot{}, err
	}

	created, err := r.dao.Insert(ctx, daoLot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created)
}

func (r *LotRepository) Update(ctx context.Context, lot domain.Lot) (domain.Lot, error) {
	daoLot, err := r.domainToDao(lot)
	if err != nil {
		return domain.Lot{}, err
	}

	updated, err := r.dao.Update(ctx, daoLot)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated)
}

func (r *LotRepository) FindByID(ctx context.Context, id uint) (domain.Lot, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Lot{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found)
}

func (r *LotRepository) FindByAuctionID(ctx context.Context, auctionID uint) ([]domain.Lot, error) {
	found, err := r.dao.FindByAuctionID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAuctionID -> %w", err)
	}

	return r.daosToDomain(found)
}

func (r *LotRepository) FindPurchasedByUserID(ctx context.Context, userID uint) ([]domain.Lot, error) {
	found, err := r.dao.FindPurchasedByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPurchasedByUserID -> %w", err)
	}

	return r.daosToDomain(found)
}

func (r *LotRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *LotRepository) daosToDomain(daoLots []dao.Lot) ([]domain.Lot, error) {
	lots := make([]domain.Lot, len(daoLots))
	for i, l := range daoLots {
		lot, err := r.daoToDomain(l)
		if err != nil {
			return nil, err
		}
		lots[i] = lot
	}

	return lots, nil
}

// Images and extra cost items live in JSONB columns; the mapping marshals
// them explicitly instead of leaning on gorm serializers.

func (r *LotRepository) domainToDao(l domain.Lot) (dao.Lot, error) {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return dao.Lot{}, fmt.Errorf("json.Marshal(images) -> %w", err)
	}

	items := l.Items
	if items == nil {
		items = []domain.LotItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return dao.Lot{}, fmt.Errorf("json.Marshal(items) -> %w", err)
	}

	return dao.Lot{
		ID:                      l.ID,
		AuctionID:               l.AuctionID,
		Name:                    l.Name,
		Description:             l.Description,
		Images:                  datatypes.JSON(imagesJSON),
		Items:                   datatypes.JSON(itemsJSON),
		InitialBidValue:         l.InitialBidValue,
		FipeValue:               l.FipeValue,
		BidIncrement:            l.BidIncrement,
		OverrideFeePercent:      l.OverrideFeePercent,
		OverridePatioFeePercent: l.OverridePatioFeePercent,
		Status:                  string(l.Status),
		WinningBid:              l.WinningBid,
		SellingPrice:            l.SellingPrice,
		LotURL:                  l.LotURL,
		Visited:                 l.Visited,
		CreatedAt:               l.CreatedAt,
		UpdatedAt:               l.UpdatedAt,
	}, nil
}

func (r *LotRepository) daoToDomain(l dao.Lot) (domain.Lot, error) {
	images := []string{}
	if len(l.Images) > 0 {
		if err := json.Unmarshal(l.Images, &images); err != nil {
			return domain.Lot{}, fmt.Errorf("json.Unmarshal(images) -> %w", err)
		}
	}

	items := []domain.LotItem{}
	if len(l.Items) > 0 {
		if err := json.Unmarshal(l.Items, &items); err != nil {
			return domain.Lot{}, fmt.Errorf("json.Unmarshal(items) -> %w", err)
		}
	}

	status := domain.LotStatus(l.Status)
	if status == "" {
		status = domain.LotPending
	}

	return domain.Lot{
		ID:                      l.ID,
		AuctionID:               l.AuctionID,
		Name:                    l.Name,
		Description:             l.Description,
		Images:                  images,
		Items:                   items,
		InitialBidValue:         l.InitialBidValue,
		FipeValue:               l.FipeValue,
		BidIncrement:            l.BidIncrement,
		OverrideFeePercent:      l.OverrideFeePercent,
		OverridePatioFeePercent: l.OverridePatioFeePercent,
		Status:                  status,
		WinningBid:              l.WinningBid,
		SellingPrice:            l.SellingPrice,
		LotURL:                  l.LotURL,
		Visited:                 l.Visited,
		CreatedAt:               l.CreatedAt,
		UpdatedAt:               l.UpdatedAt,
	}, nil
}
