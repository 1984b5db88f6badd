package repository

import (
	"context"
	"fmt"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/repository/dao"
)

var ErrAuctionNotFound = dao.ErrAuctionNotFound

type AuctionDAO interface {
	Insert(ctx context.Context, auction dao.Auction) (dao.Auction, error)
	Update(ctx context.Context, auction dao.Auction) (dao.Auction, error)
	FindByID(ctx context.Context, id uint) (dao.Auction, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Auction, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	DeleteWithLots(ctx context.Context, id uint) error
}

type AuctionRepository struct {
	dao AuctionDAO
}

func NewAuctionRepository(dao AuctionDAO) *AuctionRepository {
	return &AuctionRepository{
		dao: dao,
	}
}

func (r *AuctionRepository) Create(ctx context.Context, auction domain.Auction) (domain.Auction, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(auction))
	if err != nil {
		return domain.Auction{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AuctionRepository) Update(ctx context.Context, auction domain.Auction) (domain.Auction, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(auction))
	if err != nil {
		return domain.Auction{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *AuctionRepository) FindByID(ctx context.Context, id uint) (domain.Auction, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Auction{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AuctionRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Auction, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	auctions := make([]domain.Auction, len(found))
	for i, a := range found {
		auctions[i] = r.daoToDomain(a)
	}

	return auctions, nil
}

func (r *AuctionRepository) UpdateStatus(ctx context.Context, id uint, status domain.AuctionStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *AuctionRepository) DeleteWithLots(ctx context.Context, id uint) error {
	if err := r.dao.DeleteWithLots(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteWithLots -> %w", err)
	}

	return nil
}

// The dao rows use snake_case columns; these two functions are the explicit
// mapping boundary to the camelCase-facing domain structs.

func (r *AuctionRepository) domainToDao(a domain.Auction) dao.Auction {
	return dao.Auction{
		ID:                     a.ID,
		UserID:                 a.UserID,
		Name:                   a.Name,
		Date:                   a.Date,
		Budget:                 a.Budget,
		Type:                   string(a.Type),
		DefaultFeePercent:      a.DefaultFeePercent,
		DefaultPatioFeePercent: a.DefaultPatioFeePercent,
		Description:            a.Description,
		BannerImage:            a.BannerImage,
		VisitationStart:        a.VisitationStart,
		VisitationEnd:          a.VisitationEnd,
		SiteURL:                a.SiteURL,
		Visited:                a.Visited,
		Status:                 string(a.Status),
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

func (r *AuctionRepository) daoToDomain(a dao.Auction) domain.Auction {
	return domain.Auction{
		ID:                     a.ID,
		UserID:                 a.UserID,
		Name:                   a.Name,
		Date:                   a.Date,
		Budget:                 a.Budget,
		Type:                   domain.AuctionType(a.Type),
		DefaultFeePercent:      a.DefaultFeePercent,
		DefaultPatioFeePercent: a.DefaultPatioFeePercent,
		Description:            a.Description,
		BannerImage:            a.BannerImage,
		VisitationStart:        a.VisitationStart,
		VisitationEnd:          a.VisitationEnd,
		SiteURL:                a.SiteURL,
		Visited:                a.Visited,
		Status:                 domain.AuctionStatus(a.Status),
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}
