package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrAuctionNotFound = errors.New("auction not found")

type Auction struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	Name string `gorm:"not null"`
	Date *time.Time

	Budget                 decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Type                   string          `gorm:"not null;default:Outros"`
	DefaultFeePercent      decimal.Decimal `gorm:"type:numeric(6,2);not null;default:5"`
	DefaultPatioFeePercent decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`

	Description     string
	BannerImage     string `gorm:"type:text"`
	VisitationStart *time.Time
	VisitationEnd   *time.Time
	SiteURL         string
	Visited         bool   `gorm:"not null;default:false"`
	Status          string `gorm:"not null;default:active"` // "active" or "archived"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AuctionDAO struct {
	db *gorm.DB
}

func NewAuctionDAO(db *gorm.DB) *AuctionDAO {
	return &AuctionDAO{
		db: db,
	}
}

func (d *AuctionDAO) Insert(ctx context.Context, auction Auction) (Auction, error) {
	result := d.db.WithContext(ctx).Create(&auction)
	if result.Error != nil {
		return Auction{}, result.Error
	}

	return auction, nil
}

func (d *AuctionDAO) Update(ctx context.Context, auction Auction) (Auction, error) {
	result := d.db.WithContext(ctx).Save(&auction)
	if result.Error != nil {
		return Auction{}, result.Error
	}

	return auction, nil
}

func (d *AuctionDAO) FindByID(ctx context.Context, id uint) (Auction, error) {
	var auction Auction

	result := d.db.WithContext(ctx).First(&auction, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Auction{}, ErrAuctionNotFound
		}

		return Auction{}, result.Error
	}

	return auction, nil
}

// FindByUserID lists a user's auctions ordered by event date, undated ones
// last, matching the listing order of the client.
func (d *AuctionDAO) FindByUserID(ctx context.Context, userID uint) ([]Auction, error) {
	var auctions []Auction

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC NULLS LAST").
		Order("id ASC").
		Find(&auctions)
	if result.Error != nil {
		return nil, result.Error
	}

	return auctions, nil
}

func (d *AuctionDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).Model(&Auction{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAuctionNotFound
	}

	return nil
}

// DeleteWithLots removes an auction and all of its lots, lots first, inside a
// single transaction so a partial failure never strands orphaned rows.
func (d *AuctionDAO) DeleteWithLots(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("auction_id = ?", id).Delete(&Lot{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Auction{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAuctionNotFound
		}

		return nil
	})
}
