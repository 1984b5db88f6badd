package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrLotNotFound = errors.New("lot not found")

type Lot struct {
	ID        uint `gorm:"primaryKey"`
	AuctionID uint `gorm:"index;not null"`

	Name        string `gorm:"not null"`
	Description string

	Images datatypes.JSON `gorm:"type:jsonb"` // []string of base64 data URLs
	Items  datatypes.JSON `gorm:"type:jsonb"` // []domain.LotItem

	InitialBidValue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FipeValue       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	BidIncrement    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	OverrideFeePercent      *decimal.Decimal `gorm:"type:numeric(6,2)"`
	OverridePatioFeePercent *decimal.Decimal `gorm:"type:numeric(6,2)"`

	Status       string           `gorm:"not null;default:pending"` // "pending", "purchased" or "lost"
	WinningBid   *decimal.Decimal `gorm:"type:numeric(14,2)"`
	SellingPrice *decimal.Decimal `gorm:"type:numeric(14,2)"`

	LotURL  string
	Visited bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LotDAO struct {
	db *gorm.DB
}

func NewLotDAO(db *gorm.DB) *LotDAO {
	return &LotDAO{
		db: db,
	}
}

func (d *LotDAO) Insert(ctx context.Context, lot Lot) (Lot, error) {
	result := d.db.WithContext(ctx).Create(&lot)
	if result.Error != nil {
		return Lot{}, result.Error
	}

	return lot, nil
}

func (d *LotDAO) Update(ctx context.Context, lot Lot) (Lot, error) {
	result := d.db.WithContext(ctx).Save(&lot)
	if result.Error != nil {
		return Lot{}, result.Error
	}

	return lot, nil
}

func (d *LotDAO) FindByID(ctx context.Context, id uint) (Lot, error) {
	var lot Lot

	result := d.db.WithContext(ctx).First(&lot, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Lot{}, ErrLotNotFound
		}

		return Lot{}, result.Error
	}

	return lot, nil
}

func (d *LotDAO) FindByAuctionID(ctx context.Context, auctionID uint) ([]Lot, error) {
	var lots []Lot

	result := d.db.WithContext(ctx).Where("auction_id = ?", auctionID).Find(&lots)
	if result.Error != nil {
		return nil, result.Error
	}

	return lots, nil
}

// FindPurchasedByUserID lists every purchased lot across all of the user's
// auctions, feeding the portfolio ledger.
func (d *LotDAO) FindPurchasedByUserID(ctx context.Context, userID uint) ([]Lot, error) {
	var lots []Lot

	result := d.db.WithContext(ctx).
		Joins("JOIN auctions ON auctions.id = lots.auction_id").
		Where("auctions.user_id = ? AND lots.status = ?", userID, "purchased").
		Find(&lots)
	if result.Error != nil {
		return nil, result.Error
	}

	return lots, nil
}

func (d *LotDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Lot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLotNotFound
	}

	return nil
}
