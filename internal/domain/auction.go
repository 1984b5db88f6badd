package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionType string

const (
	AuctionTypeDetran     AuctionType = "Detran"
	AuctionTypePrefeitura AuctionType = "Prefeitura"
	AuctionTypeFinanceira AuctionType = "Financeira"
	AuctionTypeJudicial   AuctionType = "Judicial"
	AuctionTypeOutros     AuctionType = "Outros"
)

type AuctionStatus string

const (
	AuctionActive   AuctionStatus = "active"
	AuctionArchived AuctionStatus = "archived"
)

// Auction is a single auction event with a global spending ceiling and the
// fallback fee rates applied to any lot that does not override them.
type Auction struct {
	ID                     uint            `json:"id"`
	UserID                 uint            `json:"user_id"`
	Name                   string          `json:"name"`
	Date                   *time.Time      `json:"date"`
	Budget                 decimal.Decimal `json:"budget"`
	Type                   AuctionType     `json:"type"`
	DefaultFeePercent      decimal.Decimal `json:"default_fee_percent"`
	DefaultPatioFeePercent decimal.Decimal `json:"default_patio_fee_percent"`
	Description            string          `json:"description,omitempty"`
	BannerImage            string          `json:"banner_image,omitempty"`
	VisitationStart        *time.Time      `json:"visitation_start"`
	VisitationEnd          *time.Time      `json:"visitation_end"`
	SiteURL                string          `json:"site_url,omitempty"`
	Visited                bool            `json:"visited"`
	Status                 AuctionStatus   `json:"status"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
