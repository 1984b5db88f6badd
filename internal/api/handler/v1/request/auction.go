package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/money"
)

var defaultFeePercent = decimal.NewFromInt(5)

// SaveAuctionRequest is shared by create and update. Money comes in as a
// centavo digit string; fee rates default to 5% auctioneer and 0% patio
// when omitted.
type SaveAuctionRequest struct {
	Name                   string           `json:"name"`
	Date                   *time.Time       `json:"date"`
	BudgetCents            string           `json:"budget_cents"`
	Type                   string           `json:"type"`
	DefaultFeePercent      *decimal.Decimal `json:"default_fee_percent"`
	DefaultPatioFeePercent *decimal.Decimal `json:"default_patio_fee_percent"`
	Description            string           `json:"description"`
	BannerImage            string           `json:"banner_image"`
	VisitationStart        *time.Time       `json:"visitation_start"`
	VisitationEnd          *time.Time       `json:"visitation_end"`
	SiteURL                string           `json:"site_url"`
	Visited                bool             `json:"visited"`
}

func (req *SaveAuctionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Type, validation.In(
			string(domain.AuctionTypeDetran),
			string(domain.AuctionTypePrefeitura),
			string(domain.AuctionTypeFinanceira),
			string(domain.AuctionTypeJudicial),
			string(domain.AuctionTypeOutros),
		)),
	)
}

func (req *SaveAuctionRequest) ToDomain(userID uint) domain.Auction {
	fee := defaultFeePercent
	if req.DefaultFeePercent != nil {
		fee = *req.DefaultFeePercent
	}

	patio := decimal.Zero
	if req.DefaultPatioFeePercent != nil {
		patio = *req.DefaultPatioFeePercent
	}

	return domain.Auction{
		UserID:                 userID,
		Name:                   req.Name,
		Date:                   req.Date,
		Budget:                 money.ParseCents(req.BudgetCents),
		Type:                   domain.AuctionType(req.Type),
		DefaultFeePercent:      fee,
		DefaultPatioFeePercent: patio,
		Description:            req.Description,
		BannerImage:            req.BannerImage,
		VisitationStart:        req.VisitationStart,
		VisitationEnd:          req.VisitationEnd,
		SiteURL:                req.SiteURL,
		Visited:                req.Visited,
	}
}
