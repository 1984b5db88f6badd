package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/request"
	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/response"
	"github.com/lotecerto/lotecerto-api/internal/money"
)

// CalculatorHandler exposes the fee arithmetic as stateless endpoints, for
// quick what-if runs that are not tied to a stored lot.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// HandleBreakdown godoc
// @Summary      Cost breakdown for a bid
// @Tags         calculator
// @Produce      json
// @Param        request body request.BreakdownRequest true "request body"
// @Success      200 {object} response.BreakdownResponse
// @Failure      400 {object} response.Err
// @Security     BearerToken
// @Router       /calculator/breakdown [post]
func (h *CalculatorHandler) HandleBreakdown(ctx *gin.Context) {
	var req request.BreakdownRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	breakdown := money.ComputeBreakdown(money.ParseCents(req.BidCents), req.FeePercent, req.PatioFeePercent)

	resp := response.NewBreakdownResponse(breakdown)
	if req.LimitCents != "" {
		over := money.IsOverLimit(breakdown.Total, money.ParseCents(req.LimitCents))
		resp.OverLimit = &over
	}

	ctx.JSON(http.StatusOK, resp)
}

// HandleMaxBid godoc
// @Summary      Largest bid that keeps the total within a limit
// @Tags         calculator
// @Produce      json
// @Param        request body request.MaxBidRequest true "request body"
// @Success      200 {object} response.MaxBidResponse
// @Failure      400 {object} response.Err
// @Security     BearerToken
// @Router       /calculator/max-bid [post]
func (h *CalculatorHandler) HandleMaxBid(ctx *gin.Context) {
	var req request.MaxBidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	maxBid := money.MaxBidForLimit(money.ParseCents(req.LimitCents), req.FeePercent, req.PatioFeePercent)

	ctx.JSON(http.StatusOK, response.MaxBidResponse{
		MaxBid:          maxBid,
		MaxBidFormatted: money.FormatBRL(maxBid),
	})
}
