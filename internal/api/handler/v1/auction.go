package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/request"
	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/response"
	"github.com/lotecerto/lotecerto-api/internal/api/middleware"
	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/service"
)

type AuctionService interface {
	List(ctx context.Context, userID uint) ([]domain.Auction, error)
	Create(ctx context.Context, auction domain.Auction) (domain.Auction, error)
	Update(ctx context.Context, userID uint, auction domain.Auction) (domain.Auction, error)
	ToggleArchive(ctx context.Context, userID, auctionID uint) (domain.Auction, error)
	Delete(ctx context.Context, userID, auctionID uint) error
	Summary(ctx context.Context, userID, auctionID uint) (service.AuctionSummary, error)
}

type AuctionHandler struct {
	svc AuctionService
}

func NewAuctionHandler(svc AuctionService) *AuctionHandler {
	return &AuctionHandler{
		svc: svc,
	}
}

func renderAuctionErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrAuctionNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrAuctionNotFound))
	case errors.Is(err, service.ErrNotAuctionOwner):
		response.RenderErr(ctx, response.ErrForbidden(service.ErrNotAuctionOwner))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%v -> %w", op, err)))
	}
}

// HandleListAuctions godoc
// @Summary      List the user's auctions
// @Tags         auctions
// @Produce      json
// @Success      200 {object} []domain.Auction
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions [get]
func (h *AuctionHandler) HandleListAuctions(ctx *gin.Context) {
	auctions, err := h.svc.List(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListAuctions -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, auctions)
}

// HandleCreateAuction godoc
// @Summary      Create an auction
// @Tags         auctions
// @Produce      json
// @Param        request body request.SaveAuctionRequest true "request body"
// @Success      201 {object} domain.Auction
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions [post]
func (h *AuctionHandler) HandleCreateAuction(ctx *gin.Context) {
	var req request.SaveAuctionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	auction, err := h.svc.Create(ctx.Request.Context(), req.ToDomain(middleware.GetUserID(ctx)))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateAuction -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, auction)
}

// HandleUpdateAuction godoc
// @Summary      Update an auction
// @Tags         auctions
// @Produce      json
// @Param        auctionID path     int                        true "auction ID"
// @Param        request   body     request.SaveAuctionRequest true "request body"
// @Success      200 {object} domain.Auction
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions/{auctionID} [put]
func (h *AuctionHandler) HandleUpdateAuction(ctx *gin.Context) {
	auctionID, ok := parseIDParam(ctx, "auctionID")
	if !ok {
		return
	}

	var req request.SaveAuctionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userID := middleware.GetUserID(ctx)
	auction := req.ToDomain(userID)
	auction.ID = auctionID

	updated, err := h.svc.Update(ctx.Request.Context(), userID, auction)
	if err != nil {
		renderAuctionErr(ctx, "v1.HandleUpdateAuction -> h.svc.Update", err)

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleToggleArchive godoc
// @Summary      Archive or unarchive an auction
// @Tags         auctions
// @Produce      json
// @Param        auctionID path int true "auction ID"
// @Success      200 {object} domain.Auction
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions/{auctionID}/archive [post]
func (h *AuctionHandler) HandleToggleArchive(ctx *gin.Context) {
	auctionID, ok := parseIDParam(ctx, "auctionID")
	if !ok {
		return
	}

	auction, err := h.svc.ToggleArchive(ctx.Request.Context(), middleware.GetUserID(ctx), auctionID)
	if err != nil {
		renderAuctionErr(ctx, "v1.HandleToggleArchive -> h.svc.ToggleArchive", err)

		return
	}

	ctx.JSON(http.StatusOK, auction)
}

// HandleDeleteAuction godoc
// @Summary      Delete an auction and all of its lots
// @Tags         auctions
// @Produce      json
// @Param        auctionID path int true "auction ID"
// @Success      204
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions/{auctionID} [delete]
func (h *AuctionHandler) HandleDeleteAuction(ctx *gin.Context) {
	auctionID, ok := parseIDParam(ctx, "auctionID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), middleware.GetUserID(ctx), auctionID); err != nil {
		renderAuctionErr(ctx, "v1.HandleDeleteAuction -> h.svc.Delete", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAuctionSummary godoc
// @Summary      Budget summary for an auction
// @Tags         auctions
// @Produce      json
// @Param        auctionID path int true "auction ID"
// @Success      200 {object} response.AuctionSummaryResponse
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions/{auctionID}/summary [get]
func (h *AuctionHandler) HandleAuctionSummary(ctx *gin.Context) {
	auctionID, ok := parseIDParam(ctx, "auctionID")
	if !ok {
		return
	}

	summary, err := h.svc.Summary(ctx.Request.Context(), middleware.GetUserID(ctx), auctionID)
	if err != nil {
		renderAuctionErr(ctx, "v1.HandleAuctionSummary -> h.svc.Summary", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewAuctionSummaryResponse(summary))
}
