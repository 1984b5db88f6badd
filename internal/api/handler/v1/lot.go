package v1

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/request"
	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/response"
	"github.com/lotecerto/lotecerto-api/internal/api/middleware"
	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/pkg/imaging"
	"github.com/lotecerto/lotecerto-api/internal/service"
)

type LotService interface {
	ListByAuction(ctx context.Context, userID, auctionID uint) ([]domain.Lot, error)
	Create(ctx context.Context, userID uint, lot domain.Lot) (domain.Lot, error)
	Update(ctx context.Context, userID uint, lot domain.Lot) (domain.Lot, error)
	Delete(ctx context.Context, userID, lotID uint) error
	SetStatus(ctx context.Context, userID, lotID uint, status domain.LotStatus) (domain.Lot, error)
	SetSale(ctx context.Context, userID, lotID uint, winningBidCents, sellingPriceCents *string) (domain.Lot, error)
	AddItem(ctx context.Context, userID, lotID uint, item domain.LotItem) (domain.Lot, error)
	ToggleItemCheck(ctx context.Context, userID, lotID uint, itemID string) (domain.Lot, error)
	RemoveItem(ctx context.Context, userID, lotID uint, itemID string) (domain.Lot, error)
	AttachImages(ctx context.Context, userID, lotID uint, images []string) (domain.Lot, error)
	Strategy(ctx context.Context, userID, lotID uint) (service.LotStrategy, error)
}

const maxImagesPerUpload = 20

type LotHandler struct {
	svc LotService
}

func NewLotHandler(svc LotService) *LotHandler {
	return &LotHandler{
		svc: svc,
	}
}

func renderLotErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrLotNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrLotNotFound))
	case errors.Is(err, service.ErrLotItemNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrLotItemNotFound))
	case errors.Is(err, service.ErrAuctionNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrAuctionNotFound))
	case errors.Is(err, service.ErrNotAuctionOwner):
		response.RenderErr(ctx, response.ErrForbidden(service.ErrNotAuctionOwner))
	case errors.Is(err, service.ErrInvalidLotStatus):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidLotStatus))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%v -> %w", op, err)))
	}
}

// HandleListLots godoc
// @Summary      List the lots of an auction
// @Tags         lots
// @Produce      json
// @Param        auctionID path int true "auction ID"
// @Success      200 {object} []domain.Lot
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions/{auctionID}/lots [get]
func (h *LotHandler) HandleListLots(ctx *gin.Context) {
	auctionID, ok := parseIDParam(ctx, "auctionID")
	if !ok {
		return
	}

	lots, err := h.svc.ListByAuction(ctx.Request.Context(), middleware.GetUserID(ctx), auctionID)
	if err != nil {
		renderLotErr(ctx, "v1.HandleListLots -> h.svc.ListByAuction", err)

		return
	}

	ctx.JSON(http.StatusOK, lots)
}

// HandleCreateLot godoc
// @Summary      Create a lot in an auction
// @Tags         lots
// @Produce      json
// @Param        auctionID path int                    true "auction ID"
// @Param        request   body request.SaveLotRequest true "request body"
// @Success      201 {object} domain.Lot
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /auctions/{auctionID}/lots [post]
func (h *LotHandler) HandleCreateLot(ctx *gin.Context) {
	auctionID, ok := parseIDParam(ctx, "auctionID")
	if !ok {
		return
	}

	var req request.SaveLotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lot, err := h.svc.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req.ToDomain(auctionID))
	if err != nil {
		renderLotErr(ctx, "v1.HandleCreateLot -> h.svc.Create", err)

		return
	}

	ctx.JSON(http.StatusCreated, lot)
}

// HandleUpdateLot godoc
// @Summary      Update a lot
// @Tags         lots
// @Produce      json
// @Param        lotID   path int                    true "lot ID"
// @Param        request body request.SaveLotRequest true "request body"
// @Success      200 {object} domain.Lot
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID} [put]
func (h *LotHandler) HandleUpdateLot(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	var req request.SaveLotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lot := req.ToDomain(0)
	lot.ID = lotID

	updated, err := h.svc.Update(ctx.Request.Context(), middleware.GetUserID(ctx), lot)
	if err != nil {
		renderLotErr(ctx, "v1.HandleUpdateLot -> h.svc.Update", err)

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteLot godoc
// @Summary      Delete a lot
// @Tags         lots
// @Produce      json
// @Param        lotID path int true "lot ID"
// @Success      204
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID} [delete]
func (h *LotHandler) HandleDeleteLot(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), middleware.GetUserID(ctx), lotID); err != nil {
		renderLotErr(ctx, "v1.HandleDeleteLot -> h.svc.Delete", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSetLotStatus godoc
// @Summary      Set a lot's status
// @Tags         lots
// @Produce      json
// @Param        lotID   path int                         true "lot ID"
// @Param        request body request.SetLotStatusRequest true "request body"
// @Success      200 {object} domain.Lot
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID}/status [patch]
func (h *LotHandler) HandleSetLotStatus(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	var req request.SetLotStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lot, err := h.svc.SetStatus(ctx.Request.Context(), middleware.GetUserID(ctx), lotID, domain.LotStatus(req.Status))
	if err != nil {
		renderLotErr(ctx, "v1.HandleSetLotStatus -> h.svc.SetStatus", err)

		return
	}

	ctx.JSON(http.StatusOK, lot)
}

// HandleSetSale godoc
// @Summary      Record a lot's winning bid and selling price
// @Tags         lots
// @Produce      json
// @Param        lotID   path int                    true "lot ID"
// @Param        request body request.SetSaleRequest true "request body"
// @Success      200 {object} domain.Lot
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID}/sale [patch]
func (h *LotHandler) HandleSetSale(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	var req request.SetSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lot, err := h.svc.SetSale(ctx.Request.Context(), middleware.GetUserID(ctx), lotID, req.WinningBidCents, req.SellingPriceCents)
	if err != nil {
		renderLotErr(ctx, "v1.HandleSetSale -> h.svc.SetSale", err)

		return
	}

	ctx.JSON(http.StatusOK, lot)
}

// HandleAddLotItem godoc
// @Summary      Add an extra cost item to a lot
// @Tags         lots
// @Produce      json
// @Param        lotID   path int                       true "lot ID"
// @Param        request body request.AddLotItemRequest true "request body"
// @Success      200 {object} domain.Lot
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID}/items [post]
func (h *LotHandler) HandleAddLotItem(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	var req request.AddLotItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lot, err := h.svc.AddItem(ctx.Request.Context(), middleware.GetUserID(ctx), lotID, req.ToDomain())
	if err != nil {
		renderLotErr(ctx, "v1.HandleAddLotItem -> h.svc.AddItem", err)

		return
	}

	ctx.JSON(http.StatusOK, lot)
}

// HandleToggleItemCheck godoc
// @Summary      Toggle the checked flag of a lot item
// @Tags         lots
// @Produce      json
// @Param        lotID  path int    true "lot ID"
// @Param        itemID path string true "item ID"
// @Success      200 {object} domain.Lot
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID}/items/{itemID}/check [patch]
func (h *LotHandler) HandleToggleItemCheck(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	lot, err := h.svc.ToggleItemCheck(ctx.Request.Context(), middleware.GetUserID(ctx), lotID, ctx.Param("itemID"))
	if err != nil {
		renderLotErr(ctx, "v1.HandleToggleItemCheck -> h.svc.ToggleItemCheck", err)

		return
	}

	ctx.JSON(http.StatusOK, lot)
}

// HandleRemoveLotItem godoc
// @Summary      Remove an extra cost item from a lot
// @Tags         lots
// @Produce      json
// @Param        lotID  path int    true "lot ID"
// @Param        itemID path string true "item ID"
// @Success      200 {object} domain.Lot
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID}/items/{itemID} [delete]
func (h *LotHandler) HandleRemoveLotItem(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	lot, err := h.svc.RemoveItem(ctx.Request.Context(), middleware.GetUserID(ctx), lotID, ctx.Param("itemID"))
	if err != nil {
		renderLotErr(ctx, "v1.HandleRemoveLotItem -> h.svc.RemoveItem", err)

		return
	}

	ctx.JSON(http.StatusOK, lot)
}

// HandleAttachImages godoc
// @Summary      Attach photos to a lot
// @Description  Accepts multipart files under "images". Each one is
// @Description  downscaled to 800px on the longest side and re-encoded as
// @Description  JPEG before being stored.
// @Tags         lots
// @Accept       multipart/form-data
// @Produce      json
// @Param        lotID  path     int  true "lot ID"
// @Param        images formData file true "image files"
// @Success      200 {object} domain.Lot
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID}/images [post]
func (h *LotHandler) HandleAttachImages(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("at least one image file is required")))

		return
	}
	if len(files) > maxImagesPerUpload {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("too many image files")))

		return
	}

	scaled := make([]string, 0, len(files))
	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("cannot read %v: %w", file.Filename, err)))

			return
		}

		raw, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("cannot read %v: %w", file.Filename, err)))

			return
		}

		out, err := imaging.Downscale(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%v is not a valid image: %w", file.Filename, err)))

			return
		}
		scaled = append(scaled, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(out))
	}

	lot, err := h.svc.AttachImages(ctx.Request.Context(), middleware.GetUserID(ctx), lotID, scaled)
	if err != nil {
		renderLotErr(ctx, "v1.HandleAttachImages -> h.svc.AttachImages", err)

		return
	}

	ctx.JSON(http.StatusOK, lot)
}

// HandleLotStrategy godoc
// @Summary      Bidding strategy figures for a lot
// @Tags         lots
// @Produce      json
// @Param        lotID path int true "lot ID"
// @Success      200 {object} response.LotStrategyResponse
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /lots/{lotID}/strategy [get]
func (h *LotHandler) HandleLotStrategy(ctx *gin.Context) {
	lotID, ok := parseIDParam(ctx, "lotID")
	if !ok {
		return
	}

	strategy, err := h.svc.Strategy(ctx.Request.Context(), middleware.GetUserID(ctx), lotID)
	if err != nil {
		renderLotErr(ctx, "v1.HandleLotStrategy -> h.svc.Strategy", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewLotStrategyResponse(strategy))
}
