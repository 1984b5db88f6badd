package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/response"
	"github.com/lotecerto/lotecerto-api/internal/api/middleware"
	"github.com/lotecerto/lotecerto-api/internal/service"
)

type PortfolioService interface {
	Get(ctx context.Context, userID uint) (service.Portfolio, error)
}

type PortfolioHandler struct {
	svc PortfolioService
}

func NewPortfolioHandler(svc PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		svc: svc,
	}
}

// HandleGetPortfolio godoc
// @Summary      Purchased lots across all auctions with realized figures
// @Tags         portfolio
// @Produce      json
// @Success      200 {object} response.PortfolioResponse
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Security     BearerToken
// @Router       /portfolio [get]
func (h *PortfolioHandler) HandleGetPortfolio(ctx *gin.Context) {
	portfolio, err := h.svc.Get(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPortfolio -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewPortfolioResponse(portfolio))
}
