package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/request"
	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/response"
	"github.com/lotecerto/lotecerto-api/internal/pkg/imaging"
)

// visionFallbackMessage is returned as the description whenever the
// captioning model cannot be reached. The feature degrades, it never
// fails the request.
const visionFallbackMessage = "Erro ao conectar com a IA para análise."

type VisionService interface {
	DescribeImage(ctx context.Context, image string) (string, error)
}

type VisionHandler struct {
	svc VisionService
}

// NewVisionHandler accepts a nil service when no API key is configured;
// every request then gets the fallback message.
func NewVisionHandler(svc VisionService) *VisionHandler {
	return &VisionHandler{
		svc: svc,
	}
}

// HandleDescribeImage godoc
// @Summary      AI condition description for a vehicle photo
// @Tags         vision
// @Produce      json
// @Param        request body request.DescribeImageRequest true "request body"
// @Success      200 {object} response.VisionResponse
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Security     BearerToken
// @Router       /vision/describe [post]
func (h *VisionHandler) HandleDescribeImage(ctx *gin.Context) {
	var req request.DescribeImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	scaled, err := imaging.DownscaleDataURL(req.Image)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if h.svc == nil {
		ctx.JSON(http.StatusOK, response.VisionResponse{Description: visionFallbackMessage})

		return
	}

	description, err := h.svc.DescribeImage(ctx.Request.Context(), scaled)
	if err != nil {
		zap.L().Warn("vision describe failed", zap.Error(err))
		ctx.JSON(http.StatusOK, response.VisionResponse{Description: visionFallbackMessage})

		return
	}

	ctx.JSON(http.StatusOK, response.VisionResponse{Description: description})
}
