package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lotecerto/lotecerto-api/internal/api/handler/v1/response"
)

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New(name+" must be a positive integer")))

		return 0, false
	}

	return uint(id), true
}
