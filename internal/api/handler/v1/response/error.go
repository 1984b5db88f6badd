package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *Err) Error() string {
	return e.Message
}

func NewErr(statusCode int, message string) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    message,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err.Error())
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, err.Error())
}

func ErrForbidden(err error) *Err {
	return NewErr(http.StatusForbidden, err.Error())
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, err.Error())
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, "internal server error")
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("rendering error response",
			zap.String("request_id", requestid.Get(ctx)),
			zap.Int("status", err.StatusCode),
			zap.String("message", err.Message),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
