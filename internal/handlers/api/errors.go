package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

// ErrorResponse is the standardized error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps an application error code onto an HTTP status and
// aborts the request with the standardized payload.
func (h *Handler) respondError(c *gin.Context, err error) {
	code := mterr.GetCode(err)

	var status int
	switch code {
	case mterr.CodeInvalidArgument:
		status = http.StatusBadRequest
	case mterr.CodeNotFound:
		status = http.StatusNotFound
	case mterr.CodeAlreadyExists:
		status = http.StatusConflict
	case mterr.CodeValidation:
		status = http.StatusUnprocessableEntity
	case mterr.CodeUnavailable:
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

func (h *Handler) respondBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    string(mterr.CodeInvalidArgument),
		Message: err.Error(),
	})
}
