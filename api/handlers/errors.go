package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/api/trace"
	"blog-api/dto"
	"blog-api/logger"
	"blog-api/services"
)

// respondError maps service errors to status codes. Upstream causes are logged, not returned.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(verr.Message))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("not found"))
	default:
		_ = c.Error(err)
		logger.ErrorWithFields("request failed", logger.Fields{
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}
