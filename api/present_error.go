package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/vigiehq/vigie-backend/dto"
	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/utils"
)

// presentError renders err on the gin context and reports whether there was
// an error to present. Handlers return right after a true result.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.BadParameter,
		})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.NotFound,
		})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.Conflict,
		})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{
			Message:   "An unexpected error occurred",
			ErrorCode: dto.InternalError,
		})
	}
	return true
}

// presentBindError renders a request body that failed binding as a 400.
func presentBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
		Message:   err.Error(),
		ErrorCode: dto.BadParameter,
	})
}
