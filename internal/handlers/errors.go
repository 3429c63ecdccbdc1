package handlers

import (
	"errors"

	"taalpal/internal/progress"
	"taalpal/internal/repository"
	"taalpal/internal/service"
	"taalpal/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. Validation
// messages are our own text and safe to forward; storage failures get a
// generic body so driver internals never leak to callers.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, progress.ErrInvalidEvent), errors.Is(err, service.ErrEmptyMessage):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		if notFoundMessage == "" {
			notFoundMessage = "Resource not found"
		}
		utils.NotFoundResponse(c, notFoundMessage)
	case errors.Is(err, repository.ErrVersionConflict):
		utils.ConflictResponse(c, "Concurrent update, please retry")
	case errors.Is(err, repository.ErrUnavailable):
		utils.UnavailableResponse(c, "Storage temporarily unavailable")
	default:
		utils.InternalErrorResponse(c, "Something went wrong")
	}
}
