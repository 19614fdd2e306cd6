// Package controller holds helpers shared by the admin and user controller
// packages: error-to-HTTP translation and path id parsing.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coverly/intake/internal/apperr"
	"github.com/coverly/intake/internal/dto"
)

// RespondError maps the apperr taxonomy onto status codes. Validation
// failures carry the full field map so the client can re-render the form.
func RespondError(ctx *gin.Context, err error) {
	var (
		validationErr *apperr.ValidationError
		notFoundErr   *apperr.NotFoundError
		duplicateErr  *apperr.DuplicateKeyError
		persistErr    *apperr.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Message: "The given data was invalid.",
			Errors:  validationErr.Fields,
		})
	case errors.Is(err, apperr.ErrUnauthorized):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "This action is unauthorized."})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: notFoundErr.Error()})
	case errors.As(err, &duplicateErr):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: duplicateErr.Error()})
	case errors.As(err, &persistErr):
		// Write failures surface as a generic form-level error, never a
		// field error.
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save. Please try again."})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}

// ParseID reads a uint path parameter, responding 400 itself on failure.
func ParseID(ctx *gin.Context, param string) (uint, bool) {
	raw := ctx.Param(param)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + param + " format"})
		return 0, false
	}
	return uint(value), true
}
