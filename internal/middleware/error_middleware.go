package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/dberrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// HandleAPIError writes the response for an error returned by a service.
// Every not-found kind collapses to the same fixed body; the precise kind is only logged.
func HandleAPIError(c *gin.Context, err error) {
	lgr := logger.FromContext(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		lgr.Info().Str("kind", apperrors.Kind(err)).Msg(err.Error())
		c.JSON(http.StatusNotFound, dto.NewNotFoundResponse())
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()),
		))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("emailAddress"),
		))
	case dberrors.IsDatabaseError(err):
		lgr.Error().Err(err).Msg("Database error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			withDebugInfo(dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error").WithSeverity(dto.ErrorSeverityCritical), err),
		))
	default:
		lgr.Error().Err(err).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			withDebugInfo(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical), err),
		))
	}
}

// withDebugInfo exposes the underlying error outside release mode
func withDebugInfo(detail *dto.ErrorDetail, err error) *dto.ErrorDetail {
	if gin.Mode() == gin.ReleaseMode {
		return detail
	}
	return detail.WithDebugInfo("%v", err)
}

// HandleBindError writes a 400 response for a request that could not be bound or validated
func HandleBindError(c *gin.Context, message string, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	if fields := FormatValidationErrors(err); len(fields) > 0 {
		detail = detail.WithDetails(fields)
	} else {
		detail = detail.WithDetails(err.Error())
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
