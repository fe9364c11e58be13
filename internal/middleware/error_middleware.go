package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps a service error onto a status code and error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	} else {
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Int("status", status).Msg("Request rejected")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	if vErr, ok := apperrors.AsValidationError(err); ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(vErr.Fields)
		if len(vErr.Fields) == 1 {
			detail = detail.WithField(vErr.Fields[0].Field)
		}
		return http.StatusBadRequest, detail
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOf(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, messageOf(err, "Resource already exists"))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, messageOf(err, "Bad request"))
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "Record store unavailable").
			WithSeverity(dto.ErrorSeverityCritical)
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOf prefers the message carried by an *apperrors.CustomError.
func messageOf(err error, fallback string) string {
	var cErr *apperrors.CustomError
	if errors.As(err, &cErr) && cErr.Message != "" {
		return cErr.Message
	}
	return fallback
}
