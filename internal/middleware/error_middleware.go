package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models/dto"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/logger"
)

// HandleAPIError maps a service error to the matching HTTP status and
// writes the standard failure body. Unclassified errors become a 500 with
// a generic message so internals never leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	status, message := classifyError(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
	}
	c.JSON(status, dto.NewErrorResponse(message))
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, apperrors.Message(err, "Invalid request")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"

	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, "Invalid or expired token"

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, apperrors.Message(err, "Access denied.")

	case errors.Is(err, apperrors.ErrFacultyNotFound):
		return http.StatusNotFound, "Faculty not found"

	case errors.Is(err, apperrors.ErrFeedbackNotFound):
		return http.StatusNotFound, "Feedback not found"

	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"

	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, apperrors.Message(err, "Resource not found")

	case errors.Is(err, apperrors.ErrDuplicateFeedback):
		return http.StatusConflict, "You have already submitted feedback for this faculty"

	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		return http.StatusConflict, apperrors.Message(err, "Email or Institutional ID already registered")

	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, apperrors.Message(err, "Conflict")

	default:
		return http.StatusInternalServerError, "Database error"
	}
}
