package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/merchant_conversion_app/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps a service error to its HTTP status. Unknown errors are 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNegativeBalance):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes business-rule errors verbatim and hides everything else.
// The service layer has already logged the rejection.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Unexpected error handling request", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: unexpectedErrorMessage})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// respondBindError separates payloads that decode but fail binding rules (a client input
// problem) from payloads that cannot be decoded at all.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Warn("Request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidInput.Error() + ": " + describeValidationErrors(validationErrs)})
		return
	}
	logger.Error("Failed to decode request body", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: unexpectedErrorMessage})
}

// describeValidationErrors names fields the way the JSON payload spells them.
func describeValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			parts = append(parts, field+" is required")
		} else {
			parts = append(parts, field+" failed "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}
