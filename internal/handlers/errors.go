package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

const invalidInputPrefix = "Invalid input: "

// statusAndMessage maps a service error onto the HTTP status and the body message.
func statusAndMessage(err error) (int, string) {
	var providerErr *apperrors.ProviderError
	switch {
	case errors.As(err, &providerErr):
		switch providerErr.Code {
		case apperrors.ProviderCodeInvalidSourceCurrency:
			return http.StatusBadRequest, "Invalid source currency!"
		case apperrors.ProviderCodeInvalidTargetCurrency:
			return http.StatusBadRequest, "Invalid target currency!"
		default:
			return http.StatusInternalServerError, providerErr.Error()
		}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, invalidInputPrefix + apperrors.MessageOf(err)
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, invalidInputPrefix + apperrors.MessageOf(err)
	case errors.Is(err, apperrors.ErrMissingRate):
		return http.StatusInternalServerError, "Exchange rate not available for the requested currency pair"
	case errors.Is(err, apperrors.ErrTransport):
		return http.StatusInternalServerError, "Failed to retrieve exchange rate"
	case errors.Is(err, apperrors.ErrPersistence):
		return http.StatusInternalServerError, "Failed to access conversion records"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondWithError writes the JSON error body for err and logs it at a level matching the status.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	status, message := statusAndMessage(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func respondBadRequest(c *gin.Context, logger *slog.Logger, message string) {
	logger.Warn("Invalid request parameters", slog.String("error", message))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}
