package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promorang/sampling-service/internal/domain"
)

// Every response wraps its payload in {success, data|error}.

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondUsecaseError maps domain errors onto the API taxonomy: validation
// and state conflicts are 400s, unknown entities 404s, anything else is a
// logged 500 with a generic message.
func respondUsecaseError(c *gin.Context, err error, fallback string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrActivationNotFound),
		errors.Is(err, domain.ErrParticipationNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNoActiveActivation),
		errors.Is(err, domain.ErrRedemptionLimitReached),
		errors.Is(err, domain.ErrStateConflict):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		slog.Error(fallback, "path", c.FullPath(), "error", err.Error())
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
