package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streampay-labs/payrolld/internal/apperrors"
)

// respondError maps domain error sentinels to HTTP statuses. Infrastructure
// detail never leaks past a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrConfiguration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperrors.ErrConcurrentRun):
		c.JSON(http.StatusConflict, gin.H{"error": "a disbursement is already running for this account"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSettlement):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrLedgerWrite):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "disbursement settled but recording failed; an operator has been alerted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actorID identifies the caller for audit fields. There is no auth layer in
// front of this service; callers pass their identity in a header.
func actorID(c *gin.Context) string {
	if actor := c.GetHeader("X-Actor-ID"); actor != "" {
		return actor
	}
	return "system"
}
