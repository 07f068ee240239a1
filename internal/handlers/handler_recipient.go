package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/dto"
	"github.com/streampay-labs/payrolld/internal/middleware"
)

// recipientHandler handles HTTP requests for workers and contractors. Both
// collections share the same handler, parameterized by kind.
type recipientHandler struct {
	recipientService portssvc.RecipientSvcFacade
	kind             domain.RecipientKind
}

func newRecipientHandler(rs portssvc.RecipientSvcFacade, kind domain.RecipientKind) *recipientHandler {
	return &recipientHandler{recipientService: rs, kind: kind}
}

func registerRecipientRoutes(business *gin.RouterGroup, recipientService portssvc.RecipientSvcFacade) {
	for path, kind := range map[string]domain.RecipientKind{
		"/workers":     domain.Worker,
		"/contractors": domain.Contractor,
	} {
		h := newRecipientHandler(recipientService, kind)
		group := business.Group(path)
		group.POST("", h.createRecipient)
		group.GET("", h.listRecipients)
		group.POST("/:recipientID/connect", h.connectWallet)
	}
}

func (h *recipientHandler) createRecipient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecipient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	recipient, err := h.recipientService.CreateRecipient(c.Request.Context(), businessID, h.kind, req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecipientResponse(recipient))
}

func (h *recipientHandler) listRecipients(c *gin.Context) {
	kind := h.kind
	recipients, err := h.recipientService.ListRecipients(c.Request.Context(), c.Param("businessID"), &kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipients": dto.ToRecipientResponses(recipients)})
}

func (h *recipientHandler) connectWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConnectWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	recipient, err := h.recipientService.ConnectWallet(c.Request.Context(), c.Param("businessID"), c.Param("recipientID"), req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRecipientResponse(recipient))
}
