package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/dto"
	"github.com/streampay-labs/payrolld/internal/middleware"
)

// scheduleHandler handles HTTP requests for the payroll schedule.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newScheduleHandler(ss portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{scheduleService: ss}
}

func registerScheduleRoutes(business *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := newScheduleHandler(scheduleService)

	business.PUT("/schedule", h.saveSchedule)
	business.GET("/schedule", h.getSchedule)
	business.DELETE("/schedule", h.removeSchedule)
}

func (h *scheduleHandler) saveSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	config, err := h.scheduleService.SaveSchedule(c.Request.Context(), businessID, req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleResponse(config))
}

func (h *scheduleHandler) getSchedule(c *gin.Context) {
	config, err := h.scheduleService.GetSchedule(c.Request.Context(), c.Param("businessID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(config))
}

func (h *scheduleHandler) removeSchedule(c *gin.Context) {
	if err := h.scheduleService.RemoveSchedule(c.Request.Context(), c.Param("businessID"), actorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
