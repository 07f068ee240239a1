package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/dto"
)

// reportingHandler serves the financial summary report.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(business *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	business.GET("/reports/summary", h.getSummary)
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var from, to time.Time
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		// Inclusive day bound: the report covers the whole "to" day.
		to = params.To.Add(24*time.Hour - time.Nanosecond)
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), c.Param("businessID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
