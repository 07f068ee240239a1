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

// disbursementHandler handles HTTP requests for payroll runs, payment history
// and the settlement balance proxy.
type disbursementHandler struct {
	disbursementService portssvc.DisbursementSvcFacade
}

func newDisbursementHandler(ds portssvc.DisbursementSvcFacade) *disbursementHandler {
	return &disbursementHandler{disbursementService: ds}
}

// registerDisbursementRoutes registers run, payment and balance routes under
// the business group.
func registerDisbursementRoutes(business *gin.RouterGroup, disbursementService portssvc.DisbursementSvcFacade, rateLimited gin.HandlerFunc) {
	h := newDisbursementHandler(disbursementService)

	disbursements := business.Group("/disbursements")
	if rateLimited != nil {
		disbursements.Use(rateLimited)
	}
	disbursements.POST("", h.disburse)
	disbursements.POST("/single", h.disburseSingle)

	business.GET("/runs", h.listRuns)
	business.GET("/runs/:runID", h.getRun)
	business.GET("/payments", h.listPayments)
	business.GET("/balance", h.getBalance)
}

func (h *disbursementHandler) disburse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.DisburseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Disburse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	run, err := h.disbursementService.Disburse(c.Request.Context(), businessID, req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(runStatusCode(run.Status), dto.ToRunResponse(run))
}

func (h *disbursementHandler) disburseSingle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.SingleDisburseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DisburseSingle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	run, err := h.disbursementService.DisburseSingle(c.Request.Context(), businessID, req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(runStatusCode(run.Status), dto.ToRunResponse(run))
}

// runStatusCode distinguishes a recorded outcome from a hand-off: a Pending
// run is accepted but not yet resolved.
func runStatusCode(status domain.RunStatus) int {
	if status == domain.RunPending {
		return http.StatusAccepted
	}
	return http.StatusCreated
}

func (h *disbursementHandler) getRun(c *gin.Context) {
	run, err := h.disbursementService.GetRun(c.Request.Context(), c.Param("businessID"), c.Param("runID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

func (h *disbursementHandler) listRuns(c *gin.Context) {
	var params dto.ListRunsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.disbursementService.ListRuns(c.Request.Context(), c.Param("businessID"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *disbursementHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.disbursementService.ListPayments(c.Request.Context(), c.Param("businessID"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *disbursementHandler) getBalance(c *gin.Context) {
	balance, err := h.disbursementService.AccountBalance(c.Request.Context(), c.Param("businessID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
