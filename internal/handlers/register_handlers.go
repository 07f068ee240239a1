package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/middleware"
	"github.com/streampay-labs/payrolld/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	business := v1.Group("/businesses/:businessID")

	registerDisbursementRoutes(business, services.Disbursement, disbursementRateLimit())
	registerScheduleRoutes(business, services.Schedule)
	registerReportingRoutes(business, services.Reporting)
	registerRecipientRoutes(business, services.Recipient)
}

// disbursementRateLimit limits disbursement submissions per client IP. Money
// movement sits behind it; reads do not.
func disbursementRateLimit() gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  30,
	}
	store := memorystore.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}
