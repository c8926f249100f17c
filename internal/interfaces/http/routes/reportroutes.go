package routes

import (
	"github.com/gin-gonic/gin"

	maintenancehandlers "campusfix/internal/interfaces/http/handlers/maintenance"
	reporthandlers "campusfix/internal/interfaces/http/handlers/report"
	"campusfix/internal/interfaces/http/middleware"
	"campusfix/internal/shared/authorization"
)

type ReportRouteConfig struct {
	ReportHandler      *reporthandlers.ReportHandler
	MaintenanceHandler *maintenancehandlers.MaintenanceHandler
	AuthMiddleware     *middleware.AuthMiddleware

	// MutationRateLimit guards submit and assign against bursts. Nil disables it.
	MutationRateLimit gin.HandlerFunc
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(config.AuthMiddleware.RequireAuth())
	{
		reports.POST("", withRateLimit(config.MutationRateLimit,
			authorization.RequireReporter(),
			config.ReportHandler.SubmitReport)...)
		reports.GET("",
			config.ReportHandler.ListReports)

		// Specific paths before /:id so gin does not treat "draft" as an ID.
		reports.PUT("/draft",
			authorization.RequireReporter(),
			config.ReportHandler.SaveDraft)
		reports.GET("/draft",
			authorization.RequireReporter(),
			config.ReportHandler.GetDraft)
		reports.DELETE("/draft",
			authorization.RequireReporter(),
			config.ReportHandler.ClearDraft)

		reports.POST("/:id/assign", withRateLimit(config.MutationRateLimit,
			authorization.RequireAdmin(),
			config.MaintenanceHandler.AssignTechnician)...)

		reports.GET("/:id",
			config.ReportHandler.GetReport)
	}
}

// withRateLimit prepends the limiter to the handler chain when one is set.
func withRateLimit(limiter gin.HandlerFunc, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	if limiter == nil {
		return handlers
	}
	return append([]gin.HandlerFunc{limiter}, handlers...)
}
