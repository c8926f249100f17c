package routes

import (
	"github.com/gin-gonic/gin"

	maintenancehandlers "campusfix/internal/interfaces/http/handlers/maintenance"
	"campusfix/internal/interfaces/http/middleware"
	"campusfix/internal/shared/authorization"
)

type TaskRouteConfig struct {
	MaintenanceHandler *maintenancehandlers.MaintenanceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	tasks := engine.Group("/tasks")
	tasks.Use(config.AuthMiddleware.RequireAuth())
	{
		tasks.GET("",
			authorization.RequireTechnician(),
			config.MaintenanceHandler.ListTasks)

		tasks.POST("/:id/complete",
			authorization.RequireTechnician(),
			config.MaintenanceHandler.SubmitCompletion)
		tasks.POST("/:id/verify",
			authorization.RequireAdmin(),
			config.MaintenanceHandler.VerifyCompletion)

		tasks.PUT("/:id/draft",
			authorization.RequireTechnician(),
			config.MaintenanceHandler.SaveDraft)
		tasks.GET("/:id/draft",
			authorization.RequireTechnician(),
			config.MaintenanceHandler.GetDraft)
		tasks.DELETE("/:id/draft",
			authorization.RequireTechnician(),
			config.MaintenanceHandler.ClearDraft)

		tasks.GET("/:id",
			config.MaintenanceHandler.GetTask)
	}
}
