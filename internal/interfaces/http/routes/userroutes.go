package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "campusfix/internal/interfaces/http/handlers/user"
	"campusfix/internal/interfaces/http/middleware"
	"campusfix/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/technicians",
			authorization.RequireAdmin(),
			config.UserHandler.ListTechnicians)
	}
}
