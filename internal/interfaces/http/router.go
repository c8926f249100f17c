package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	draftusecases "campusfix/internal/application/draft/usecases"
	maintenanceusecases "campusfix/internal/application/maintenance/usecases"
	reportusecases "campusfix/internal/application/report/usecases"
	userusecases "campusfix/internal/application/user/usecases"
	"campusfix/internal/infrastructure/auth"
	"campusfix/internal/infrastructure/cache"
	"campusfix/internal/infrastructure/config"
	"campusfix/internal/infrastructure/ratelimit"
	"campusfix/internal/infrastructure/repository"
	authhandlers "campusfix/internal/interfaces/http/handlers/auth"
	maintenancehandlers "campusfix/internal/interfaces/http/handlers/maintenance"
	reporthandlers "campusfix/internal/interfaces/http/handlers/report"
	userhandlers "campusfix/internal/interfaces/http/handlers/user"
	"campusfix/internal/interfaces/http/middleware"
	"campusfix/internal/interfaces/http/routes"
	"campusfix/internal/shared/db"
	"campusfix/internal/shared/logger"
)

// NewRouter wires repositories, use cases, handlers, and routes into a gin
// engine.
func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	log := logger.NewLogger().Named("http")

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	reportRepo := repository.NewReportRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	draftStore := cache.NewDraftStore(redisClient, time.Duration(cfg.Draft.TTLHours)*time.Hour)

	// One limiter guards all burst-prone entry points: login, submit, assign.
	var rateLimitMiddleware gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		rateLimitMiddleware = middleware.RateLimit(limiter, log)
	}

	submitReportUC := reportusecases.NewSubmitReportUseCase(reportRepo, draftStore, log)
	getReportUC := reportusecases.NewGetReportUseCase(reportRepo, ticketRepo, log)
	listReportsUC := reportusecases.NewListReportsUseCase(reportRepo, log)

	assignTechnicianUC := maintenanceusecases.NewAssignTechnicianUseCase(
		reportRepo, ticketRepo, userRepo, txManager, log)
	submitCompletionUC := maintenanceusecases.NewSubmitCompletionUseCase(
		reportRepo, ticketRepo, txManager, draftStore, log)
	verifyCompletionUC := maintenanceusecases.NewVerifyCompletionUseCase(
		reportRepo, ticketRepo, txManager, log)
	listTasksUC := maintenanceusecases.NewListTasksUseCase(ticketRepo, log)
	getTaskUC := maintenanceusecases.NewGetTaskUseCase(ticketRepo, log)

	reportDraftUC := draftusecases.NewReportDraftUseCase(draftStore, log)
	maintenanceDraftUC := draftusecases.NewMaintenanceDraftUseCase(draftStore, ticketRepo, log)

	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, log)
	listTechniciansUC := userusecases.NewListTechniciansUseCase(userRepo, log)

	reportHandler := reporthandlers.NewReportHandler(
		submitReportUC, getReportUC, listReportsUC, reportDraftUC)
	maintenanceHandler := maintenancehandlers.NewMaintenanceHandler(
		assignTechnicianUC, submitCompletionUC, verifyCompletionUC,
		listTasksUC, getTaskUC, maintenanceDraftUC)
	authHandler := authhandlers.NewAuthHandler(loginUC, registerUC)
	userHandler := userhandlers.NewUserHandler(listTechniciansUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		LoginRateLimit: rateLimitMiddleware,
	})
	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{
		ReportHandler:      reportHandler,
		MaintenanceHandler: maintenanceHandler,
		AuthMiddleware:     authMiddleware,
		MutationRateLimit:  rateLimitMiddleware,
	})
	routes.SetupTaskRoutes(engine, &routes.TaskRouteConfig{
		MaintenanceHandler: maintenanceHandler,
		AuthMiddleware:     authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return engine
}
