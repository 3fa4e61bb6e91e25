// Файл: internal/routes/routes.go
package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/mailer"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/service"
)

// InitRouter собирает весь граф зависимостей: репозитории -> сервисы ->
// контроллеры, и регистрирует маршруты. /api/auth/register и /api/auth/login
// открыты, всё остальное за JWT.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	mailSender mailer.Mailer,
	logger *zap.Logger,
) {
	logger.Info("InitRouter: начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	secureGroup := api.Group("", authMW.Auth)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	notificationRepo := repositories.NewNotificationRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	teamService := services.NewTeamService(teamRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, teamRepo, userRepo, mailSender, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, teamRepo, notificationService, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, logger)

	// --- КОНТРОЛЛЕРЫ ---
	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, requestService, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	requestController := controllers.NewRequestController(requestService, logger)
	notificationController := controllers.NewNotificationController(notificationService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	reportController := controllers.NewReportController(requestService, logger)

	// --- РОУТЕРЫ ---
	runAuthRouter(api, authController, authMW)
	runUserRouter(secureGroup, userController)
	runEquipmentRouter(secureGroup, equipmentController)
	runTeamRouter(secureGroup, teamController)
	runRequestRouter(secureGroup, requestController)
	runNotificationRouter(secureGroup, notificationController)
	runDashboardRouter(secureGroup, dashboardController)
	runReportRouter(secureGroup, reportController)

	logger.Info("InitRouter: создание маршрутов завершено")
}
