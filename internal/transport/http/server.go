package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "fitweek/internal/app"
	"fitweek/internal/bootstrap"
	"fitweek/internal/cache"
	"fitweek/internal/platform/rabbitmq"
	"fitweek/internal/repository"
	"fitweek/internal/session"
	"fitweek/internal/transport/http/handler"
	"fitweek/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	jwtTTL := time.Duration(app.Config.Auth.JWTExpireMinute) * time.Minute

	userRepo := repository.NewUserRepository(app.MySQL)
	logRepo := repository.NewProteinLogRepository(app.MySQL)
	sessionStore := session.NewStore(app.Redis, jwtTTL)
	intakeCache := cache.NewIntakeCache(
		app.Redis,
		time.Duration(app.Config.Redis.IntakeTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.IntakeDirtyTTLSeconds)*time.Second,
	)
	intakePublisher := rabbitmq.NewIntakePublisher(app.MQConn, app.Config.RabbitMQ.IntakePersistQueue)

	authService := appsvc.NewAuthService(userRepo, sessionStore, app.Config.Auth.JWTSecret, jwtTTL)
	profileService := appsvc.NewProfileService(userRepo, app.Config.Nutrition.ProteinGramsPerKg)
	intakeService := appsvc.NewIntakeService(logRepo, intakePublisher, intakeCache, app.Log, app.Config.Nutrition.DefaultDailyTarget)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	dashboardHandler := handler.NewDashboardHandler(authService, intakeService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	healthHandler := handler.NewHealthHandler(app)

	router.GET("/healthz", healthHandler.Check)
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	authed := router.Group("/")
	authed.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret, sessionStore))
	authed.GET("/", dashboardHandler.Show)
	authed.GET("/profile_setup", profileHandler.Show)
	authed.POST("/profile_setup", profileHandler.Setup)
	authed.GET("/log_food", intakeHandler.List)
	authed.POST("/log_food", intakeHandler.Create)
	authed.GET("/logout", authHandler.Logout)

	return router
}
