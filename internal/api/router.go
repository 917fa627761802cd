package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pitchbridge/pitchbridge-api/docs"
	"github.com/pitchbridge/pitchbridge-api/internal/api/handler"
	"github.com/pitchbridge/pitchbridge-api/internal/api/middleware"
	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
	"github.com/pitchbridge/pitchbridge-api/internal/core/service"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/config"
	mongodb "github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Dependencies flow in one direction: repositories into services into
// handlers, wired explicitly here.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pitchbridge"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	startupRepo := mongodb.NewStartupRepository(db)
	pitchRepo := mongodb.NewPitchRepository(db)
	meetingRepo := mongodb.NewMeetingRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	ratingRepo := mongodb.NewRatingRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	preferenceRepo := mongodb.NewPreferenceRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	userService := service.NewUserService(userRepo, log)
	startupService := service.NewStartupService(startupRepo, userRepo, log)
	pitchService := service.NewPitchService(pitchRepo, startupRepo, userRepo, notifier, log)
	meetingService := service.NewMeetingService(meetingRepo, userRepo, notifier, log)
	messageService := service.NewMessageService(messageRepo, userRepo, notifier, log)
	ratingService := service.NewRatingService(ratingRepo, userRepo, notifier, log)
	commentService := service.NewCommentService(commentRepo, startupRepo, userRepo, log)
	notificationService := service.NewNotificationService(notificationRepo)
	preferenceService := service.NewPreferenceService(preferenceRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	startupHandler := handler.NewStartupHandler(startupService)
	pitchHandler := handler.NewPitchHandler(pitchService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	messageHandler := handler.NewMessageHandler(messageService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	commentHandler := handler.NewCommentHandler(commentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)

	authGuard := middleware.Auth(tokenService, userRepo)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public routes ---
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)
	e.GET("/api/startups", startupHandler.List)
	e.GET("/api/startups/:id", startupHandler.Get)
	e.GET("/api/comments/startup/:startupID", commentHandler.ListByStartup)

	// --- Authenticated routes ---
	g := e.Group("/api", authGuard)

	g.GET("/users", userHandler.List)
	g.GET("/users/:id", userHandler.Get)
	g.PUT("/users/:id", userHandler.Update)
	g.PUT("/users/:id/password", authHandler.ChangePassword)
	g.DELETE("/users/:id", userHandler.Delete)

	g.POST("/startups", startupHandler.Create, middleware.RBAC(domain.RoleFounder))
	g.PUT("/startups/:id", startupHandler.Update)
	g.DELETE("/startups/:id", startupHandler.Delete)

	g.POST("/pitches", pitchHandler.Create, middleware.RBAC(domain.RoleFounder))
	g.GET("/pitches", pitchHandler.List)
	g.GET("/pitches/startup/:startupID", pitchHandler.ListByStartup)
	g.GET("/pitches/:id", pitchHandler.Get)
	g.PUT("/pitches/:id/status", pitchHandler.UpdateStatus, middleware.RBAC(domain.RoleInvestor))
	g.DELETE("/pitches/:id", pitchHandler.Delete)

	g.POST("/meetings", meetingHandler.Schedule)
	g.GET("/meetings", meetingHandler.List)
	g.DELETE("/meetings/:id", meetingHandler.Cancel)

	g.POST("/messages", messageHandler.Send)
	g.GET("/messages/:userID", messageHandler.Conversation)
	g.PUT("/messages/:id/read", messageHandler.MarkRead)
	g.DELETE("/messages/:id", messageHandler.Delete)

	g.POST("/ratings", ratingHandler.Create)
	g.GET("/ratings/user/:userID", ratingHandler.ListBySubject)
	g.DELETE("/ratings/:id", ratingHandler.Delete)

	g.POST("/comments", commentHandler.Create)
	g.DELETE("/comments/:id", commentHandler.Delete)

	g.GET("/notifications", notificationHandler.List)
	g.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	g.DELETE("/notifications/:id", notificationHandler.Delete)

	g.PUT("/investor-preferences", preferenceHandler.Set, middleware.RBAC(domain.RoleInvestor))
	g.GET("/investor-preferences/:investorID", preferenceHandler.Get)

	return e
}
