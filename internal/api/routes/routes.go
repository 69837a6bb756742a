package routes

import (
	"fmt"

	"task-tracker-backend/internal/api/handlers"
	"task-tracker-backend/internal/api/middleware"
	"task-tracker-backend/internal/auth"
	"task-tracker-backend/internal/captcha"
	"task-tracker-backend/internal/config"
	"task-tracker-backend/internal/logger"
	"task-tracker-backend/internal/repository"
	"task-tracker-backend/internal/service"
	"task-tracker-backend/internal/storage"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	teamTaskRepo := repository.NewTeamTaskRepository(db)

	// Identity collaborators
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	google := auth.NewGoogleVerifier(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	images, err := storage.NewImageStore(cfg.UploadDir, cfg.MaxUploadMB<<20)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}
	var botCheck service.CaptchaVerifier
	if cfg.RecaptchaEnabled() {
		botCheck = captcha.NewRecaptchaVerifier(cfg.RecaptchaSecret, cfg.RecaptchaVerifyURL)
	} else {
		logger.New().Warn("RECAPTCHA_SECRET not set, login bot check disabled")
	}
	if !cfg.GoogleLoginEnabled() {
		logger.New().Warn("GOOGLE_CLIENT_ID not set, Google login will be rejected")
	}

	// Initialize services
	identityService := service.NewIdentityService(userRepo, tokens, botCheck, google, images, validator)
	teamService := service.NewTeamService(teamRepo, membershipRepo, userRepo, validator)
	todoService := service.NewTodoService(todoRepo, cfg.Location(), validator)
	teamTaskService := service.NewTeamTaskService(teamTaskRepo, teamService, cfg.Location(), validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	authHandler := handlers.NewAuthHandler(identityService)
	userHandler := handlers.NewUserHandler(identityService)
	todoHandler := handlers.NewTodoHandler(todoService)
	teamHandler := handlers.NewTeamHandler(teamService)
	teamTaskHandler := handlers.NewTeamTaskHandler(teamTaskService)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded profile images
	router.Static(storage.PublicPrefix, images.Dir())

	api := router.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/auth/federated", authHandler.FederatedLogin)
	api.POST("/auth/google", authHandler.FederatedLogin)
	api.GET("/profile/:username", userHandler.GetProfile)

	// Session routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.PUT("/profile", userHandler.UpdateProfile)
		protected.GET("/users", userHandler.ListUsers)

		todos := protected.Group("/todos")
		{
			todos.GET("", todoHandler.ListTodos)
			todos.POST("", todoHandler.CreateTodo)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}

		teams := protected.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:teamId/members", teamHandler.ListMembers)
			teams.POST("/:teamId/members", teamHandler.AddMember)
			teams.DELETE("/:teamId/members/:userId", teamHandler.RemoveMember)
			teams.POST("/:teamId/tasks", teamTaskHandler.CreateTask)
			teams.GET("/:teamId/tasks", teamTaskHandler.ListTasks)
			teams.PUT("/:teamId/tasks/:taskId", teamTaskHandler.UpdateTask)
		}
	}

	return router, nil
}
