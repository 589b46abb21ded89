package routes

import (
	"fmt"
	"net/http"

	"employee-portal-backend/internal/api/handlers"
	"employee-portal-backend/internal/api/middleware"
	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/config"
	"employee-portal-backend/internal/repository"
	"employee-portal-backend/internal/service"
	"employee-portal-backend/internal/store"
	"employee-portal-backend/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// maxBodyBytes caps request bodies; the largest body is a profile draft
const maxBodyBytes = 1 << 20

// SetupRoutes configures all the routes for the application.
// A nil session store keeps sessions in memory.
func SetupRoutes(db *gorm.DB, cfg *config.Config, sessions auth.SessionStore) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.BodyLimit(maxBodyBytes))

	// Initialize validator
	validator := validator.New()

	// Initialize store client and repositories
	client := store.NewGormClient(db)
	employeeRepo := repository.NewEmployeeRepository(client)
	workScheduleRepo := repository.NewWorkScheduleRepository(client)
	presenceRepo := repository.NewPresenceRepository(client)

	// Initialize services
	profileService := service.NewProfileService(employeeRepo, workScheduleRepo, validator)
	presenceService := service.NewPresenceService(presenceRepo, cfg.Location())

	if sessions == nil {
		sessions = auth.NewMemoryStore()
	}
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), employeeRepo, sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	// Screens live per session and go away on sign-out
	screens := view.NewRegistry(profileService, presenceService)
	authService.OnSignOut(screens.Drop)

	// Initialize handlers
	var sessionPinger handlers.Pinger
	if p, ok := sessions.(handlers.Pinger); ok {
		sessionPinger = p
	}
	healthHandler := handlers.NewHealthHandler(db, sessionPinger)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	profileHandler := handlers.NewProfileHandler(screens, profileService)
	calendarHandler := handlers.NewCalendarHandler(screens, presenceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Profile routes
		profile := v1.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.POST("/edit", profileHandler.BeginEdit)
			profile.PATCH("/draft", profileHandler.UpdateDraft)
			profile.POST("/submit", profileHandler.Submit)
			profile.POST("/cancel", profileHandler.CancelEdit)
		}

		v1.GET("/work-schedules", profileHandler.ListWorkSchedules)

		// Calendar routes
		v1.GET("/calendar", calendarHandler.GetCalendar)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
