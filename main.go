package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"brandtools-be/internal/cache"
	"brandtools-be/internal/config"
	"brandtools-be/internal/controllers"
	"brandtools-be/internal/database"
	"brandtools-be/internal/jwt"
	"brandtools-be/internal/middleware"
	"brandtools-be/internal/repository"
	"brandtools-be/internal/service"
	"brandtools-be/internal/webhook"
	"brandtools-be/internal/workflow"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis-backed workflow storage (optional - continue if Redis
	// is unavailable; generation still works, chaining does not)
	var workflowStore *workflow.Store
	cacheClient, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without workflow storage.", err)
	} else {
		log.Println("Connected to Redis")
		workflowStore = workflow.NewStore(cacheClient)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	profileService := service.NewProfileService(userRepo)

	// Initialize the generation proxy
	webhookClient := webhook.NewClient()
	toolRegistry := webhook.NewRegistry(cfg)

	cookieSecure := cfg.Env == "production"

	// Initialize controllers
	authController := controllers.NewAuthController(authService, workflowStore, cookieSecure)
	onboardingController := controllers.NewOnboardingController(profileService)
	generationController := controllers.NewGenerationController(webhookClient, toolRegistry, workflowStore)
	workflowController := controllers.NewWorkflowController(workflowStore, toolRegistry)
	qrcodeController := controllers.NewQRCodeController(profileService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	toolsRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitToolsRPS), cfg.RateLimitToolsBurst)

	// Create a Gin router
	router := gin.Default()

	// Protected tool pages redirect to the home page without a valid session
	router.Use(middleware.PageGuard(jwtService, cookieSecure))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/signup", authController.Signup)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.GET("/me", middleware.AuthMiddleware(jwtService), authController.Me)
			auth.DELETE("/account", middleware.AuthMiddleware(jwtService), authController.DeleteAccount)
		}

		// Protected routes - require a valid session cookie
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/profile/onboarding", onboardingController.Get)
			protected.POST("/profile/onboarding", onboardingController.Submit)
			protected.GET("/profile/qrcode", qrcodeController.ProfileQRCode)

			// Generation proxy with stricter rate limiting
			protected.POST("/tools/:tool", toolsRateLimiter.LimitMiddleware(), generationController.Generate)

			protected.GET("/workflow", workflowController.All)
			protected.GET("/workflow/:tool", workflowController.Get)
			protected.DELETE("/workflow", workflowController.Clear)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
