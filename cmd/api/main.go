package main

import (
	"fmt"
	"net/http"
	"os"

	"financas/internal/backend"
	"financas/internal/config"
	"financas/internal/database"
	"financas/internal/handlers"
	"financas/internal/logger"
	"financas/internal/middleware"
	"financas/internal/records"
	"financas/internal/session"
	"financas/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "financas/internal/docs" // Import swagger docs
)

// @title           Financas API
// @version         1.0
// @description     Financas is a personal finance tracker: users authenticate and record income (receitas) and expense (despesas) entries with description, amount, date, and category.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize the backend facade and controllers
	store := backend.NewGorm(dbManager.DB())
	sessions := session.NewManager()
	formController := records.NewFormController(store, appConfig.OwnerScopedRecords)
	listPresenter := records.NewListPresenter(store, appConfig.OwnerScopedRecords)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(store, sessions)
	recordHandler := handlers.NewRecordHandler(formController, listPresenter)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Session
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)

	// Record routes
	recordRoutes := protected.Group("/records")
	recordRoutes.POST("", recordHandler.CreateRecord)
	recordRoutes.PUT("/:id", recordHandler.UpdateRecord)
	recordRoutes.GET("", recordHandler.ListRecords)

	log.Infof("Starting financas backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
