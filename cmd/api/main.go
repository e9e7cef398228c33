package main

import (
	"fmt"
	"net/http"
	"os"

	"finai/internal/config"
	"finai/internal/database"
	"finai/internal/engine"
	"finai/internal/handlers"
	"finai/internal/logger"
	"finai/internal/middleware"
	"finai/internal/services"
	"finai/internal/storage"
	"finai/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           FinAI API
// @version         1.0
// @description     FinAI is a personal finance planner: budgets, savings goals, debt tracking, recurring transactions, and rule-based insights.

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
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services and the financial engine
	db := dbManager.DB()
	userService := services.NewUserService(db)
	snapshotRepo := storage.NewSnapshotRepository(db)
	engineManager := engine.NewManager(snapshotRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, engineManager)
	budgetHandler := handlers.NewBudgetHandler(engineManager)
	goalHandler := handlers.NewGoalHandler(engineManager)
	transactionHandler := handlers.NewTransactionHandler(engineManager)
	debtHandler := handlers.NewDebtHandler(engineManager)
	insightHandler := handlers.NewInsightHandler(engineManager)
	notificationHandler := handlers.NewNotificationHandler(engineManager)
	dashboardHandler := handlers.NewDashboardHandler(engineManager)

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

	// User profile and session
	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/auth/logout", authHandler.Logout)

	// Budget category routes
	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.ListCategories)
	budgets.POST("", budgetHandler.CreateCategory)
	budgets.PUT("/:id", budgetHandler.UpdateCategory)
	budgets.DELETE("/:id", budgetHandler.DeleteCategory)

	// Savings goal routes
	goals := protected.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/money", goalHandler.AddMoney)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)

	// Debt routes
	debts := protected.Group("/debts")
	debts.GET("", debtHandler.ListDebts)
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("/payoff-plan", debtHandler.GetPayoffPlan)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/payments", debtHandler.CreatePayment)

	// Insight routes
	insights := protected.Group("/insights")
	insights.GET("", insightHandler.ListInsights)
	insights.POST("/:id/dismiss", insightHandler.DismissInsight)

	// Notification routes
	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.POST("/read", notificationHandler.MarkAllRead)

	// Dashboard and income routes
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.PUT("/income", dashboardHandler.UpdateIncome)

	log.Infof("Starting FinAI backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
