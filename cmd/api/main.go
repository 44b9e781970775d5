// @title CareerForge API
// @version 1.0
// @description AI powered career coaching API: profiles, industry insights, cover letters and interview prep.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"careerforge/internal/adapter"
	"careerforge/internal/adapter/textgen"
	"careerforge/internal/cache"
	"careerforge/internal/config"
	"careerforge/internal/database"
	"careerforge/internal/domain"
	"careerforge/internal/handler"
	"careerforge/internal/logger"
	"careerforge/internal/middleware"
	"careerforge/internal/repository"
	"careerforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize text generator. In mock mode the services never call the
	// provider, so no client is created and no API key is required. A failed
	// client setup (usually a missing API key) degrades to per-request
	// failures instead of refusing to start.
	var generator domain.TextGenerator
	if cfg.AI.MockMode {
		appLogger.Info("AI mock mode enabled, skipping Gemini client initialization")
	} else {
		gemini, err := textgen.NewGeminiGenerator(context.Background(), cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, appLogger)
		if err != nil {
			appLogger.Warn("Failed to create Gemini client, AI operations will fail per request", zap.Error(err))
			generator = textgen.NewUnavailableGenerator(err)
		} else {
			generator = gemini
			appLogger.Info("Gemini client initialized", zap.String("model", cfg.AI.Model))
		}
	}

	// Connect to database. The app stays up without one; persistence
	// dependent operations then report the database as unconfigured.
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if db == nil {
		appLogger.Warn("No database configured, running without persistence")
	} else {
		appLogger.Info("Successfully connected to database")
	}

	// Initialize repositories
	var (
		userRepository        repository.UserRepository
		insightRepository     repository.InsightRepository
		coverLetterRepository repository.CoverLetterRepository
		assessmentRepository  repository.AssessmentRepository
		txManager             domain.TransactionManager
	)
	if db != nil {
		userRepository = repository.NewSQLXUserRepository(db)
		insightRepository = repository.NewSQLXInsightRepository(db)
		coverLetterRepository = repository.NewSQLXCoverLetterRepository(db)
		assessmentRepository = repository.NewSQLXAssessmentRepository(db)
		txManager = repository.NewTransactionManagerAdapter(db)
	}

	// Initialize Redis client and cache adapter. Caching is best effort;
	// the insight service works without it.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
	} else if redisClient != nil {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	// Initialize services
	insightService := service.NewInsightService(userRepository, insightRepository, generator, cacheAdapter, cfg)
	userService := service.NewUserService(userRepository, insightRepository, insightService, txManager, cacheAdapter, cfg)
	coverLetterService := service.NewCoverLetterService(userRepository, coverLetterRepository, generator, cfg)
	interviewService := service.NewInterviewService(userRepository, assessmentRepository, generator, cfg)

	authService, err := service.NewAuthService(userService, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("AuthService initialized")

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	insightHandler := handler.NewInsightHandler(insightService)
	coverLetterHandler := handler.NewCoverLetterHandler(coverLetterService)
	interviewHandler := handler.NewInterviewHandler(interviewService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// User routes
	userGroup := apiGroup.Group("/users")
	userGroup.Get("/me", middleware.Protected(authService), userHandler.GetMyProfile)
	userGroup.Put("/me", middleware.Protected(authService), userHandler.UpdateMyProfile)
	userGroup.Get("/me/onboarding", middleware.OptionalAuth(authService), userHandler.GetOnboardingStatus)

	// Insight routes
	apiGroup.Get("/insights", middleware.Protected(authService), insightHandler.GetIndustryInsights)

	// Cover letter routes (all protected)
	letterGroup := apiGroup.Group("/cover-letters", middleware.Protected(authService))
	letterGroup.Post("/", coverLetterHandler.Generate)
	letterGroup.Get("/", coverLetterHandler.List)
	letterGroup.Get("/:id", coverLetterHandler.Get)
	letterGroup.Delete("/:id", coverLetterHandler.Delete)

	// Interview routes (all protected)
	interviewGroup := apiGroup.Group("/interview", middleware.Protected(authService))
	interviewGroup.Get("/quiz", interviewHandler.GenerateQuiz)
	interviewGroup.Post("/assessments", interviewHandler.SaveQuizResult)
	interviewGroup.Get("/assessments", interviewHandler.ListAssessments)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
