package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/practicehub/backend/docs"
	"github.com/practicehub/backend/internal/auth"
	"github.com/practicehub/backend/internal/cache"
	"github.com/practicehub/backend/internal/config"
	"github.com/practicehub/backend/internal/feedback"
	"github.com/practicehub/backend/internal/handlers"
	"github.com/practicehub/backend/internal/logger"
	"github.com/practicehub/backend/internal/middleware"
	"github.com/practicehub/backend/internal/repositories"
	"github.com/practicehub/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title PracticeHub API
// @version 1.0
// @description API for course browsing, multiple-choice practice and per-user progress tracking

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting PracticeHub backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Catalog cache is optional
	var questionCache services.QuestionCache
	if cfg.Redis.Host != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.Connect(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer rdb.Close()
		questionCache = cache.NewQuestionCache(rdb, cfg.Redis.TTL, logger.Logger)
		logger.Logger.Info("Question cache enabled", zap.String("addr", cfg.RedisAddr()), zap.Duration("ttl", cfg.Redis.TTL))
	}

	// AI feedback is optional
	var feedbackService handlers.FeedbackService
	if cfg.OpenRouter.APIKey != "" {
		client, err := feedback.NewClient(feedback.Config{
			APIKey:  cfg.OpenRouter.APIKey,
			BaseURL: cfg.OpenRouter.BaseURL,
			Model:   cfg.OpenRouter.Model,
		}, logger.Logger)
		if err != nil {
			logger.Logger.Fatal("Failed to create feedback client", zap.Error(err))
		}
		feedbackService = client
	} else {
		logger.Logger.Warn("OPENROUTER_API_KEY is not set, AI feedback is disabled")
	}

	// Initialize JWT token validation
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize repositories
	courseRepo := repositories.NewCourseRepository(db)
	topicRepo := repositories.NewTopicRepository(db)
	questionRepo := repositories.NewQuestionRepository(db, logger.Logger)
	statRepo := repositories.NewDashboardStatRepository(db, logger.Logger)

	// Initialize services
	courseService := services.NewCourseService(courseRepo, logger.Logger)
	topicService := services.NewTopicService(topicRepo, courseRepo, logger.Logger)
	questionService := services.NewQuestionService(questionRepo, topicRepo, questionCache, logger.Logger)
	dashboardService := services.NewDashboardService(statRepo, questionService, logger.Logger)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService, logger.Logger)
	topicHandler := handlers.NewTopicHandler(topicService, logger.Logger)
	questionHandler := handlers.NewQuestionHandler(questionService, logger.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger.Logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, logger.Logger)
	healthHandler := handlers.NewHealthHandler(db, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.Auth(tokenGenerator)
	adminMiddleware := middleware.RequireRole(tokenGenerator, auth.RoleAdmin)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger.Logger))
	r.Use(middleware.Recovery(logger.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimit(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	healthHandler.RegisterRoutes(r)

	r.Route("/api/v1", func(r chi.Router) {
		courseHandler.RegisterRoutes(r, adminMiddleware)
		topicHandler.RegisterRoutes(r, adminMiddleware)
		questionHandler.RegisterRoutes(r, adminMiddleware)
		dashboardHandler.RegisterRoutes(r, authMiddleware)
		feedbackHandler.RegisterRoutes(r, authMiddleware)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "practice_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Running from cmd/
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
