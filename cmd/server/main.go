package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skabdullah999/Dumurianews24/internal/config"
	"github.com/skabdullah999/Dumurianews24/internal/handler"
	"github.com/skabdullah999/Dumurianews24/internal/infrastructure/database"
	"github.com/skabdullah999/Dumurianews24/internal/infrastructure/mediastore"
	"github.com/skabdullah999/Dumurianews24/internal/logger"
	"github.com/skabdullah999/Dumurianews24/internal/metrics"
	"github.com/skabdullah999/Dumurianews24/internal/middleware"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
	"github.com/skabdullah999/Dumurianews24/internal/service"
	"github.com/skabdullah999/Dumurianews24/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	dbConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	// Apply pending migrations before serving traffic
	if err := database.RunMigrations("migrations", dbConfig); err != nil {
		logger.Fatal("Failed to run migrations",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), dbConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Media storage for editor image uploads
	media, err := mediastore.NewLocalStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize media storage",
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	newsRepo := repository.NewPostgresNewsRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	adminRepo := repository.NewPostgresAdminUserRepository(pool)
	sessionRepo := repository.NewPostgresSessionRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	contentService := service.NewContentService(newsRepo, categoryRepo)
	searchService := service.NewSearchService(newsRepo, categoryRepo)
	commentService := service.NewCommentService(commentRepo)
	authService := service.NewAuthService(adminRepo, sessionRepo, cfg.SessionTTL)
	editorService := service.NewEditorService(contentService, media, v)

	// Initialize handlers
	newsHandler := handler.NewNewsHandler(contentService)
	searchHandler := handler.NewSearchHandler(searchService)
	commentHandler := handler.NewCommentHandler(commentService, v)
	authHandler := handler.NewAuthHandler(authService, v, int(cfg.SessionTTL.Seconds()))
	adminHandler := handler.NewAdminHandler(contentService, commentService, editorService, v)
	healthHandler := handler.NewHealthHandler(pool, media.Dir(), version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded images
	router.Static(cfg.MediaBaseURL, media.Dir())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		news := v1.Group("/news")
		{
			news.GET("", newsHandler.ListNews)
			news.GET("/latest", newsHandler.LatestNews)
			news.GET("/breaking", newsHandler.BreakingNews)
			news.GET("/:id", newsHandler.GetNews)
			news.GET("/:id/comments", commentHandler.ListComments)
			news.POST("/:id/comments", commentHandler.CreateComment)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", newsHandler.ListCategories)
			categories.GET("/:id/news", newsHandler.NewsByCategory)
		}

		search := v1.Group("/search")
		{
			search.GET("", searchHandler.Search)
			search.GET("/suggestions", searchHandler.Suggestions)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/signup", authHandler.Signup)
			auth.GET("/session", authHandler.Session)
			auth.GET("/events", authHandler.Events)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireSession(authService, "/admin"))
		{
			admin.GET("/news", adminHandler.ListNews)
			admin.POST("/news", adminHandler.CreateNews)
			admin.PUT("/news/:id", adminHandler.UpdateNews)
			admin.DELETE("/news/:id", adminHandler.DeleteNews)

			admin.GET("/categories", adminHandler.ListCategories)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/comments", adminHandler.ListComments)
			admin.POST("/comments/:id/approve", adminHandler.ApproveComment)
			admin.DELETE("/comments/:id", adminHandler.DeleteComment)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
