package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/japanesestudent/lesson-portal/docs"
	"github.com/japanesestudent/lesson-portal/internal/config"
	"github.com/japanesestudent/lesson-portal/internal/handlers"
	"github.com/japanesestudent/lesson-portal/internal/logger"
	loggerMiddleware "github.com/japanesestudent/lesson-portal/internal/logger/middleware"
	"github.com/japanesestudent/lesson-portal/internal/middlewares"
	"github.com/japanesestudent/lesson-portal/internal/services"
	"github.com/japanesestudent/lesson-portal/internal/transport"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 1 * 1024 * 1024 // 1MB, forms only

// @title Lesson Portal API
// @version 1.0
// @description Gateway between the lesson portal views and the lessons REST service

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8081
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for the admin screens
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

	logger.Logger.Info("Starting Lesson Portal gateway", zap.String("api_base_url", cfg.API.BaseURL))

	// Lessons API transport, single-shot requests without client timeout
	apiClient := transport.NewClient(cfg.API.BaseURL, &http.Client{}, logger.Logger)

	// Initialize services
	adminLessonService := services.NewAdminLessonService(apiClient, logger.Logger)
	learnLessonService := services.NewLearnLessonService(apiClient, logger.Logger)
	gameService := services.NewGameService(nil)
	uiStateService := services.NewUIStateService(logger.Logger)

	// Initialize handlers
	adminLessonHandler := handlers.NewAdminLessonHandler(adminLessonService, uiStateService, logger.Logger, middlewares.APIKeyMiddleware(cfg.AdminAPIKey))
	learnLessonHandler := handlers.NewLearnLessonHandler(learnLessonService, uiStateService, logger.Logger)
	gameHandler := handlers.NewGameHandler(gameService, uiStateService, logger.Logger)
	uiStateHandler := handlers.NewUIStateHandler(uiStateService, logger.Logger)

	if cfg.AdminAPIKey == "" {
		logger.Logger.Warn("ADMIN_API_KEY is not set, admin routes are open")
	}

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		adminLessonHandler.RegisterRoutes(r)
		learnLessonHandler.RegisterRoutes(r)
		gameHandler.RegisterRoutes(r)
		uiStateHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
