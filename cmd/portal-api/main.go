package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cloudpulse/partner-portal/partner-portal-backend/internal/cloudflare"
	"cloudpulse/partner-portal/partner-portal-backend/internal/config"
	"cloudpulse/partner-portal/partner-portal-backend/internal/dashboard"
	"cloudpulse/partner-portal/partner-portal-backend/internal/onboarding"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "development" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Surface credential problems at startup instead of on the first
	// onboarding call. Warnings do not block startup; hard errors do not
	// either — the dashboard half of the portal works without credentials.
	validation := cfg.Cloudflare.Validate()
	for _, warning := range validation.Warnings {
		logger.Warn("cloudflare config warning", zap.String("warning", warning))
	}
	for _, problem := range validation.Errors {
		logger.Error("cloudflare config error", zap.String("error", problem))
	}

	// Cloudflare client + onboarding orchestrator
	client := cloudflare.NewClient(cfg.Cloudflare.Credentials())
	if cfg.Cloudflare.BaseURL != "" {
		client.BaseURL = cfg.Cloudflare.BaseURL
	}
	orchestrator := onboarding.NewOrchestrator(client, logger)
	onboardingHandler := onboarding.NewHandler(orchestrator, client, logger)

	// Dashboard analytics over the static dataset
	dashboardService := dashboard.NewService(dashboard.NewDataset(), logger)
	alertMonitor := dashboard.NewAlertMonitor(
		dashboardService,
		logger,
		cfg.Alerts.Schedule,
		cfg.Alerts.WarningThreshold,
		cfg.Alerts.CriticalThreshold,
	)
	if err := alertMonitor.Start(); err != nil {
		logger.Fatal("Failed to start alert monitor", zap.Error(err))
	}
	defer alertMonitor.Stop()
	dashboardHandler := dashboard.NewHandler(dashboardService, alertMonitor, logger)

	// Setup Router
	if os.Getenv("APP_ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS Middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Register Routes
	api := router.Group("/api/v1")
	{
		onboardingHandler.RegisterRoutes(api.Group("/onboarding"))
		dashboardHandler.RegisterRoutes(api.Group("/dashboard"))
	}

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Server.GetServerAddr(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", srv.Addr))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", zap.Error(err))
	}

	logger.Info("Server exiting")
}
