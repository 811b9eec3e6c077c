package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fantasyedge/fantasy-edge/internal/api"
	"github.com/fantasyedge/fantasy-edge/internal/api/middleware"
	"github.com/fantasyedge/fantasy-edge/internal/providers"
	"github.com/fantasyedge/fantasy-edge/internal/services"
	"github.com/fantasyedge/fantasy-edge/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to Redis, or fall back to the in-process cache when no URL is
	// configured
	var redisClient *redis.Client
	var cache services.Cache
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		ctx := context.Background()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = services.NewCacheService(redisClient)
	} else {
		logrus.Warn("REDIS_URL not set, using in-memory snapshot cache")
		cache = services.NewMemoryCache()
	}

	// Initialize services
	webSocketHub := services.NewWebSocketHub(logrus.StandardLogger())
	go webSocketHub.Run()

	oddsClient := providers.NewOddsAPIClient(providers.OddsAPIConfig{
		APIKey:            cfg.OddsAPIKey,
		BaseURL:           cfg.OddsAPIBaseURL,
		Bookmakers:        cfg.OddsBookmakers,
		RequestsPerSecond: cfg.OddsRequestsPerSecond,
		Timeout:           cfg.ExternalAPITimeout,
		BreakerThreshold:  uint32(cfg.CircuitBreakerThreshold),
	}, logrus.StandardLogger())

	analyzer := services.NewAnalyzerService(
		oddsClient,
		cache,
		services.NewPositionResolver(),
		webSocketHub,
		logrus.StandardLogger(),
		cfg.SnapshotTTL,
	)

	// Parse refresh interval
	refreshInterval, err := time.ParseDuration(cfg.RefreshInterval)
	if err != nil {
		logrus.Warnf("Invalid refresh interval, using default 30m: %v", err)
		refreshInterval = 30 * time.Minute
	}

	refresher := services.NewSnapshotRefresher(analyzer, cache, logrus.StandardLogger(), refreshInterval)
	if !cfg.SkipInitialRefresh {
		if err := refresher.Start(); err != nil {
			logrus.Errorf("Failed to start snapshot refresher: %v", err)
		}
		defer refresher.Stop()
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, analyzer, refresher, redisClient)

	// WebSocket endpoint for analysis progress, at root level
	router.GET("/ws/progress", func(c *gin.Context) {
		webSocketHub.HandleConnection(c.Writer, c.Request)
	})

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
