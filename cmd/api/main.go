package main

// @title Career Guidance API
// @version 1.0
// @description AI-powered career guidance for tech and MBA students: roadmaps, market data, and skills-gap analysis.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rishi-nd08/career-guidance/config"
	"github.com/rishi-nd08/career-guidance/pkg/api/handlers"
	"github.com/rishi-nd08/career-guidance/pkg/cache"
	"github.com/rishi-nd08/career-guidance/pkg/database"
	"github.com/rishi-nd08/career-guidance/pkg/guidance"
	"github.com/rishi-nd08/career-guidance/pkg/jobs"
	"github.com/rishi-nd08/career-guidance/pkg/logger"
	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
	"github.com/rishi-nd08/career-guidance/pkg/metrics"
	custommiddleware "github.com/rishi-nd08/career-guidance/pkg/middleware"
	"github.com/rishi-nd08/career-guidance/pkg/roadmaps"
	"github.com/rishi-nd08/career-guidance/pkg/skills"
)

func main() {
	// Load .env if present (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Printf("ℹ️  No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
			BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
				return event
			},
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize services
	roadmapService := roadmaps.NewService(appLogger.With("component", "roadmaps"))
	skillsService := skills.NewService()
	marketService := marketdata.NewService(db, redisClient, marketdata.NewStaticFetcher(), prometheusMetrics,
		appLogger.With("component", "marketdata"))
	guidanceService := guidance.NewService(db, roadmapService, marketService, skillsService, prometheusMetrics,
		appLogger.With("component", "guidance"))

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(cfg.TemplatePath)
	guidanceHandler := handlers.NewGuidanceHandler(guidanceService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService, prometheusMetrics)
	marketDataHandler := handlers.NewMarketDataHandler(marketService)
	skillsHandler := handlers.NewSkillsHandler(skillsService, prometheusMetrics)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	endpointRateLimiter := custommiddleware.NewPerEndpointRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	endpointRateLimiter.SetEndpointLimit("POST /api/career-guidance", cfg.GuidanceRequestsPerMinute, cfg.GuidanceBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))
	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Landing page and health endpoints (public)
	e.GET("/", systemHandler.Root)
	e.GET("/health", systemHandler.Health)

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API routes
	api := e.Group("/api")
	api.Use(endpointRateLimiter.RateLimitMiddleware())

	api.POST("/career-guidance", guidanceHandler.GetCareerGuidance)
	api.GET("/career-insights/:field", guidanceHandler.GetCareerInsights)

	api.GET("/roadmap/:field", roadmapHandler.GetRoadmap)
	api.GET("/marketing-consultant-roadmap", roadmapHandler.GetMarketingConsultantRoadmap)
	api.GET("/management-consulting-guide", roadmapHandler.GetManagementConsultingGuide)

	api.GET("/market-data/:company", marketDataHandler.GetMarketData)
	api.GET("/market-trends", marketDataHandler.GetMarketTrends)
	api.GET("/layoff-stats", marketDataHandler.GetLayoffStatistics)

	api.GET("/skills/:role", skillsHandler.GetRoleSkills)
	api.POST("/skills-gap", skillsHandler.AnalyzeSkillsGap)

	// Background jobs
	cronManager := jobs.NewCronManager(marketService, nil)
	if cfg.SnapshotRefreshEnabled {
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to set up cron jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("✅ Cron jobs started")
	} else {
		log.Printf("ℹ️  Snapshot refresh jobs disabled")
	}

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Career Guidance API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), guidance: %d req/min (burst: %d)",
		cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst, cfg.GuidanceRequestsPerMinute, cfg.GuidanceBurst)
	log.Printf("⏰ Cron jobs: Daily 2AM (refresh stale snapshots), Hourly (warm market caches)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cfg.SnapshotRefreshEnabled {
		<-cronManager.Stop().Done()
		log.Println("✅ Cron jobs stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
