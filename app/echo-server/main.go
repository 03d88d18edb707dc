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

	"phoneFinder/app/echo-server/metrics"
	"phoneFinder/app/echo-server/router"
	"phoneFinder/business/catalog"
	"phoneFinder/business/compare"
	"phoneFinder/business/pricing"
	"phoneFinder/business/recommend"
	"phoneFinder/internal/middleware"
	psqlRepo "phoneFinder/internal/repository/postgres"
	"phoneFinder/internal/rest"
	"phoneFinder/pkg/config"
	"phoneFinder/pkg/database"
	"phoneFinder/pkg/logger"
	pkgmetrics "phoneFinder/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Phone Finder", "version", cfg.App.Version, "catalog_source", cfg.Catalog.Source)

	metrics.Init()
	pkgmetrics.Init()

	readiness := middleware.NewReadiness()

	// Scoring policy
	policy, err := recommend.LoadPolicy(cfg.Recommend.PolicyPath, recommend.DefaultConfig())
	if err != nil {
		logger.Fatal("Failed to load scoring policy", "path", cfg.Recommend.PolicyPath, "error", err)
	}
	if cfg.Recommend.Strategy != "" {
		policy.Strategy = cfg.Recommend.Strategy
	}
	if cfg.Recommend.TopK > 0 {
		policy.TopK = cfg.Recommend.TopK
	}

	// Catalog + fitted model
	source, closeSource := catalogSource(cfg)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := catalog.Load(loadCtx, source)
	cancelLoad()
	closeSource()
	if err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}
	pkgmetrics.CatalogEntries.Set(float64(cat.Len()))

	snap, err := recommend.NewSnapshot(cat)
	if err != nil {
		logger.Fatal("Failed to fit feature model", "error", err)
	}

	// Init service
	pricer, err := pricing.NewAggregator(policy.RetailerPriority, policy.HighRating)
	if err != nil {
		logger.Fatal("Invalid retailer policy", "error", err)
	}

	recommendService, err := recommend.NewService(snap, pricer, policy)
	if err != nil {
		logger.Fatal("Invalid recommendation policy", "error", err)
	}

	compareService, err := compare.NewService(cat, pricer, compare.Weights{
		RAM:          policy.Compare.RAM,
		Rating:       policy.Compare.Rating,
		PriceDivisor: policy.Compare.PriceDivisor,
	})
	if err != nil {
		logger.Fatal("Invalid compare weights", "error", err)
	}

	// Init handler
	recommendHandler := rest.NewRecommendationHandler(recommendService)
	compareHandler := rest.NewCompareHandler(compareService)
	phoneHandler := rest.NewPhoneHandler(cat, pricer, recommendService, recommend.StrategyNames())

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = rest.JSONSerializer{}

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	router.SetupOpsRoutes(e, readiness)

	// Setup routes
	api := e.Group("/api/v1", readiness.Gate())
	if cfg.Server.RateLimit > 0 {
		api.Use(echomiddleware.RateLimiter(
			echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit)),
		))
	}
	router.SetupRecommendationRoutes(api, recommendHandler)
	router.SetupCompareRoutes(api, compareHandler)
	router.SetupPhoneRoutes(api, phoneHandler)

	readiness.MarkReady()
	logger.Info("Catalog ready",
		"phones", cat.Len(),
		"usages", recommendService.Usages(),
		"strategy", recommendService.DefaultStrategy(),
	)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	readiness.MarkDraining()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// catalogSource picks the configured phone table. The returned func
// releases whatever the source holds once the catalog is in memory.
func catalogSource(cfg *config.Config) (catalog.Source, func()) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		return catalog.NewCSVSource(cfg.Catalog.Path), func() {}
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected successfully")

	return psqlRepo.NewPhoneRepository(db), func() {
		if err := database.ClosePostgres(db); err != nil {
			logger.Warn("Failed to close database", "error", err)
		}
	}
}
