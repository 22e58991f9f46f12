package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/application/catalog"
	inventoryapp "github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/application/inventory"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/infrastructure/cache"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/infrastructure/classifier"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/infrastructure/config"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/infrastructure/images"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/infrastructure/logger"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/infrastructure/persistence"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/interfaces/http/handler"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/interfaces/http/middleware"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting catalog service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize stock cache backend
	cacheFactory := cache.NewStockCacheFactory(cfg.Cache, cfg.Redis, log)
	stockCache, err := cacheFactory.CreateStockCache()
	if err != nil {
		log.Fatal("Failed to create stock cache", zap.Error(err))
	}

	// Initialize repositories
	variantRepo := persistence.NewGormVariantRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)

	// Initialize application services
	listingService := catalogapp.NewListingService(
		variantRepo,
		inventoryRepo,
		classifier.NewKeywordClassifier(),
		images.NewResolver(cfg.Images.BaseURL, cfg.Images.Placeholder),
		log,
	)
	stockService := inventoryapp.NewStockService(
		inventoryRepo,
		stockCache,
		cfg.Cache.StockTTL,
		log,
	)

	// Setup gin engine
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig(cfg)),
	)

	// Register routes
	r := router.NewRouter(engine)
	r.Register(handler.NewCatalogHandler(listingService, log)).
		Register(handler.NewStockHandler(stockService, log)).
		Register(handler.NewSystemHandler(db.DB))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if closer, ok := stockCache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	log.Info("Server exited gracefully")
}

// corsConfig builds the CORS policy from configuration
func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	return corsCfg
}
