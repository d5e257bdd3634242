package main

// @title Transit Dashboard API
// @version 1.0.0
// @description Ridership analytics over smart-card tap records: hourly trend, top corridors,
// @description stop map, payment methods, gender by hour, and a written summary.
// @description
// @description Every aggregate endpoint takes the same filter: day (weekday name), corridor (or ALL)
// @description and zero or more bank codes. An empty selection is answered with empty=true.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/transit-dashboard/docs"
	"github.com/transit-dashboard/internal/analytics"
	"github.com/transit-dashboard/internal/config"
	"github.com/transit-dashboard/internal/dataset"
	httpDelivery "github.com/transit-dashboard/internal/delivery/http"
	"github.com/transit-dashboard/internal/delivery/http/handler"
	"github.com/transit-dashboard/internal/domain/repository"
	"github.com/transit-dashboard/internal/pkg/logger"
	"github.com/transit-dashboard/internal/repository/cache"
	"github.com/transit-dashboard/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transit Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset_source", cfg.Dataset.Source),
	)

	// 3. Load the dataset once; the handle is shared read-only by every request
	repo, closeRepo, err := dataset.OpenRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to open dataset source", zap.Error(err))
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	ds, err := dataset.Load(loadCtx, repo, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to load dataset", zap.Error(err))
	}
	if err := closeRepo(); err != nil {
		log.Error("Failed to close dataset source", zap.Error(err))
	}

	// 4. Connect to Redis, or keep dashboards in process
	var cacheRepo repository.DashboardCacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		cacheRepo, err = cache.NewMemoryRepository(cfg.Cache.MemoryEntries)
		if err != nil {
			log.Fatal("Failed to create memory cache", zap.Error(err))
		}
		log.Info("Redis disabled, using in-memory dashboard cache",
			zap.Int("entries", cfg.Cache.MemoryEntries),
		)
	}

	// 5. Initialize Use Cases
	dashboardUC := usecase.NewDashboardUseCase(
		ds,
		cacheRepo,
		log,
		cfg.Cache.DashboardCacheTTL,
		analytics.Limits{
			RouteLimit: cfg.Dashboard.RouteLimit,
			MapLimit:   cfg.Dashboard.MapLimit,
		},
	)

	// 6. Initialize HTTP Handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)
	chartHandler := handler.NewChartHandler(dashboardUC, log)
	exportHandler := handler.NewExportHandler(dashboardUC, log)

	pageHandler, err := handler.NewPageHandler(cfg.Server.TemplatesDir, dashboardUC, log)
	if err != nil {
		log.Warn("Failed to load dashboard templates, / will redirect to swagger", zap.Error(err))
	}

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		dashboardHandler,
		chartHandler,
		exportHandler,
		pageHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.Int("rows", ds.Len()),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
