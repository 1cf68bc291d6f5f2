package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qinsight/config"
	"qinsight/di"
	"qinsight/driver/quality_db"
	"qinsight/driver/report_cache"
	"qinsight/rest"
	"qinsight/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := quality_db.InitDBConnectionPool(ctx)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	cache, err := report_cache.NewTrendCache(cfg.Cache.RedisURL, cfg.Cache.TrendCacheTTL)
	if err != nil {
		log.Warn("Trend cache unavailable, continuing without it", "error", err)
		cache = nil
	}
	if cache != nil {
		defer cache.Close()
	}

	container := di.NewApplicationComponents(pool, cache, cfg)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil {
			log.Info("Server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down cleanly", "error", err)
		os.Exit(1)
	}
}
