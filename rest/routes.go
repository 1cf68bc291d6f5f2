package rest

import (
	"qinsight/config"
	"qinsight/di"
	middleware_custom "qinsight/middleware"
	"qinsight/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first so every log line carries an ID
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early
	e.Use(middleware.Recover())

	// 3. CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Request-ID"},
	}))

	// 4. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	// 5. Logging middleware
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 6. Request metrics
	e.Use(middleware_custom.MetricsMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", healthCheckHandler)

	registerQualityRoutes(v1, container)
}
