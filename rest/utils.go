package rest

import (
	"net/http"

	"qinsight/utils/errors"
	"qinsight/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to appropriate HTTP responses
func handleError(c echo.Context, err error, operation string) error {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.UnknownError("internal server error", err, map[string]interface{}{
			"operation": operation,
		})
	}

	logger.SafeError("request handler error",
		"error", appErr.Error(),
		"error_code", appErr.Code,
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"request_id", c.Response().Header().Get("X-Request-ID"),
	)

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

func healthCheckHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
