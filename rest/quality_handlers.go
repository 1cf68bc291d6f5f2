package rest

import (
	"net/http"
	"strconv"
	"time"

	"qinsight/di"
	"qinsight/port/part_records_port"
	"qinsight/usecase/fetch_chronic_issues_usecase"
	"qinsight/usecase/fetch_defect_trend_usecase"
	"qinsight/usecase/fetch_part_comparison_usecase"
	"qinsight/usecase/fetch_part_records_usecase"
	"qinsight/usecase/fetch_period_metrics_usecase"
	"qinsight/usecase/quality_alerts_usecase"
	"qinsight/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerQualityRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	quality := v1.Group("/quality")

	quality.GET("/trends", handleGetTrends(container.FetchDefectTrendUsecase))
	quality.GET("/metrics", handleGetPeriodMetrics(container.FetchPeriodMetricsUsecase))
	quality.GET("/parts/comparison", handleGetPartComparison(container.FetchPartComparisonUsecase))
	quality.GET("/alerts", handleGetAlerts(container.QualityAlertsUsecase))
	quality.GET("/issues/chronic", handleGetChronicIssues(container.FetchChronicIssuesUsecase))
	quality.GET("/parts/:part/records", handleGetPartRecords(container.FetchPartRecordsUsecase))
}

func handleGetTrends(usecase *fetch_defect_trend_usecase.FetchDefectTrendUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		granularity := c.QueryParam("granularity")

		report, err := usecase.Execute(c.Request().Context(), granularity)
		if err != nil {
			return handleError(c, err, "GetTrends")
		}

		return c.JSON(http.StatusOK, report)
	}
}

func handleGetPeriodMetrics(usecase *fetch_period_metrics_usecase.FetchPeriodMetricsUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		days, err := intQueryParam(c, "days")
		if err != nil {
			return handleError(c, err, "GetPeriodMetrics")
		}

		metrics, err := usecase.Execute(c.Request().Context(), days)
		if err != nil {
			return handleError(c, err, "GetPeriodMetrics")
		}

		return c.JSON(http.StatusOK, metrics)
	}
}

func handleGetPartComparison(usecase *fetch_part_comparison_usecase.FetchPartComparisonUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		days, err := intQueryParam(c, "days")
		if err != nil {
			return handleError(c, err, "GetPartComparison")
		}

		comparisons, err := usecase.Execute(c.Request().Context(), days)
		if err != nil {
			return handleError(c, err, "GetPartComparison")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"parts": comparisons,
		})
	}
}

func handleGetAlerts(usecase *quality_alerts_usecase.QualityAlertsUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		days, err := intQueryParam(c, "days")
		if err != nil {
			return handleError(c, err, "GetAlerts")
		}

		alerts, err := usecase.Execute(c.Request().Context(), days)
		if err != nil {
			return handleError(c, err, "GetAlerts")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"alerts": alerts,
		})
	}
}

func handleGetChronicIssues(usecase *fetch_chronic_issues_usecase.FetchChronicIssuesUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, err := intQueryParam(c, "limit")
		if err != nil {
			return handleError(c, err, "GetChronicIssues")
		}

		issues, err := usecase.Execute(c.Request().Context(), limit)
		if err != nil {
			return handleError(c, err, "GetChronicIssues")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"issues": issues,
		})
	}
}

func handleGetPartRecords(usecase *fetch_part_records_usecase.FetchPartRecordsUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := part_records_port.PartRecordsQuery{
			PartNumber: c.Param("part"),
		}

		limit, err := intQueryParam(c, "limit")
		if err != nil {
			return handleError(c, err, "GetPartRecords")
		}
		query.Limit = limit

		from, err := dateQueryParam(c, "from")
		if err != nil {
			return handleError(c, err, "GetPartRecords")
		}
		query.From = from

		to, err := dateQueryParam(c, "to")
		if err != nil {
			return handleError(c, err, "GetPartRecords")
		}
		query.To = to

		records, err := usecase.Execute(c.Request().Context(), query)
		if err != nil {
			return handleError(c, err, "GetPartRecords")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"records": records,
		})
	}
}

// intQueryParam returns 0 when the parameter is absent so the usecase default
// applies.
func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ValidationError("invalid integer parameter", map[string]interface{}{
			"parameter": name,
			"value":     raw,
		})
	}
	return value, nil
}

func dateQueryParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errors.ValidationError("invalid date parameter, expected YYYY-MM-DD", map[string]interface{}{
			"parameter": name,
			"value":     raw,
		})
	}
	return &value, nil
}
