package fetch_period_metrics_usecase

import (
	"context"

	"qinsight/domain"
	"qinsight/port/period_metrics_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
	appmetrics "qinsight/utils/metrics"
)

// FetchPeriodMetricsUsecase handles the business logic for the overall KPI
// counters of a trailing window.
type FetchPeriodMetricsUsecase struct {
	periodMetricsPort period_metrics_port.PeriodMetricsPort
	defaultDays       int
	maxDays           int
}

func NewFetchPeriodMetricsUsecase(port period_metrics_port.PeriodMetricsPort, defaultDays, maxDays int) *FetchPeriodMetricsUsecase {
	return &FetchPeriodMetricsUsecase{
		periodMetricsPort: port,
		defaultDays:       defaultDays,
		maxDays:           maxDays,
	}
}

// Execute fetches period metrics. Zero windowDays selects the default
// window; negative or oversized windows are rejected.
func (u *FetchPeriodMetricsUsecase) Execute(ctx context.Context, windowDays int) (*domain.PeriodMetrics, error) {
	if windowDays == 0 {
		windowDays = u.defaultDays
	}
	if windowDays < 1 || windowDays > u.maxDays {
		return nil, errors.ValidationError("window days out of range", map[string]interface{}{
			"window_days": windowDays,
			"max_days":    u.maxDays,
		})
	}

	metrics, err := u.periodMetricsPort.Execute(ctx, windowDays)
	if err != nil {
		appmetrics.RecordReportQuery("period_metrics", "error")
		logger.SafeError("failed to fetch period metrics",
			"error", err,
			"window_days", windowDays)
		return nil, err
	}

	appmetrics.RecordReportQuery("period_metrics", "success")
	return metrics, nil
}
