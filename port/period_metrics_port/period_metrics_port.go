package period_metrics_port

import (
	"context"

	"qinsight/domain"
)

// PeriodMetricsPort defines the interface for fetching overall counters of a
// trailing window of the given length.
type PeriodMetricsPort interface {
	Execute(ctx context.Context, windowDays int) (*domain.PeriodMetrics, error)
}
