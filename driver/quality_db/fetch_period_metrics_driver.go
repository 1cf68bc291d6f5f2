package quality_db

import (
	"context"
	"errors"
	"time"

	"qinsight/domain"
	"qinsight/utils/logger"
)

const periodMetricsQuery = `
	SELECT COUNT(*) AS total_defects,
	       COUNT(CASE WHEN UPPER(disposition) = 'SCRAP' THEN 1 END) AS scrap_count,
	       COUNT(CASE WHEN UPPER(disposition) = 'REPAIRED' THEN 1 END) AS repaired_count
	FROM quality.clean_quality_data
	WHERE date >= $1
`

// FetchPeriodMetrics computes the overall counters for the trailing window
// of windowDays ending now.
func (r *QualityDBRepository) FetchPeriodMetrics(ctx context.Context, windowDays int) (*domain.PeriodMetrics, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	cutoff := time.Now().AddDate(0, 0, -windowDays)

	metrics := &domain.PeriodMetrics{WindowDays: windowDays}
	err := r.pool.QueryRow(ctx, periodMetricsQuery, cutoff).
		Scan(&metrics.TotalDefects, &metrics.ScrapCount, &metrics.RepairedCount)
	if err != nil {
		logger.SafeError("failed to fetch period metrics", "window_days", windowDays, "error", err)
		return nil, errors.New("failed to fetch period metrics")
	}

	if metrics.TotalDefects > 0 {
		metrics.ScrapRate = float64(metrics.ScrapCount) / float64(metrics.TotalDefects)
	}

	return metrics, nil
}
