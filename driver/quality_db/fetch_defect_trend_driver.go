package quality_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qinsight/domain"
	"qinsight/port/defect_trend_port"
	"qinsight/utils/logger"
)

// FetchDefectTrend aggregates defect records into period buckets for the
// granularity's trailing window. The cutoff is computed here and passed as a
// parameter so the window is anchored to the caller's clock, not the
// database's.
func (r *QualityDBRepository) FetchDefectTrend(ctx context.Context, granularity domain.Granularity) (*defect_trend_port.TrendReport, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	cutoff, err := granularity.Cutoff(time.Now())
	if err != nil {
		logger.SafeError("invalid granularity parameter", "granularity", granularity, "error", err)
		return nil, fmt.Errorf("invalid granularity: %w", err)
	}

	query := buildTrendQuery(granularity.TruncField())

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		logger.SafeError("failed to fetch defect trend", "error", err)
		return nil, errors.New("failed to fetch defect trend")
	}
	defer rows.Close()

	var points []domain.DailySummary
	for rows.Next() {
		var period time.Time
		var totalDefects, scrapCount int

		if err := rows.Scan(&period, &totalDefects, &scrapCount); err != nil {
			logger.SafeError("failed to scan defect trend row", "error", err)
			return nil, errors.New("failed to fetch defect trend")
		}

		points = append(points, domain.DailySummary{
			Period:       period,
			TotalDefects: totalDefects,
			ScrapCount:   scrapCount,
		})
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating defect trend rows", "error", err)
		return nil, errors.New("failed to fetch defect trend")
	}

	logger.SafeInfo("defect trend fetched successfully",
		"granularity", granularity,
		"window", granularity.Window(),
		"points", len(points))

	return &defect_trend_port.TrendReport{
		Points:      points,
		Granularity: string(granularity),
		Window:      granularity.Window(),
	}, nil
}

// buildTrendQuery builds the aggregation query for defect trends.
// Parameter: $1 = cutoff (timestamp, inclusive lower bound).
func buildTrendQuery(truncField string) string {
	return fmt.Sprintf(`
		SELECT date_trunc('%s', date)::date AS period,
		       COUNT(*) AS total_defects,
		       COUNT(CASE WHEN UPPER(disposition) = 'SCRAP' THEN 1 END) AS scrap_count
		FROM quality.clean_quality_data
		WHERE date >= $1
		GROUP BY period
		ORDER BY period ASC
	`, truncField)
}
