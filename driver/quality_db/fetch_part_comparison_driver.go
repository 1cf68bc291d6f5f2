package quality_db

import (
	"context"
	"errors"
	"time"

	"qinsight/domain"
	"qinsight/utils/logger"
)

// Parameters: $1 = current window start, $2 = prior window start.
// Parts with no current-window records are left out; the prior window only
// qualifies rows for comparison.
const partComparisonQuery = `
	SELECT part_number,
	       SUM(CASE WHEN date >= $1 THEN 1 ELSE 0 END) AS total_curr,
	       SUM(CASE WHEN date >= $1 AND UPPER(disposition) = 'SCRAP' THEN 1 ELSE 0 END) AS scrap_curr,
	       SUM(CASE WHEN date < $1 THEN 1 ELSE 0 END) AS total_prior,
	       SUM(CASE WHEN date < $1 AND UPPER(disposition) = 'SCRAP' THEN 1 ELSE 0 END) AS scrap_prior
	FROM quality.clean_quality_data
	WHERE date >= $2
	GROUP BY part_number
	HAVING SUM(CASE WHEN date >= $1 THEN 1 ELSE 0 END) > 0
	ORDER BY part_number
`

// FetchPartComparison aggregates per-part counts for the current window of
// windowDays and the prior window of equal length immediately before it.
func (r *QualityDBRepository) FetchPartComparison(ctx context.Context, windowDays int) ([]domain.PartComparison, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	now := time.Now()
	currStart := now.AddDate(0, 0, -windowDays)
	priorStart := now.AddDate(0, 0, -2*windowDays)

	rows, err := r.pool.Query(ctx, partComparisonQuery, currStart, priorStart)
	if err != nil {
		logger.SafeError("failed to fetch part comparison", "window_days", windowDays, "error", err)
		return nil, errors.New("failed to fetch part comparison")
	}
	defer rows.Close()

	var comparisons []domain.PartComparison
	for rows.Next() {
		var c domain.PartComparison
		if err := rows.Scan(&c.PartNumber, &c.TotalCurr, &c.ScrapCurr, &c.TotalPrior, &c.ScrapPrior); err != nil {
			logger.SafeError("failed to scan part comparison row", "error", err)
			return nil, errors.New("failed to fetch part comparison")
		}

		if c.TotalCurr > 0 {
			c.RateCurr = float64(c.ScrapCurr) / float64(c.TotalCurr)
		}
		if c.TotalPrior > 0 {
			c.RatePrior = float64(c.ScrapPrior) / float64(c.TotalPrior)
		}

		comparisons = append(comparisons, c)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating part comparison rows", "error", err)
		return nil, errors.New("failed to fetch part comparison")
	}

	return comparisons, nil
}
