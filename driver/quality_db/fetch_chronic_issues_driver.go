package quality_db

import (
	"context"
	"errors"

	"qinsight/domain"
	"qinsight/utils/logger"
)

const chronicIssuesQuery = `
	SELECT code_description AS defect,
	       COUNT(*) AS defect_count,
	       COUNT(CASE WHEN UPPER(disposition) = 'SCRAP' THEN 1 END) AS scrap_count
	FROM quality.clean_quality_data
	WHERE code_description IS NOT NULL AND code_description != ''
	GROUP BY code_description
	ORDER BY defect_count DESC
	LIMIT $1
`

// FetchChronicIssues returns the top defect descriptions ranked by total
// occurrence across the whole table.
func (r *QualityDBRepository) FetchChronicIssues(ctx context.Context, limit int) ([]domain.ChronicIssue, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	rows, err := r.pool.Query(ctx, chronicIssuesQuery, limit)
	if err != nil {
		logger.SafeError("failed to fetch chronic issues", "limit", limit, "error", err)
		return nil, errors.New("failed to fetch chronic issues")
	}
	defer rows.Close()

	var issues []domain.ChronicIssue
	for rows.Next() {
		var issue domain.ChronicIssue
		if err := rows.Scan(&issue.Defect, &issue.DefectCount, &issue.ScrapCount); err != nil {
			logger.SafeError("failed to scan chronic issue row", "error", err)
			return nil, errors.New("failed to fetch chronic issues")
		}
		issues = append(issues, issue)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating chronic issue rows", "error", err)
		return nil, errors.New("failed to fetch chronic issues")
	}

	return issues, nil
}
