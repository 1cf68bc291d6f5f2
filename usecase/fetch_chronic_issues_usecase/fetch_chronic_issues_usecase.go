package fetch_chronic_issues_usecase

import (
	"context"

	"qinsight/domain"
	"qinsight/port/chronic_issues_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
	"qinsight/utils/metrics"
)

const maxChronicIssueLimit = 50

// FetchChronicIssuesUsecase handles the business logic for the top defect
// descriptions ranking.
type FetchChronicIssuesUsecase struct {
	chronicIssuesPort chronic_issues_port.ChronicIssuesPort
	defaultLimit      int
}

func NewFetchChronicIssuesUsecase(port chronic_issues_port.ChronicIssuesPort, defaultLimit int) *FetchChronicIssuesUsecase {
	return &FetchChronicIssuesUsecase{
		chronicIssuesPort: port,
		defaultLimit:      defaultLimit,
	}
}

// Execute fetches the top defect descriptions. Zero limit selects the
// default; limits above the cap are rejected.
func (u *FetchChronicIssuesUsecase) Execute(ctx context.Context, limit int) ([]domain.ChronicIssue, error) {
	if limit == 0 {
		limit = u.defaultLimit
	}
	if limit < 1 || limit > maxChronicIssueLimit {
		return nil, errors.ValidationError("limit out of range", map[string]interface{}{
			"limit":     limit,
			"max_limit": maxChronicIssueLimit,
		})
	}

	issues, err := u.chronicIssuesPort.Execute(ctx, limit)
	if err != nil {
		metrics.RecordReportQuery("chronic_issues", "error")
		logger.SafeError("failed to fetch chronic issues",
			"error", err,
			"limit", limit)
		return nil, err
	}

	metrics.RecordReportQuery("chronic_issues", "success")
	return issues, nil
}
