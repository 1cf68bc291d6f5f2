package chronic_issues_port

import (
	"context"

	"qinsight/domain"
)

// ChronicIssuesPort defines the interface for fetching the top defect
// descriptions ranked by occurrence.
type ChronicIssuesPort interface {
	Execute(ctx context.Context, limit int) ([]domain.ChronicIssue, error)
}
