package part_comparison_port

import (
	"context"

	"qinsight/domain"
)

// PartComparisonPort defines the interface for fetching per-part aggregates
// for a current window of windowDays and the equally sized prior window.
type PartComparisonPort interface {
	Execute(ctx context.Context, windowDays int) ([]domain.PartComparison, error)
}
