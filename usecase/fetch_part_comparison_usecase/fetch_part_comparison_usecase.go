package fetch_part_comparison_usecase

import (
	"context"

	"qinsight/domain"
	"qinsight/port/part_comparison_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
	"qinsight/utils/metrics"
)

// FetchPartComparisonUsecase handles the business logic for per-part
// current-versus-prior window aggregates.
type FetchPartComparisonUsecase struct {
	partComparisonPort part_comparison_port.PartComparisonPort
	defaultDays        int
	maxDays            int
}

func NewFetchPartComparisonUsecase(port part_comparison_port.PartComparisonPort, defaultDays, maxDays int) *FetchPartComparisonUsecase {
	return &FetchPartComparisonUsecase{
		partComparisonPort: port,
		defaultDays:        defaultDays,
		maxDays:            maxDays,
	}
}

func (u *FetchPartComparisonUsecase) Execute(ctx context.Context, windowDays int) ([]domain.PartComparison, error) {
	if windowDays == 0 {
		windowDays = u.defaultDays
	}
	if windowDays < 1 || windowDays > u.maxDays {
		return nil, errors.ValidationError("window days out of range", map[string]interface{}{
			"window_days": windowDays,
			"max_days":    u.maxDays,
		})
	}

	comparisons, err := u.partComparisonPort.Execute(ctx, windowDays)
	if err != nil {
		metrics.RecordReportQuery("part_comparison", "error")
		logger.SafeError("failed to fetch part comparison",
			"error", err,
			"window_days", windowDays)
		return nil, err
	}

	metrics.RecordReportQuery("part_comparison", "success")
	return comparisons, nil
}
