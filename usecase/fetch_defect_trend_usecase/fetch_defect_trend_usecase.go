package fetch_defect_trend_usecase

import (
	"context"

	"qinsight/domain"
	"qinsight/driver/report_cache"
	"qinsight/port/defect_trend_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
	"qinsight/utils/metrics"
)

// FetchDefectTrendUsecase handles the business logic for fetching the
// defect trend, consulting the report cache before the database.
type FetchDefectTrendUsecase struct {
	defectTrendPort defect_trend_port.DefectTrendPort
	cache           *report_cache.TrendCache
}

func NewFetchDefectTrendUsecase(port defect_trend_port.DefectTrendPort, cache *report_cache.TrendCache) *FetchDefectTrendUsecase {
	return &FetchDefectTrendUsecase{
		defectTrendPort: port,
		cache:           cache,
	}
}

// Execute fetches the defect trend for the given granularity string.
func (u *FetchDefectTrendUsecase) Execute(ctx context.Context, granularity string) (*defect_trend_port.TrendReport, error) {
	parsed, err := domain.ParseGranularity(granularity)
	if err != nil {
		return nil, errors.ValidationError("unsupported granularity", map[string]interface{}{
			"granularity": granularity,
		})
	}

	if report, ok := u.cache.Get(ctx, parsed); ok {
		metrics.RecordCacheLookup("hit")
		logger.SafeInfo("defect trend served from cache", "granularity", parsed)
		return report, nil
	}
	metrics.RecordCacheLookup("miss")

	report, err := u.defectTrendPort.Execute(ctx, parsed)
	if err != nil {
		metrics.RecordReportQuery("trend", "error")
		logger.SafeError("failed to fetch defect trend",
			"error", err,
			"granularity", parsed)
		return nil, err
	}
	metrics.RecordReportQuery("trend", "success")

	u.cache.Set(ctx, parsed, report)

	logger.SafeInfo("defect trend fetched successfully",
		"granularity", parsed,
		"points", len(report.Points))

	return report, nil
}
