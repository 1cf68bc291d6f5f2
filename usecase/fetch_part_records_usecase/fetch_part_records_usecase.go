package fetch_part_records_usecase

import (
	"context"
	"strings"

	"qinsight/domain"
	"qinsight/port/part_records_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
	"qinsight/utils/metrics"
)

// FetchPartRecordsUsecase handles the business logic for listing raw defect
// records for a single part number.
type FetchPartRecordsUsecase struct {
	partRecordsPort part_records_port.PartRecordsPort
	defaultLimit    int
	maxLimit        int
}

func NewFetchPartRecordsUsecase(port part_records_port.PartRecordsPort, defaultLimit, maxLimit int) *FetchPartRecordsUsecase {
	return &FetchPartRecordsUsecase{
		partRecordsPort: port,
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
	}
}

// Execute fetches defect records for the given part, newest first. The date
// bounds are optional but must be supplied as a pair.
func (u *FetchPartRecordsUsecase) Execute(ctx context.Context, query part_records_port.PartRecordsQuery) ([]domain.DefectRecord, error) {
	query.PartNumber = strings.TrimSpace(query.PartNumber)
	if query.PartNumber == "" {
		return nil, errors.ValidationError("part number is required", nil)
	}

	if (query.From == nil) != (query.To == nil) {
		return nil, errors.ValidationError("from and to must be provided together", map[string]interface{}{
			"part_number": query.PartNumber,
		})
	}
	if query.From != nil && query.To.Before(*query.From) {
		return nil, errors.ValidationError("to must not precede from", map[string]interface{}{
			"from": query.From.Format("2006-01-02"),
			"to":   query.To.Format("2006-01-02"),
		})
	}

	if query.Limit == 0 {
		query.Limit = u.defaultLimit
	}
	if query.Limit < 1 || query.Limit > u.maxLimit {
		return nil, errors.ValidationError("limit out of range", map[string]interface{}{
			"limit":     query.Limit,
			"max_limit": u.maxLimit,
		})
	}

	records, err := u.partRecordsPort.Execute(ctx, query)
	if err != nil {
		metrics.RecordReportQuery("part_records", "error")
		logger.SafeError("failed to fetch part records",
			"error", err,
			"part_number", query.PartNumber)
		return nil, err
	}

	metrics.RecordReportQuery("part_records", "success")
	return records, nil
}
