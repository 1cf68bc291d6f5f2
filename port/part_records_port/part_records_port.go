package part_records_port

import (
	"context"
	"time"

	"qinsight/domain"
)

// PartRecordsQuery selects raw defect records for a single part. From and To
// bound the window when both are set; Limit caps the row count when positive.
type PartRecordsQuery struct {
	PartNumber string
	From       *time.Time
	To         *time.Time
	Limit      int
}

// PartRecordsPort defines the interface for fetching raw defect records,
// newest first.
type PartRecordsPort interface {
	Execute(ctx context.Context, query PartRecordsQuery) ([]domain.DefectRecord, error)
}
