// Package memory_trend_gateway implements the defect trend port over an
// in-process record slice. It exists for deployments without a database
// wired and mirrors the database path's semantics exactly.
package memory_trend_gateway

import (
	"context"
	"time"

	"qinsight/domain"
	"qinsight/port/defect_trend_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
)

type MemoryTrendGateway struct {
	records []domain.DefectRecord
	now     func() time.Time
}

func NewMemoryTrendGateway(records []domain.DefectRecord) *MemoryTrendGateway {
	return &MemoryTrendGateway{
		records: records,
		now:     time.Now,
	}
}

// NewMemoryTrendGatewayWithClock pins the "now" reference, which makes the
// trailing window deterministic.
func NewMemoryTrendGatewayWithClock(records []domain.DefectRecord, now func() time.Time) *MemoryTrendGateway {
	return &MemoryTrendGateway{
		records: records,
		now:     now,
	}
}

// Execute aggregates the in-process records for the given granularity.
func (g *MemoryTrendGateway) Execute(ctx context.Context, granularity domain.Granularity) (*defect_trend_port.TrendReport, error) {
	points, err := domain.AggregateTrend(g.records, g.now(), granularity)
	if err != nil {
		valErr := errors.ValidationError("invalid granularity", map[string]interface{}{
			"gateway":     "MemoryTrendGateway",
			"granularity": string(granularity),
		})
		errors.LogError(logger.Logger, valErr, "aggregate_trend")
		return nil, valErr
	}

	return &defect_trend_port.TrendReport{
		Points:      points,
		Granularity: string(granularity),
		Window:      granularity.Window(),
	}, nil
}
