package defect_trend_port

import (
	"context"

	"qinsight/domain"
)

// TrendReport is the complete trend response for one granularity.
type TrendReport struct {
	Points      []domain.DailySummary `json:"points"`
	Granularity string                `json:"granularity"` // "daily", "weekly" or "monthly"
	Window      string                `json:"window"`      // "30d", "12w" or "12m"
}

// DefectTrendPort defines the interface for fetching the defect trend.
type DefectTrendPort interface {
	Execute(ctx context.Context, granularity domain.Granularity) (*TrendReport, error)
}
