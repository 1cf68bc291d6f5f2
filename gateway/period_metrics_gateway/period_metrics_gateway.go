package period_metrics_gateway

import (
	"context"

	"qinsight/domain"
	"qinsight/driver/quality_db"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
)

// PeriodMetricsGateway implements the PeriodMetricsPort interface.
type PeriodMetricsGateway struct {
	qualityDBRepository *quality_db.QualityDBRepository
}

func NewPeriodMetricsGateway(pool quality_db.PgxIface) *PeriodMetricsGateway {
	return &PeriodMetricsGateway{
		qualityDBRepository: quality_db.NewQualityDBRepositoryWithPool(pool),
	}
}

func (g *PeriodMetricsGateway) Execute(ctx context.Context, windowDays int) (*domain.PeriodMetrics, error) {
	if g.qualityDBRepository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "PeriodMetricsGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	result, err := g.qualityDBRepository.FetchPeriodMetrics(ctx, windowDays)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch period metrics", err, map[string]interface{}{
			"gateway":     "PeriodMetricsGateway",
			"method":      "FetchPeriodMetrics",
			"window_days": windowDays,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_period_metrics")
		return nil, dbErr
	}

	return result, nil
}
