package defect_trend_gateway

import (
	"context"

	"qinsight/domain"
	"qinsight/driver/quality_db"
	"qinsight/port/defect_trend_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
)

// DefectTrendGateway implements the DefectTrendPort interface over the
// quality database.
type DefectTrendGateway struct {
	qualityDBRepository *quality_db.QualityDBRepository
}

func NewDefectTrendGateway(pool quality_db.PgxIface) *DefectTrendGateway {
	return &DefectTrendGateway{
		qualityDBRepository: quality_db.NewQualityDBRepositoryWithPool(pool),
	}
}

// Execute fetches the defect trend for the given granularity.
func (g *DefectTrendGateway) Execute(ctx context.Context, granularity domain.Granularity) (*defect_trend_port.TrendReport, error) {
	if g.qualityDBRepository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "DefectTrendGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	result, err := g.qualityDBRepository.FetchDefectTrend(ctx, granularity)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch defect trend", err, map[string]interface{}{
			"gateway":     "DefectTrendGateway",
			"method":      "FetchDefectTrend",
			"granularity": string(granularity),
		})
		errors.LogError(logger.Logger, dbErr, "fetch_defect_trend")
		return nil, dbErr
	}

	return result, nil
}
