package part_comparison_gateway

import (
	"context"

	"qinsight/domain"
	"qinsight/driver/quality_db"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
)

// PartComparisonGateway implements the PartComparisonPort interface.
type PartComparisonGateway struct {
	qualityDBRepository *quality_db.QualityDBRepository
}

func NewPartComparisonGateway(pool quality_db.PgxIface) *PartComparisonGateway {
	return &PartComparisonGateway{
		qualityDBRepository: quality_db.NewQualityDBRepositoryWithPool(pool),
	}
}

func (g *PartComparisonGateway) Execute(ctx context.Context, windowDays int) ([]domain.PartComparison, error) {
	if g.qualityDBRepository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "PartComparisonGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	result, err := g.qualityDBRepository.FetchPartComparison(ctx, windowDays)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch part comparison", err, map[string]interface{}{
			"gateway":     "PartComparisonGateway",
			"method":      "FetchPartComparison",
			"window_days": windowDays,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_part_comparison")
		return nil, dbErr
	}

	return result, nil
}
