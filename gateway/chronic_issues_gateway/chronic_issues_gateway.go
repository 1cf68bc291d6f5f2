package chronic_issues_gateway

import (
	"context"

	"qinsight/domain"
	"qinsight/driver/quality_db"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
)

// ChronicIssuesGateway implements the ChronicIssuesPort interface.
type ChronicIssuesGateway struct {
	qualityDBRepository *quality_db.QualityDBRepository
}

func NewChronicIssuesGateway(pool quality_db.PgxIface) *ChronicIssuesGateway {
	return &ChronicIssuesGateway{
		qualityDBRepository: quality_db.NewQualityDBRepositoryWithPool(pool),
	}
}

func (g *ChronicIssuesGateway) Execute(ctx context.Context, limit int) ([]domain.ChronicIssue, error) {
	if g.qualityDBRepository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "ChronicIssuesGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	result, err := g.qualityDBRepository.FetchChronicIssues(ctx, limit)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch chronic issues", err, map[string]interface{}{
			"gateway": "ChronicIssuesGateway",
			"method":  "FetchChronicIssues",
			"limit":   limit,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_chronic_issues")
		return nil, dbErr
	}

	return result, nil
}
