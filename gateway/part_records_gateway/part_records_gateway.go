package part_records_gateway

import (
	"context"

	"qinsight/domain"
	"qinsight/driver/quality_db"
	"qinsight/port/part_records_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
)

// PartRecordsGateway implements the PartRecordsPort interface.
type PartRecordsGateway struct {
	qualityDBRepository *quality_db.QualityDBRepository
}

func NewPartRecordsGateway(pool quality_db.PgxIface) *PartRecordsGateway {
	return &PartRecordsGateway{
		qualityDBRepository: quality_db.NewQualityDBRepositoryWithPool(pool),
	}
}

func (g *PartRecordsGateway) Execute(ctx context.Context, query part_records_port.PartRecordsQuery) ([]domain.DefectRecord, error) {
	if g.qualityDBRepository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "PartRecordsGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	result, err := g.qualityDBRepository.FetchPartRecords(ctx, query)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch part records", err, map[string]interface{}{
			"gateway":     "PartRecordsGateway",
			"method":      "FetchPartRecords",
			"part_number": query.PartNumber,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_part_records")
		return nil, dbErr
	}

	return result, nil
}
