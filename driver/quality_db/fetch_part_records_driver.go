package quality_db

import (
	"context"
	"errors"
	"fmt"

	"qinsight/domain"
	"qinsight/port/part_records_port"
	"qinsight/utils/logger"
)

// FetchPartRecords returns the raw defect records for a single part, newest
// first, optionally bounded by a date window and a row limit.
func (r *QualityDBRepository) FetchPartRecords(ctx context.Context, query part_records_port.PartRecordsQuery) ([]domain.DefectRecord, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	sql := `
		SELECT id, part_number, serial_number, date, shift, disposition,
		       code_description, category, type
		FROM quality.clean_quality_data
		WHERE part_number = $1`
	args := []any{query.PartNumber}

	if query.From != nil && query.To != nil {
		sql += ` AND date BETWEEN $2 AND $3`
		args = append(args, *query.From, *query.To)
	}

	sql += ` ORDER BY date DESC`

	if query.Limit > 0 {
		sql += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, query.Limit)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		logger.SafeError("failed to fetch part records", "part_number", query.PartNumber, "error", err)
		return nil, errors.New("failed to fetch part records")
	}
	defer rows.Close()

	var records []domain.DefectRecord
	for rows.Next() {
		var rec domain.DefectRecord
		if err := rows.Scan(&rec.ID, &rec.PartNumber, &rec.SerialNumber, &rec.Date,
			&rec.Shift, &rec.Disposition, &rec.CodeDescription, &rec.Category, &rec.Type); err != nil {
			logger.SafeError("failed to scan part record row", "error", err)
			return nil, errors.New("failed to fetch part records")
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating part record rows", "error", err)
		return nil, errors.New("failed to fetch part records")
	}

	return records, nil
}
