package quality_db

import (
	"context"
	"errors"
	"testing"
	"time"

	"qinsight/port/part_records_port"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var partRecordColumns = []string{
	"id", "part_number", "serial_number", "date", "shift", "disposition",
	"code_description", "category", "type",
}

func TestFetchPartRecords_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &QualityDBRepository{pool: mock}

	newer := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	older := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, part_number, serial_number, date`).
		WithArgs("P-100", 100).
		WillReturnRows(pgxmock.NewRows(partRecordColumns).
			AddRow(int64(2), "P-100", "SN-002", newer, "DAY", "SCRAP", "POROSITY", "CASTING", "VISUAL").
			AddRow(int64(1), "P-100", "SN-001", older, "NIGHT", "REPAIRED", "CRACK", "CASTING", "XRAY"))

	records, err := repo.FetchPartRecords(context.Background(), part_records_port.PartRecordsQuery{
		PartNumber: "P-100",
		Limit:      100,
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, "SCRAP", records[0].Disposition)
	assert.True(t, records[0].Date.After(records[1].Date), "records must be newest first")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPartRecords_WithWindow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &QualityDBRepository{pool: mock}

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`AND date BETWEEN \$2 AND \$3`).
		WithArgs("P-100", from, to, 50).
		WillReturnRows(pgxmock.NewRows(partRecordColumns))

	records, err := repo.FetchPartRecords(context.Background(), part_records_port.PartRecordsQuery{
		PartNumber: "P-100",
		From:       &from,
		To:         &to,
		Limit:      50,
	})
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPartRecords_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &QualityDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT id, part_number`).
		WithArgs("P-404", 100).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.FetchPartRecords(context.Background(), part_records_port.PartRecordsQuery{
		PartNumber: "P-404",
		Limit:      100,
	})
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
