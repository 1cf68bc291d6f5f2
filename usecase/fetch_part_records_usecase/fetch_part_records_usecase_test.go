package fetch_part_records_usecase

import (
	"context"
	"testing"
	"time"

	"qinsight/domain"
	"qinsight/port/part_records_port"
	apperrors "qinsight/utils/errors"
	"qinsight/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

type MockPartRecordsPort struct {
	result    []domain.DefectRecord
	err       error
	lastQuery part_records_port.PartRecordsQuery
}

func (m *MockPartRecordsPort) Execute(ctx context.Context, query part_records_port.PartRecordsQuery) ([]domain.DefectRecord, error) {
	m.lastQuery = query
	return m.result, m.err
}

func TestFetchPartRecordsUsecase_Execute_Success(t *testing.T) {
	mockPort := &MockPartRecordsPort{
		result: []domain.DefectRecord{
			{ID: 2, PartNumber: "PN-100", Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), Disposition: "SCRAP"},
			{ID: 1, PartNumber: "PN-100", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Disposition: "REPAIRED"},
		},
	}
	usecase := NewFetchPartRecordsUsecase(mockPort, 100, 500)

	records, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{PartNumber: "PN-100"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Date.After(records[1].Date))
}

func TestFetchPartRecordsUsecase_Execute_TrimsPartNumber(t *testing.T) {
	mockPort := &MockPartRecordsPort{}
	usecase := NewFetchPartRecordsUsecase(mockPort, 100, 500)

	_, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{PartNumber: "  PN-100  "})
	require.NoError(t, err)
	assert.Equal(t, "PN-100", mockPort.lastQuery.PartNumber)
}

func TestFetchPartRecordsUsecase_Execute_MissingPartNumber(t *testing.T) {
	usecase := NewFetchPartRecordsUsecase(&MockPartRecordsPort{}, 100, 500)

	for _, part := range []string{"", "   "} {
		_, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{PartNumber: part})
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	}
}

func TestFetchPartRecordsUsecase_Execute_UnpairedBounds(t *testing.T) {
	usecase := NewFetchPartRecordsUsecase(&MockPartRecordsPort{}, 100, 500)
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{
		PartNumber: "PN-100",
		From:       &from,
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestFetchPartRecordsUsecase_Execute_InvertedBounds(t *testing.T) {
	usecase := NewFetchPartRecordsUsecase(&MockPartRecordsPort{}, 100, 500)
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{
		PartNumber: "PN-100",
		From:       &from,
		To:         &to,
	})
	require.Error(t, err)
}

func TestFetchPartRecordsUsecase_Execute_ZeroLimitSelectsDefault(t *testing.T) {
	mockPort := &MockPartRecordsPort{}
	usecase := NewFetchPartRecordsUsecase(mockPort, 100, 500)

	_, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{PartNumber: "PN-100"})
	require.NoError(t, err)
	assert.Equal(t, 100, mockPort.lastQuery.Limit)
}

func TestFetchPartRecordsUsecase_Execute_LimitOutOfRange(t *testing.T) {
	usecase := NewFetchPartRecordsUsecase(&MockPartRecordsPort{}, 100, 500)

	for _, limit := range []int{-5, 501} {
		_, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{
			PartNumber: "PN-100",
			Limit:      limit,
		})
		require.Error(t, err, "limit of %d must be rejected", limit)
	}
}

func TestFetchPartRecordsUsecase_Execute_PortError(t *testing.T) {
	dbErr := apperrors.DatabaseError("failed to fetch part records", nil, nil)
	usecase := NewFetchPartRecordsUsecase(&MockPartRecordsPort{err: dbErr}, 100, 500)

	_, err := usecase.Execute(context.Background(), part_records_port.PartRecordsQuery{PartNumber: "PN-100"})
	assert.Equal(t, dbErr, err)
}
