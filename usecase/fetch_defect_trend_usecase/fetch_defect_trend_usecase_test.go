package fetch_defect_trend_usecase

import (
	"context"
	"testing"
	"time"

	"qinsight/domain"
	"qinsight/port/defect_trend_port"
	apperrors "qinsight/utils/errors"
	"qinsight/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

// MockDefectTrendPort is a mock implementation of DefectTrendPort
type MockDefectTrendPort struct {
	result *defect_trend_port.TrendReport
	err    error
	calls  int
}

func (m *MockDefectTrendPort) Execute(ctx context.Context, granularity domain.Granularity) (*defect_trend_port.TrendReport, error) {
	m.calls++
	return m.result, m.err
}

func TestFetchDefectTrendUsecase_Execute_Success(t *testing.T) {
	mockResult := &defect_trend_port.TrendReport{
		Points: []domain.DailySummary{
			{Period: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TotalDefects: 5, ScrapCount: 2},
			{Period: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), TotalDefects: 3, ScrapCount: 1},
		},
		Granularity: "daily",
		Window:      "30d",
	}
	mockPort := &MockDefectTrendPort{result: mockResult}

	usecase := NewFetchDefectTrendUsecase(mockPort, nil)

	report, err := usecase.Execute(context.Background(), "daily")
	require.NoError(t, err)
	assert.Equal(t, mockResult, report)
	assert.Equal(t, 1, mockPort.calls)
}

func TestFetchDefectTrendUsecase_Execute_DefaultsToDaily(t *testing.T) {
	mockPort := &MockDefectTrendPort{
		result: &defect_trend_port.TrendReport{Granularity: "daily", Window: "30d"},
	}
	usecase := NewFetchDefectTrendUsecase(mockPort, nil)

	report, err := usecase.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "daily", report.Granularity)
}

func TestFetchDefectTrendUsecase_Execute_InvalidGranularity(t *testing.T) {
	mockPort := &MockDefectTrendPort{}
	usecase := NewFetchDefectTrendUsecase(mockPort, nil)

	_, err := usecase.Execute(context.Background(), "hourly")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Zero(t, mockPort.calls, "port must not be called for invalid input")
}

func TestFetchDefectTrendUsecase_Execute_PortError(t *testing.T) {
	dbErr := apperrors.DatabaseError("failed to fetch defect trend", nil, nil)
	mockPort := &MockDefectTrendPort{err: dbErr}
	usecase := NewFetchDefectTrendUsecase(mockPort, nil)

	_, err := usecase.Execute(context.Background(), "weekly")
	require.Error(t, err)
	assert.Equal(t, dbErr, err)
}
