package fetch_period_metrics_usecase

import (
	"context"
	"testing"

	"qinsight/domain"
	apperrors "qinsight/utils/errors"
	"qinsight/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

type MockPeriodMetricsPort struct {
	result     *domain.PeriodMetrics
	err        error
	lastWindow int
}

func (m *MockPeriodMetricsPort) Execute(ctx context.Context, windowDays int) (*domain.PeriodMetrics, error) {
	m.lastWindow = windowDays
	return m.result, m.err
}

func TestFetchPeriodMetricsUsecase_Execute_Success(t *testing.T) {
	mockPort := &MockPeriodMetricsPort{
		result: &domain.PeriodMetrics{
			WindowDays:    30,
			TotalDefects:  100,
			ScrapCount:    25,
			RepairedCount: 40,
			ScrapRate:     0.25,
		},
	}
	usecase := NewFetchPeriodMetricsUsecase(mockPort, 30, 365)

	metrics, err := usecase.Execute(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 100, metrics.TotalDefects)
	assert.LessOrEqual(t, metrics.ScrapCount, metrics.TotalDefects)
}

func TestFetchPeriodMetricsUsecase_Execute_ZeroSelectsDefault(t *testing.T) {
	mockPort := &MockPeriodMetricsPort{result: &domain.PeriodMetrics{WindowDays: 30}}
	usecase := NewFetchPeriodMetricsUsecase(mockPort, 30, 365)

	_, err := usecase.Execute(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, mockPort.lastWindow)
}

func TestFetchPeriodMetricsUsecase_Execute_OutOfRange(t *testing.T) {
	mockPort := &MockPeriodMetricsPort{}
	usecase := NewFetchPeriodMetricsUsecase(mockPort, 30, 365)

	for _, days := range []int{-1, 366, 10000} {
		_, err := usecase.Execute(context.Background(), days)
		require.Error(t, err, "window of %d days must be rejected", days)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	}
}

func TestFetchPeriodMetricsUsecase_Execute_PortError(t *testing.T) {
	dbErr := apperrors.DatabaseError("failed to fetch period metrics", nil, nil)
	usecase := NewFetchPeriodMetricsUsecase(&MockPeriodMetricsPort{err: dbErr}, 30, 365)

	_, err := usecase.Execute(context.Background(), 7)
	assert.Equal(t, dbErr, err)
}
