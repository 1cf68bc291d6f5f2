package memory_trend_gateway

import (
	"context"
	"testing"
	"time"

	"qinsight/domain"
	"qinsight/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

func TestMemoryTrendGateway_DailyScenario(t *testing.T) {
	records := []domain.DefectRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Disposition: "SCRAP"},
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Disposition: "rework"},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Disposition: "scrap"},
	}

	gateway := NewMemoryTrendGatewayWithClock(records, fixedClock(2024, 1, 15))

	report, err := gateway.Execute(context.Background(), domain.GranularityDaily)
	require.NoError(t, err)

	assert.Equal(t, "daily", report.Granularity)
	assert.Equal(t, "30d", report.Window)
	require.Len(t, report.Points, 2)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), report.Points[0].Period)
	assert.Equal(t, 2, report.Points[0].TotalDefects)
	assert.Equal(t, 1, report.Points[0].ScrapCount)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), report.Points[1].Period)
	assert.Equal(t, 1, report.Points[1].TotalDefects)
	assert.Equal(t, 1, report.Points[1].ScrapCount)
}

func TestMemoryTrendGateway_ExcludesOldRecords(t *testing.T) {
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	records := []domain.DefectRecord{
		{Date: now.AddDate(0, 0, -40), Disposition: "SCRAP"},
	}

	gateway := NewMemoryTrendGatewayWithClock(records, func() time.Time { return now })

	report, err := gateway.Execute(context.Background(), domain.GranularityDaily)
	require.NoError(t, err)
	assert.Empty(t, report.Points)
}

func TestMemoryTrendGateway_EmptySource(t *testing.T) {
	gateway := NewMemoryTrendGateway(nil)

	report, err := gateway.Execute(context.Background(), domain.GranularityDaily)
	require.NoError(t, err)
	assert.Empty(t, report.Points)
}

func TestMemoryTrendGateway_InvalidGranularity(t *testing.T) {
	gateway := NewMemoryTrendGateway(nil)

	_, err := gateway.Execute(context.Background(), domain.Granularity("hourly"))
	assert.Error(t, err)
}
