package quality_db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchChronicIssues_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &QualityDBRepository{pool: mock}

	mock.ExpectQuery(regexp.QuoteMeta(chronicIssuesQuery)).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"defect", "defect_count", "scrap_count"}).
			AddRow("POROSITY", 120, 45).
			AddRow("CRACK", 80, 60))

	issues, err := repo.FetchChronicIssues(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, "POROSITY", issues[0].Defect)
	assert.Equal(t, 120, issues[0].DefectCount)
	assert.Equal(t, 45, issues[0].ScrapCount)
	assert.GreaterOrEqual(t, issues[0].DefectCount, issues[1].DefectCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchChronicIssues_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &QualityDBRepository{pool: mock}

	mock.ExpectQuery(regexp.QuoteMeta(chronicIssuesQuery)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"defect", "defect_count", "scrap_count"}))

	issues, err := repo.FetchChronicIssues(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, issues)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchChronicIssues_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &QualityDBRepository{pool: mock}

	mock.ExpectQuery(regexp.QuoteMeta(chronicIssuesQuery)).
		WithArgs(10).
		WillReturnError(errors.New("timeout"))

	_, err = repo.FetchChronicIssues(context.Background(), 10)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
