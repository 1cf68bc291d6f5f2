package quality_db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// PgxIface is the subset of pgxpool.Pool the repository needs. pgxmock pools
// satisfy it in tests.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// QualityDBRepository reads the external quality.clean_quality_data table.
// It never writes to it.
type QualityDBRepository struct {
	pool PgxIface
}

func NewQualityDBRepositoryWithPool(pool PgxIface) *QualityDBRepository {
	if pool == nil {
		return nil
	}
	return &QualityDBRepository{pool: pool}
}
