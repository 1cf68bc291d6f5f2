package quality_db

import (
	"context"
	"fmt"

	"qinsight/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBConnectionPool connects to the quality database using environment
// configuration, loading a .env file when one is present.
func InitDBConnectionPool(ctx context.Context) (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		logger.SafeInfo("no .env file loaded, using process environment")
	}

	dbConfig := NewDatabaseConfigFromEnv()

	poolConfig, err := pgxpool.ParseConfig(dbConfig.BuildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(dbConfig.MaxConns)
	poolConfig.MinConns = int32(dbConfig.MinConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.SafeError("failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.SafeError("failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.SafeInfo("connected to database", "database", dbConfig.DBName)

	return pool, nil
}
