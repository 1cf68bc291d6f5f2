// Package report_cache provides a Redis-backed cache for trend reports.
// A nil cache is valid and disables caching entirely.
package report_cache

import (
	"context"
	"encoding/json"
	"time"

	"qinsight/domain"
	"qinsight/port/defect_trend_port"
	"qinsight/utils/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quality:trend:"

type TrendCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrendCache connects to Redis at redisURL. An empty URL returns a nil
// cache, which callers treat as caching disabled.
func NewTrendCache(redisURL string, ttl time.Duration) (*TrendCache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &TrendCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

// Get returns a cached report for the granularity, or false on any miss or
// cache failure.
func (c *TrendCache) Get(ctx context.Context, granularity domain.Granularity) (*defect_trend_port.TrendReport, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, trendKey(granularity)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.SafeError("trend cache read failed", "granularity", granularity, "error", err)
		}
		return nil, false
	}

	var report defect_trend_port.TrendReport
	if err := json.Unmarshal(payload, &report); err != nil {
		logger.SafeError("trend cache payload corrupt", "granularity", granularity, "error", err)
		return nil, false
	}

	return &report, true
}

// Set stores the report under the granularity key. Failures are logged and
// swallowed; the cache never fails a request.
func (c *TrendCache) Set(ctx context.Context, granularity domain.Granularity, report *defect_trend_port.TrendReport) {
	if c == nil || c.client == nil || report == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		logger.SafeError("trend cache marshal failed", "granularity", granularity, "error", err)
		return
	}

	if err := c.client.Set(ctx, trendKey(granularity), payload, c.ttl).Err(); err != nil {
		logger.SafeError("trend cache write failed", "granularity", granularity, "error", err)
	}
}

// Close releases the Redis connection.
func (c *TrendCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func trendKey(granularity domain.Granularity) string {
	return keyPrefix + string(granularity)
}
