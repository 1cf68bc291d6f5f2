package domain

import (
	"sort"
	"time"
)

// AggregateTrend groups in-process defect records into the trailing window
// ending at now and counts total defects and scrap dispositions per bucket.
// Records dated before the window's cutoff never contribute. Buckets with no
// records are omitted, not zero-filled. The result is sorted ascending by
// period with no duplicate periods.
func AggregateTrend(records []DefectRecord, now time.Time, granularity Granularity) ([]DailySummary, error) {
	cutoff, err := granularity.Cutoff(now)
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*DailySummary)
	for _, rec := range records {
		if rec.Date.Before(cutoff) {
			continue
		}

		period := granularity.Truncate(rec.Date)
		summary, ok := buckets[period]
		if !ok {
			summary = &DailySummary{Period: period}
			buckets[period] = summary
		}

		summary.TotalDefects++
		if rec.IsScrap() {
			summary.ScrapCount++
		}
	}

	result := make([]DailySummary, 0, len(buckets))
	for _, summary := range buckets {
		result = append(result, *summary)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Period.Before(result[j].Period)
	})

	return result, nil
}

// AggregateDaily is the trailing-30-day daily defect summary over in-process
// records.
func AggregateDaily(records []DefectRecord, now time.Time) ([]DailySummary, error) {
	return AggregateTrend(records, now, GranularityDaily)
}
