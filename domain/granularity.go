package domain

import (
	"fmt"
	"time"
)

// Granularity selects the bucket size and trailing window of a trend report.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity validates a granularity string, defaulting to daily when
// empty.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return GranularityDaily, nil
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("unsupported granularity: %s", s)
	}
}

// Cutoff returns the inclusive lower bound of the trailing window ending at
// now: 30 days for daily, 12 weeks for weekly, 12 months for monthly.
func (g Granularity) Cutoff(now time.Time) (time.Time, error) {
	switch g {
	case GranularityDaily:
		return now.AddDate(0, 0, -30), nil
	case GranularityWeekly:
		return now.AddDate(0, 0, -12*7), nil
	case GranularityMonthly:
		return now.AddDate(0, -12, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported granularity: %s", g)
	}
}

// TruncField is the matching PostgreSQL date_trunc field name.
func (g Granularity) TruncField() string {
	switch g {
	case GranularityWeekly:
		return "week"
	case GranularityMonthly:
		return "month"
	default:
		return "day"
	}
}

// Window describes the trailing window in the report payload.
func (g Granularity) Window() string {
	switch g {
	case GranularityWeekly:
		return "12w"
	case GranularityMonthly:
		return "12m"
	default:
		return "30d"
	}
}

// Truncate maps a timestamp to its bucket key: midnight of the day, of the
// ISO week's Monday, or of the first of the month, matching date_trunc.
func (g Granularity) Truncate(t time.Time) time.Time {
	year, month, day := t.Date()
	switch g {
	case GranularityWeekly:
		monday := t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
		year, month, day = monday.Date()
	case GranularityMonthly:
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
