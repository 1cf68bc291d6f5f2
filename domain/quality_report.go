package domain

import "time"

// DailySummary is one aggregated bucket of the defect trend: every distinct
// period with at least one record in the window gets exactly one entry.
type DailySummary struct {
	Period       time.Time `json:"period"`
	TotalDefects int       `json:"total_defects"`
	ScrapCount   int       `json:"scrap_count"`
}

// PeriodMetrics holds the overall counters for a trailing window.
type PeriodMetrics struct {
	WindowDays    int     `json:"window_days"`
	TotalDefects  int     `json:"total_defects"`
	ScrapCount    int     `json:"scrap_count"`
	RepairedCount int     `json:"repaired_count"`
	ScrapRate     float64 `json:"scrap_rate"`
}

// PartComparison holds per-part counts for a current window and the prior
// window of equal length immediately preceding it.
type PartComparison struct {
	PartNumber string  `json:"part_number"`
	TotalCurr  int     `json:"total_curr"`
	ScrapCurr  int     `json:"scrap_curr"`
	TotalPrior int     `json:"total_prior"`
	ScrapPrior int     `json:"scrap_prior"`
	RateCurr   float64 `json:"rate_curr"`
	RatePrior  float64 `json:"rate_prior"`
}

// ChronicIssue is one defect description ranked by total occurrence.
type ChronicIssue struct {
	Defect      string `json:"defect"`
	DefectCount int    `json:"defect_count"`
	ScrapCount  int    `json:"scrap_count"`
}

// QualityAlert is raised when a part's scrap rate moved past the configured
// thresholds between the prior and current windows. Z and PValue are nil
// when the two-proportion test is not computable.
type QualityAlert struct {
	PartNumber   string   `json:"part_number"`
	TotalCurr    int      `json:"total_curr"`
	ScrapCurr    int      `json:"scrap_curr"`
	RateCurrPct  float64  `json:"rate_curr_pct"`
	TotalPrior   int      `json:"total_prior"`
	ScrapPrior   int      `json:"scrap_prior"`
	RatePriorPct float64  `json:"rate_prior_pct"`
	AbsDeltaPP   float64  `json:"abs_delta_pp"`
	RelDeltaPct  float64  `json:"rel_delta_pct"`
	Z            *float64 `json:"z"`
	PValue       *float64 `json:"p_value"`
	Significant  bool     `json:"significant"`
}
