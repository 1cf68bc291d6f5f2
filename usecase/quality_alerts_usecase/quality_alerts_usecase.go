package quality_alerts_usecase

import (
	"context"
	"math"

	"qinsight/domain"
	"qinsight/port/part_comparison_port"
	"qinsight/utils/errors"
	"qinsight/utils/logger"
	"qinsight/utils/metrics"
)

// A relative delta reported in place of infinity when the prior rate is
// zero and the current rate is not.
const infiniteRelDeltaPct = 9999.0

// Thresholds tune when a part comparison row raises an alert.
type Thresholds struct {
	// MinSamples is the minimum observation count required in both windows
	// before a row is evaluated at all.
	MinSamples int
	// RelThreshold triggers on rate_curr/rate_prior - 1.
	RelThreshold float64
	// AbsThreshold triggers on rate_curr - rate_prior.
	AbsThreshold float64
	// Alpha is the significance level of the two-proportion test.
	Alpha float64
}

// QualityAlertsUsecase evaluates part comparison rows against scrap-rate
// movement thresholds.
type QualityAlertsUsecase struct {
	partComparisonPort part_comparison_port.PartComparisonPort
	thresholds         Thresholds
	defaultDays        int
	maxDays            int
}

func NewQualityAlertsUsecase(port part_comparison_port.PartComparisonPort, thresholds Thresholds, defaultDays, maxDays int) *QualityAlertsUsecase {
	return &QualityAlertsUsecase{
		partComparisonPort: port,
		thresholds:         thresholds,
		defaultDays:        defaultDays,
		maxDays:            maxDays,
	}
}

// Execute fetches the part comparison for the window and returns the alerts
// it raises. No alerts is a valid, empty result.
func (u *QualityAlertsUsecase) Execute(ctx context.Context, windowDays int) ([]domain.QualityAlert, error) {
	if windowDays == 0 {
		windowDays = u.defaultDays
	}
	if windowDays < 1 || windowDays > u.maxDays {
		return nil, errors.ValidationError("window days out of range", map[string]interface{}{
			"window_days": windowDays,
			"max_days":    u.maxDays,
		})
	}

	comparisons, err := u.partComparisonPort.Execute(ctx, windowDays)
	if err != nil {
		metrics.RecordReportQuery("alerts", "error")
		logger.SafeError("failed to fetch part comparison for alerts",
			"error", err,
			"window_days", windowDays)
		return nil, err
	}
	metrics.RecordReportQuery("alerts", "success")

	alerts := EvaluateAlerts(comparisons, u.thresholds)

	logger.SafeInfo("quality alerts evaluated",
		"window_days", windowDays,
		"parts", len(comparisons),
		"alerts", len(alerts))

	return alerts, nil
}

// EvaluateAlerts applies the thresholds to every comparison row. Rows with
// fewer than MinSamples observations in either window are skipped.
func EvaluateAlerts(comparisons []domain.PartComparison, thresholds Thresholds) []domain.QualityAlert {
	var alerts []domain.QualityAlert

	for _, c := range comparisons {
		if c.TotalCurr < thresholds.MinSamples || c.TotalPrior < thresholds.MinSamples {
			continue
		}

		absDelta := c.RateCurr - c.RatePrior
		relDelta := relativeDelta(c.RateCurr, c.RatePrior)

		if relDelta < thresholds.RelThreshold && absDelta < thresholds.AbsThreshold {
			continue
		}

		alert := domain.QualityAlert{
			PartNumber:   c.PartNumber,
			TotalCurr:    c.TotalCurr,
			ScrapCurr:    c.ScrapCurr,
			RateCurrPct:  round2(c.RateCurr * 100),
			TotalPrior:   c.TotalPrior,
			ScrapPrior:   c.ScrapPrior,
			RatePriorPct: round2(c.RatePrior * 100),
			AbsDeltaPP:   round2(absDelta * 100),
			RelDeltaPct:  round1(relDelta * 100),
		}
		if math.IsInf(relDelta, 1) {
			alert.RelDeltaPct = infiniteRelDeltaPct
		}

		if z, p, ok := twoPropZTest(c.ScrapCurr, c.TotalCurr, c.ScrapPrior, c.TotalPrior); ok {
			zRounded := round3(z)
			pRounded := round4(p)
			alert.Z = &zRounded
			alert.PValue = &pRounded
			alert.Significant = p < thresholds.Alpha
		}

		alerts = append(alerts, alert)
	}

	return alerts
}

// relativeDelta is rate_curr/rate_prior - 1, with the zero-prior edge cases
// of the original analysis: +inf when only the prior rate is zero, 0 when
// both are.
func relativeDelta(rateCurr, ratePrior float64) float64 {
	if ratePrior == 0 {
		if rateCurr > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return rateCurr/ratePrior - 1
}

// twoPropZTest is the two-sided two-proportion z-test. ok is false when the
// test is not computable (an empty window or zero pooled variance).
func twoPropZTest(x1, n1, x2, n2 int) (z, p float64, ok bool) {
	if n1 == 0 || n2 == 0 {
		return 0, 0, false
	}

	p1 := float64(x1) / float64(n1)
	p2 := float64(x2) / float64(n2)
	pPool := float64(x1+x2) / float64(n1+n2)

	se := math.Sqrt(pPool * (1 - pPool) * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return 0, 0, false
	}

	z = (p1 - p2) / se
	p = 2 * (1 - normalCDF(math.Abs(z)))
	return z, p, true
}

// normalCDF is the standard normal CDF via the error function.
func normalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
