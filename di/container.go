package di

import (
	"qinsight/config"
	"qinsight/driver/quality_db"
	"qinsight/driver/report_cache"
	"qinsight/gateway/chronic_issues_gateway"
	"qinsight/gateway/defect_trend_gateway"
	"qinsight/gateway/part_comparison_gateway"
	"qinsight/gateway/part_records_gateway"
	"qinsight/gateway/period_metrics_gateway"
	"qinsight/usecase/fetch_chronic_issues_usecase"
	"qinsight/usecase/fetch_defect_trend_usecase"
	"qinsight/usecase/fetch_part_comparison_usecase"
	"qinsight/usecase/fetch_part_records_usecase"
	"qinsight/usecase/fetch_period_metrics_usecase"
	"qinsight/usecase/quality_alerts_usecase"
)

type ApplicationComponents struct {
	FetchDefectTrendUsecase    *fetch_defect_trend_usecase.FetchDefectTrendUsecase
	FetchPeriodMetricsUsecase  *fetch_period_metrics_usecase.FetchPeriodMetricsUsecase
	FetchPartComparisonUsecase *fetch_part_comparison_usecase.FetchPartComparisonUsecase
	QualityAlertsUsecase       *quality_alerts_usecase.QualityAlertsUsecase
	FetchChronicIssuesUsecase  *fetch_chronic_issues_usecase.FetchChronicIssuesUsecase
	FetchPartRecordsUsecase    *fetch_part_records_usecase.FetchPartRecordsUsecase
	QualityDBRepository        *quality_db.QualityDBRepository
}

func NewApplicationComponents(pool quality_db.PgxIface, cache *report_cache.TrendCache, cfg *config.Config) *ApplicationComponents {
	report := cfg.Report

	defectTrendGatewayImpl := defect_trend_gateway.NewDefectTrendGateway(pool)
	fetchDefectTrendUsecase := fetch_defect_trend_usecase.NewFetchDefectTrendUsecase(defectTrendGatewayImpl, cache)

	periodMetricsGatewayImpl := period_metrics_gateway.NewPeriodMetricsGateway(pool)
	fetchPeriodMetricsUsecase := fetch_period_metrics_usecase.NewFetchPeriodMetricsUsecase(
		periodMetricsGatewayImpl, report.DefaultWindowDays, report.MaxWindowDays)

	partComparisonGatewayImpl := part_comparison_gateway.NewPartComparisonGateway(pool)
	fetchPartComparisonUsecase := fetch_part_comparison_usecase.NewFetchPartComparisonUsecase(
		partComparisonGatewayImpl, report.DefaultWindowDays, report.MaxWindowDays)

	qualityAlertsUsecase := quality_alerts_usecase.NewQualityAlertsUsecase(
		partComparisonGatewayImpl,
		quality_alerts_usecase.Thresholds{
			MinSamples:   report.AlertMinSamples,
			RelThreshold: report.AlertRelThreshold,
			AbsThreshold: report.AlertAbsThreshold,
			Alpha:        report.AlertAlpha,
		},
		report.DefaultWindowDays, report.MaxWindowDays)

	chronicIssuesGatewayImpl := chronic_issues_gateway.NewChronicIssuesGateway(pool)
	fetchChronicIssuesUsecase := fetch_chronic_issues_usecase.NewFetchChronicIssuesUsecase(
		chronicIssuesGatewayImpl, report.ChronicIssueLimit)

	partRecordsGatewayImpl := part_records_gateway.NewPartRecordsGateway(pool)
	fetchPartRecordsUsecase := fetch_part_records_usecase.NewFetchPartRecordsUsecase(
		partRecordsGatewayImpl, report.DefaultRecordLimit, report.MaxRecordLimit)

	qualityDBRepository := quality_db.NewQualityDBRepositoryWithPool(pool)

	return &ApplicationComponents{
		FetchDefectTrendUsecase:    fetchDefectTrendUsecase,
		FetchPeriodMetricsUsecase:  fetchPeriodMetricsUsecase,
		FetchPartComparisonUsecase: fetchPartComparisonUsecase,
		QualityAlertsUsecase:       qualityAlertsUsecase,
		FetchChronicIssuesUsecase:  fetchChronicIssuesUsecase,
		FetchPartRecordsUsecase:    fetchPartRecordsUsecase,
		QualityDBRepository:        qualityDBRepository,
	}
}
