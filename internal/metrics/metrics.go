// Prometheus 지표 정의
//
// 이메일 실패는 요청자에게 절대 전파되지 않으므로 (best-effort 계약)
// 여기서 카운터로 노출하는 것이 실패를 관측할 수 있는 유일한 경로임.
// GET /metrics로 노출.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EmailAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "siem_email_attempts_total",
			Help: "Total number of alert email send attempts",
		},
	)

	EmailFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "siem_email_failures_total",
			Help: "Total number of alert email sends that failed (swallowed, never surfaced to callers)",
		},
	)

	EmailSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "siem_email_skipped_total",
			Help: "Total number of alert emails skipped due to incomplete SMTP configuration",
		},
	)

	TestEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siem_test_events_total",
			Help: "Total number of synthetic test events inserted",
		},
		[]string{"severity"},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siem_exports_total",
			Help: "Total number of export downloads",
		},
		[]string{"format", "result"}, // format: "excel" | "pdf", result: "ok" | "error"
	)

	StorageErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siem_storage_errors_total",
			Help: "Total number of storage layer errors by operation",
		},
		[]string{"operation"},
	)
)
