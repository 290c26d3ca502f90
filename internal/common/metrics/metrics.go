// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LeadIntakeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_intake_requests_total",
			Help: "Total number of lead intake requests by response status code",
		},
		[]string{"status_code"},
	)

	LeadIntakeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_intake_failures_total",
			Help: "Total number of failed lead intake requests by error code",
		},
		[]string{"error_code"},
	)

	LeadIntakeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "lead_intake_duration_seconds",
			Help: "Duration of lead intake request handling in seconds",
		},
	)

	ZohoAPICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zoho_api_calls_total",
			Help: "Total number of outbound Zoho API calls by operation and result",
		},
		[]string{"operation", "result"},
	)
)
