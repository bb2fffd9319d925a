// Package metrics holds the Prometheus collectors of the grantctl client.
//
// The collectors live in their own Registry so a CLI run can dump exactly
// its own series to a node_exporter textfile.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every grantctl collector.
var Registry = prometheus.NewRegistry()

var (
	// API request metrics
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantctl",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of GrantThrive API requests by operation and status code",
		},
		[]string{"operation", "code"},
	)

	apiRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "grantctl",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Latency of GrantThrive API requests in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"operation"},
	)

	// Wizard submission metrics
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantctl",
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Total number of draft saves and publishes by result",
		},
		[]string{"intent", "result"},
	)

	submissionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "grantctl",
			Subsystem: "wizard",
			Name:      "submission_duration_seconds",
			Help:      "Duration of draft saves and publishes in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"intent"},
	)

	validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantctl",
			Subsystem: "wizard",
			Name:      "validation_failures_total",
			Help:      "Total number of blocked step transitions by step",
		},
		[]string{"step"},
	)
)

func init() {
	Registry.MustRegister(
		apiRequestsTotal,
		apiRequestLatency,
		submissionsTotal,
		submissionDuration,
		validationFailuresTotal,
	)
}

// RecordRequest records one API request. A code of 0 means the request never
// got a response.
func RecordRequest(operation string, code int, seconds float64) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	apiRequestsTotal.WithLabelValues(operation, label).Inc()
	apiRequestLatency.WithLabelValues(operation).Observe(seconds)
}

// RecordSubmission records a finished draft save or publish.
func RecordSubmission(intent string, success bool, seconds float64) {
	result := "success"
	if !success {
		result = "error"
	}
	submissionsTotal.WithLabelValues(intent, result).Inc()
	submissionDuration.WithLabelValues(intent).Observe(seconds)
}

// RecordValidationFailure records a step that blocked forward navigation.
func RecordValidationFailure(step int) {
	validationFailuresTotal.WithLabelValues(strconv.Itoa(step)).Inc()
}

// WriteTextfile writes the current values of every collector to path in the
// text exposition format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
