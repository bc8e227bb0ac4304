// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DialogTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_turns_total",
			Help: "Total number of dialog turns handled, by resulting action",
		},
		[]string{"action"},
	)

	DialogValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_validation_failures_total",
			Help: "Total number of slot validation failures, by slot",
		},
		[]string{"slot"},
	)

	FulfillmentMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_messages_total",
			Help: "Total number of fulfillment messages processed, by status",
		},
		[]string{"status"},
	)

	FulfillmentEmailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_emails_sent_total",
			Help: "Total number of suggestion emails sent",
		},
	)

	FulfillmentPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "fulfillment_pass_duration_seconds",
			Help: "Duration of a single fulfillment queue pass in seconds",
		},
	)

	IngestRecordsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_records_written_total",
			Help: "Total number of restaurant records written during ingestion",
		},
	)

	IngestRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_records_skipped_total",
			Help: "Total number of restaurant records skipped during ingestion, by reason",
		},
		[]string{"reason"},
	)
)
