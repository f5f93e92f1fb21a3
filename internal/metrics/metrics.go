package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SubmissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_submissions_total",
			Help: "Total number of loan submissions accepted by the gateway",
		},
	)

	LoanAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loan_amounts",
			Help:    "Distribution of requested loan amounts",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 12),
		},
		[]string{"loan_type"},
	)

	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_decisions_total",
			Help: "Total number of decision events published",
		},
		[]string{"status", "origin"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_notifications_total",
			Help: "Total number of decision events fanned out to subscribers",
		},
		[]string{"status"},
	)

	AdminSyncFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admin_sync_failures_total",
			Help: "Total number of failed admin webhook calls",
		},
	)

	ConsumerRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumer_records_total",
			Help: "Total number of records delivered to consumer handlers",
		},
		[]string{"topic"},
	)

	ConsumerPollErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumer_poll_errors_total",
			Help: "Total number of poll errors seen by consumer loops",
		},
		[]string{"topic", "reason"},
	)

	ConsumerDLQTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumer_dlq_total",
			Help: "Total number of records published to the dead letter topic",
		},
		[]string{"topic"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		SubmissionsTotal,
		LoanAmounts,
		DecisionsTotal,
		NotificationsTotal,
		AdminSyncFailuresTotal,
		ConsumerRecordsTotal,
		ConsumerPollErrorsTotal,
		ConsumerDLQTotal,
	)
}
