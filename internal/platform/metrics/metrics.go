package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetconsole_api_requests_total",
		Help: "Requests issued to the fleet REST API.",
	},
		[]string{"resource", "method", "code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fleetconsole_api_request_duration_seconds",
		Help:    "Latency of requests issued to the fleet REST API.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"resource", "method"},
	)

	ConsoleRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetconsole_http_requests_total",
		Help: "Requests served by the console.",
	},
		[]string{"route", "code"},
	)

	NoticesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetconsole_notices_total",
		Help: "Notifications shown to operators, by screen and kind.",
	},
		[]string{"screen", "kind"},
	)

	JournalWriteErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetconsole_journal_write_errors_total",
		Help: "Journal entries that could not be written.",
	})
)
