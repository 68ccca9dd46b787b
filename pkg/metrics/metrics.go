package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Import record outcomes
const (
	ResultImported  = "imported"
	ResultFailed    = "failed"
	ResultDuplicate = "duplicate"
)

var (
	importRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "import",
		Name:      "records_total",
		Help:      "Total number of bulk-import records broken down by table and outcome.",
	}, []string{"table", "result"})

	contentMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "content",
		Name:      "mutations_total",
		Help:      "Total number of committed content mutations broken down by table and action.",
	}, []string{"table", "action"})

	auditWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "audit",
		Name:      "write_failures_total",
		Help:      "Total number of audit entries that could not be written.",
	}, []string{"table"})

	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Total number of public list cache lookups broken down by table and hit/miss.",
	}, []string{"table", "result"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "portfolio",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency broken down by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func RecordImport(table, result string) {
	importRecords.WithLabelValues(table, result).Inc()
}

func RecordMutation(table, action string) {
	contentMutations.WithLabelValues(table, action).Inc()
}

func RecordAuditFailure(table string) {
	auditWriteFailures.WithLabelValues(table).Inc()
}

func RecordCacheRequest(table string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheRequests.WithLabelValues(table, result).Inc()
}

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
