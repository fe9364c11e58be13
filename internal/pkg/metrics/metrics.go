package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed on /metrics
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "unidash_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "unidash_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	EnrollmentRecomputesTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "unidash_enrollment_recomputes_total",
		Help: "Number of enrollmentCount recomputations written to courses",
	})

	EnrollmentDriftCorrectedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "unidash_enrollment_drift_corrected_total",
		Help: "Number of courses whose stored enrollmentCount was found wrong and corrected",
	})

	DuplicatesRemovedTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "unidash_duplicates_removed_total",
		Help: "Number of shadow duplicate records physically removed, by kind",
	}, []string{"kind"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
