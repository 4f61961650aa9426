// Package metrics exposes Prometheus collectors for the inventory core.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

const namespace = "inventory"

// Recorder counts container mutations and queries by operation and outcome.
type Recorder struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	queries   *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry. Go runtime and
// process collectors are registered alongside the inventory metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "container_mutations_total",
			Help:      "Container mutations by operation and result.",
		}, []string{"operation", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "container_mutation_duration_seconds",
			Help:      "Container mutation latency, including the transaction.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "container_queries_total",
			Help:      "Container read queries by operation and result.",
		}, []string{"operation", "result"}),
	}

	r.registry.MustRegister(
		r.mutations,
		r.latency,
		r.queries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveMutation records one finished mutation.
func (r *Recorder) ObserveMutation(operation string, err error, elapsed time.Duration) {
	r.mutations.WithLabelValues(operation, result(err)).Inc()
	r.latency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveQuery records one finished read.
func (r *Recorder) ObserveQuery(operation string, err error) {
	r.queries.WithLabelValues(operation, result(err)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func result(err error) string {
	if err == nil {
		return "ok"
	}
	return string(domain.KindOf(err))
}
