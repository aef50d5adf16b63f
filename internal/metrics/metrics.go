package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts dashboard cycles and store mutations. A nil *Recorder is
// valid and records nothing.
type Recorder struct {
	cycles        *prometheus.CounterVec
	cycleDuration prometheus.Histogram
	mutations     *prometheus.CounterVec
	gatherer      prometheus.Gatherer
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nobel_dashboard",
			Name:      "cycles_total",
			Help:      "Dashboard update cycles by result.",
		}, []string{"result"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nobel_dashboard",
			Name:      "cycle_duration_seconds",
			Help:      "Time spent in one dashboard update cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nobel_dashboard",
			Name:      "mutations_total",
			Help:      "Store mutations by kind and result.",
		}, []string{"kind", "result"}),
		gatherer: reg,
	}
	reg.MustRegister(r.cycles, r.cycleDuration, r.mutations)
	return r
}

func (r *Recorder) ObserveCycle(result string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.cycles.WithLabelValues(result).Inc()
	r.cycleDuration.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveMutation(kind, result string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(kind, result).Inc()
}

// Handler exposes the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
