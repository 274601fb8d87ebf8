// Package metrics exposes client-side Prometheus instrumentation for the
// xioca client. Attach a Recorder via xioca.WithMetrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Recorder struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}

// New registers the collectors on the default Prometheus registry.
func New() *Recorder {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on the given registry. Удобно в тестах,
// где нужен свежий реестр на каждый прогон.
func NewWith(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xioca_client_requests_total",
				Help: "Total number of API requests issued by the client",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xioca_client_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"endpoint"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "xioca_client_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
		),
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (r *Recorder) RecordRequest(endpoint, status string, duration time.Duration) {
	r.RequestsTotal.WithLabelValues(endpoint, status).Inc()
	r.RequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (r *Recorder) IncRequestsInFlight() {
	r.RequestsInFlight.Inc()
}

func (r *Recorder) DecRequestsInFlight() {
	r.RequestsInFlight.Dec()
}
