package daemon

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the per-daemon Prometheus instrumentation, registered
// once at construction, mirroring cloudflared/metrics and moby's
// daemon-level metrics registration pattern: a request counter labelled
// by procedure and status, and a request-duration histogram labelled by
// procedure.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics constructs and registers kdbd's request counter and
// duration histogram against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kdbd_requests_total",
			Help: "Total number of requests handled by the daemon, by procedure and status.",
		}, []string{"procedure", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kdbd_request_duration_seconds",
			Help:    "Time taken to dispatch and reply to a request, by procedure.",
			Buckets: prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// Observe records one handled request: its procedure, resulting status,
// and how long dispatch took.
func (m *Metrics) Observe(procedure, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(procedure, status).Inc()
	m.duration.WithLabelValues(procedure).Observe(d.Seconds())
}
