package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ClientMetrics counts outbound API calls per endpoint alias.
type ClientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClientMetrics registers client collectors on reg.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	factory := promauto.With(reg)
	return &ClientMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solidtime_client_requests_total",
				Help: "Total number of solidtime API calls",
			},
			[]string{"alias", "method", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "solidtime_client_request_duration_seconds",
				Help:    "solidtime API call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"alias", "method"},
		),
	}
}

// Observe records one call. A zero status means the call never got a response.
func (m *ClientMetrics) Observe(alias, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(alias, method, statusLabel(status)).Inc()
	m.duration.WithLabelValues(alias, method).Observe(elapsed.Seconds())
}

// ServerMetrics counts requests served by the stub server.
type ServerMetrics struct {
	requests *prometheus.CounterVec
}

// NewServerMetrics registers stub server collectors on reg.
func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	return &ServerMetrics{
		requests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "solidtime_mock_requests_total",
				Help: "Total number of requests served by the stub server",
			},
			[]string{"alias", "status"},
		),
	}
}

// Observe records one served request.
func (m *ServerMetrics) Observe(alias string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(alias, statusLabel(status)).Inc()
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
