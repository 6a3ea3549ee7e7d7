package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg prometheus.Gatherer, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestClientMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClientMetrics(reg)

	m.Observe("getMe", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.Observe("getMe", http.MethodGet, http.StatusOK, 30*time.Millisecond)
	m.Observe("getMe", http.MethodGet, 0, time.Second)

	assert.Equal(t, 2.0, counterValue(t, reg, "solidtime_client_requests_total",
		map[string]string{"alias": "getMe", "method": "GET", "status": "200"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "solidtime_client_requests_total",
		map[string]string{"alias": "getMe", "method": "GET", "status": "error"}))
}

func TestServerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewServerMetrics(reg)

	m.Observe("createTag", http.StatusUnprocessableEntity)

	assert.Equal(t, 1.0, counterValue(t, reg, "solidtime_mock_requests_total",
		map[string]string{"alias": "createTag", "status": "422"}))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var c *ClientMetrics
	var s *ServerMetrics
	assert.NotPanics(t, func() {
		c.Observe("getMe", http.MethodGet, http.StatusOK, time.Millisecond)
		s.Observe("getMe", http.StatusOK)
	})
}
