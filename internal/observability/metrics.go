package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the Prometheus instruments used by the relay.
type Metrics struct {
	Turns          *prometheus.CounterVec
	UpstreamErrors *prometheus.CounterVec
	RoomsSeeded    prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Turns: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Completed game-master turns by message kind.",
		}, []string{"kind"}),
		UpstreamErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Model provider failures by code.",
		}, []string{"code"}),
		RoomsSeeded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_seeded_total",
			Help:      "Rooms initialized with the opening game-master exchange.",
		}),
	}
}

// The counting helpers tolerate a nil receiver so services can run without
// metrics wired, e.g. in tests.

func (m *Metrics) CountTurn(kind string) {
	if m == nil {
		return
	}
	m.Turns.WithLabelValues(kind).Inc()
}

func (m *Metrics) CountUpstreamError(code string) {
	if m == nil {
		return
	}
	m.UpstreamErrors.WithLabelValues(code).Inc()
}

func (m *Metrics) CountRoomSeeded() {
	if m == nil {
		return
	}
	m.RoomsSeeded.Inc()
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
