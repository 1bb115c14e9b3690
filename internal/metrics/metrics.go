package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "awards"

// Upload outcomes.
const (
	OutcomePublished = "published"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

type Metrics struct {
	registry  *prometheus.Registry
	uploads   *prometheus.CounterVec
	published prometheus.Counter
}

// New registers the board's collectors on a private registry. viewers
// reports the number of connected board subscribers at scrape time.
func New(viewers func() int) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Hand history uploads by outcome.",
		}, []string{"outcome"}),
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_published_total",
			Help:      "Results stored and broadcast to viewers.",
		}),
	}
	reg.MustRegister(m.uploads, m.published)
	if viewers != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_viewers",
			Help:      "Connected SSE and websocket viewers.",
		}, func() float64 { return float64(viewers()) }))
	}
	return m
}

func (m *Metrics) ObserveUpload(outcome string) {
	m.uploads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePublish() {
	m.published.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
