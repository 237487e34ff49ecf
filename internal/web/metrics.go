package web

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chmouel/lazycode/internal/models"
)

// Metrics holds the Prometheus collectors of one web server. They live in a
// private registry so several servers (and tests) can coexist.
type Metrics struct {
	Registry *prometheus.Registry

	eventsTotal       *prometheus.CounterVec
	workspaceEntries  *prometheus.GaugeVec
	httpRequestsTotal *prometheus.CounterVec
}

// NewMetrics registers the lazycode collectors in a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		eventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lazycode_events_total",
				Help: "Total number of UI events handled",
			},
			[]string{"action", "outcome"},
		),
		workspaceEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lazycode_workspace_entries",
				Help: "Number of directories and files in the scanned workspace",
			},
			[]string{"kind"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lazycode_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "code"},
		),
	}
}

// Handler returns the Prometheus metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// RecordEvent records a handled event. outcome is "ok" or an error kind.
func (m *Metrics) RecordEvent(action, outcome string) {
	m.eventsTotal.WithLabelValues(action, outcome).Inc()
}

// RecordRequest records an HTTP request metric.
func (m *Metrics) RecordRequest(route string, status int) {
	m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// SetWorkspace publishes the entry counts of root, root included.
func (m *Metrics) SetWorkspace(root *models.FileNode) {
	var dirs, files int
	if root != nil {
		dirs, files = root.Count()
	}
	m.workspaceEntries.WithLabelValues("dir").Set(float64(dirs))
	m.workspaceEntries.WithLabelValues("file").Set(float64(files))
}
