// Package metrics exposes Prometheus instrumentation for tool execution.
// The collector owns its own registry so callers never pollute the default
// one, and serves it through Handler for mounting on the HTTP transport.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records per-tool invocation metrics.
type Collector struct {
	registry *prometheus.Registry

	callsTotal      *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	durationSeconds *prometheus.HistogramVec
}

// New creates a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		callsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathmcp_tool_calls_total",
				Help: "Total number of tool invocations",
			},
			[]string{"tool"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathmcp_tool_errors_total",
				Help: "Total number of tool invocations that returned an error",
			},
			[]string{"tool", "kind"},
		),
		durationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mathmcp_tool_duration_seconds",
				Help:    "Tool execution time distribution in seconds",
				Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
			},
			[]string{"tool"},
		),
	}

	c.registry.MustRegister(c.callsTotal, c.errorsTotal, c.durationSeconds)
	return c
}

// ObserveCall records a completed tool invocation. kind is the error kind
// label, empty for success.
func (c *Collector) ObserveCall(tool string, d time.Duration, kind string) {
	c.callsTotal.WithLabelValues(tool).Inc()
	c.durationSeconds.WithLabelValues(tool).Observe(d.Seconds())
	if kind != "" {
		c.errorsTotal.WithLabelValues(tool, kind).Inc()
	}
}

// Handler returns the scrape handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
