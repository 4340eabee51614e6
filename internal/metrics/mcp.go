package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for MCP method calls.
const (
	OutcomeOK        = "ok"
	OutcomeToolError = "tool_error"
	OutcomeError     = "error"
)

// MCPMetrics records MCP method calls handled by the server.
type MCPMetrics struct {
	duration *prometheus.HistogramVec
	calls    *prometheus.CounterVec
}

// NewMCPMetrics registers the MCP metrics on the provided registerer.
// A nil registerer yields metrics that record nothing.
func NewMCPMetrics(reg prometheus.Registerer) *MCPMetrics {
	if reg == nil {
		return &MCPMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "toggl_mcp_request_duration_seconds",
		Help:    "Duration of MCP method calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "tool"})
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "toggl_mcp_requests_total",
		Help: "MCP method calls by outcome.",
	}, []string{"method", "tool", "outcome"})
	reg.MustRegister(duration, calls)
	return &MCPMetrics{
		duration: duration,
		calls:    calls,
	}
}

// Observe records one method call. tool is empty for non-tool methods.
func (m *MCPMetrics) Observe(method, tool, outcome string, d time.Duration) {
	if m == nil || m.calls == nil {
		return
	}
	method = normalizeLabel(method)
	m.duration.WithLabelValues(method, tool).Observe(d.Seconds())
	m.calls.WithLabelValues(method, tool, normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
