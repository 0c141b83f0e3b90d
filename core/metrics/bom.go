package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes recorded on bom_runs_total.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// BOMMetrics records reconciliation runs, line statuses and alerts.
type BOMMetrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lines    *prometheus.CounterVec
	alerts   *prometheus.CounterVec
}

// NewBOMMetrics registers the BOM metrics on the provided registerer.
// A nil registerer yields a recorder that drops every observation.
func NewBOMMetrics(reg prometheus.Registerer) *BOMMetrics {
	if reg == nil {
		return &BOMMetrics{}
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bom_runs_total",
		Help: "BOM reconciliation runs by mode and outcome.",
	}, []string{"mode", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bom_run_duration_seconds",
		Help:    "Duration of BOM reconciliation runs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})
	lines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bom_lines_total",
		Help: "BOM lines reconciled by status.",
	}, []string{"status"})
	alerts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bom_alerts_total",
		Help: "Alerts raised during BOM reconciliation by type.",
	}, []string{"type"})
	reg.MustRegister(runs, duration, lines, alerts)
	return &BOMMetrics{
		runs:     runs,
		duration: duration,
		lines:    lines,
		alerts:   alerts,
	}
}

// ObserveRun records one run and how long it took.
func (m *BOMMetrics) ObserveRun(mode, outcome string, took time.Duration) {
	if m == nil || m.runs == nil {
		return
	}
	mode = normalizeLabel(mode)
	m.runs.WithLabelValues(mode, normalizeLabel(outcome)).Inc()
	m.duration.WithLabelValues(mode).Observe(took.Seconds())
}

// AddLine increments the line counter for status.
func (m *BOMMetrics) AddLine(status string) {
	if m == nil || m.lines == nil {
		return
	}
	m.lines.WithLabelValues(normalizeLabel(status)).Inc()
}

// AddAlert increments the alert counter for alertType.
func (m *BOMMetrics) AddAlert(alertType string) {
	if m == nil || m.alerts == nil {
		return
	}
	m.alerts.WithLabelValues(normalizeLabel(alertType)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
