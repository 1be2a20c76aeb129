// Package metrics exposes Prometheus instrumentation for the audit core.
// The collector is injectable; callers decide whether and where to serve
// the registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

type Collector struct {
	registry *prometheus.Registry

	auditsTotal      *prometheus.CounterVec
	incidentsTotal   prometheus.Counter
	actionsExecuted  *prometheus.CounterVec
	actionsDenied    *prometheus.CounterVec
	anomalyScores    prometheus.Histogram
	decisionLogDepth prometheus.Gauge
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		auditsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "chainguard_audits_total",
			Help: "Total shipment audits by verdict",
		}, []string{"verdict"}),
		incidentsTotal: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "chainguard_incidents_total",
			Help: "Total handle-incident calls",
		}),
		actionsExecuted: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "chainguard_actions_executed_total",
			Help: "Actions executed after passing policy",
		}, []string{"action"}),
		actionsDenied: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "chainguard_actions_denied_total",
			Help: "Actions denied by policy, by rule",
		}, []string{"action", "rule"}),
		anomalyScores: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "chainguard_anomaly_score_distribution",
			Help:    "Distribution of audit anomaly scores",
			Buckets: []float64{0, 20, 40, 60, 80, 100},
		}),
		decisionLogDepth: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "chainguard_decision_log_entries",
			Help: "Entries currently retained in the decision log",
		}),
	}
}

// Handler serves the collector's registry in Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Nil-safe observation helpers so callers can run without metrics wired.

func (c *Collector) ObserveAudit(result types.AuditResult) {
	if c == nil {
		return
	}
	c.auditsTotal.WithLabelValues(string(result.Verdict)).Inc()
	c.anomalyScores.Observe(float64(result.AnomalyScore))
}

func (c *Collector) ObserveIncident() {
	if c == nil {
		return
	}
	c.incidentsTotal.Inc()
}

func (c *Collector) ObserveOutcome(outcome types.ActionOutcome) {
	if c == nil {
		return
	}
	if outcome.Executed {
		c.actionsExecuted.WithLabelValues(string(outcome.Action)).Inc()
		return
	}
	c.actionsDenied.WithLabelValues(string(outcome.Action), outcome.PolicyCheck.RuleEvaluated).Inc()
}

func (c *Collector) SetDecisionLogDepth(n int) {
	if c == nil {
		return
	}
	c.decisionLogDepth.Set(float64(n))
}
