package metrics

import (
	"net/http"
	"time"

	"payflow/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "payflow"

// PrometheusRecorder implements ports.MetricsRecorder.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	phases   *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
	runs     *prometheus.CounterVec
	savings  prometheus.Gauge
}

// NewPrometheusRecorder registers the payroll collectors, plus Go runtime
// and process collectors, on a private registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()

	phases := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of each settlement phase",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"phase"},
	)

	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipient_outcomes_total",
			Help:      "Recipients reaching a terminal state, by route",
		},
		[]string{"route", "status"},
	)

	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Payroll execute requests, by outcome",
		},
		[]string{"outcome"},
	)

	savings := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "batching_savings_percent",
		Help:      "Transaction savings of the most recent run",
	})

	reg.MustRegister(
		phases, outcomes, runs, savings,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &PrometheusRecorder{
		registry: reg,
		phases:   phases,
		outcomes: outcomes,
		runs:     runs,
		savings:  savings,
	}
}

func (p *PrometheusRecorder) ObservePhase(phase domain.Phase, d time.Duration) {
	p.phases.WithLabelValues(string(phase)).Observe(d.Seconds())
}

// RecordOutcome counts recipients settled through route. route is a phase
// name or "unsupported".
func (p *PrometheusRecorder) RecordOutcome(route string, status domain.RecipientStatus, count int) {
	if count <= 0 {
		return
	}
	p.outcomes.WithLabelValues(route, string(status)).Add(float64(count))
}

func (p *PrometheusRecorder) RecordRun(outcome string) {
	p.runs.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) SetSavingsPercent(percent int) {
	p.savings.Set(float64(percent))
}

// Registry exposes the underlying registry, mainly for tests.
func (p *PrometheusRecorder) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
