package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	generateDuration prom.Histogram
	generateResults  *prom.CounterVec
	configReloads    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.generateDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "udsdoc",
			Name:      "generate_duration_seconds",
			Help:      "Duration of configuration generation runs",
			Buckets:   prom.DefBuckets,
		})
		pr.generateResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "udsdoc",
			Name:      "generate_results_total",
			Help:      "Generation run counts by trigger and outcome",
		}, []string{"trigger", "result"})
		pr.configReloads = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "udsdoc",
			Name:      "config_reloads_total",
			Help:      "Configuration reload counts by outcome",
		}, []string{"result"})
		reg.MustRegister(pr.generateDuration, pr.generateResults, pr.configReloads)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	if p == nil || p.generateDuration == nil {
		return
	}
	p.generateDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerateResult(trigger TriggerLabel, result ResultLabel) {
	if p == nil || p.generateResults == nil {
		return
	}
	p.generateResults.WithLabelValues(string(trigger), string(result)).Inc()
}

func (p *PrometheusRecorder) IncConfigReload(success bool) {
	if p == nil || p.configReloads == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.configReloads.WithLabelValues(res).Inc()
}
