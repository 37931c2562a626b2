package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveGenerateDuration(time.Second)
	r.IncGenerateResult(TriggerWatcher, ResultSuccess)
	r.IncConfigReload(true)
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.IncGenerateResult(TriggerSchedule, ResultSkipped)
	r.IncGenerateResult(TriggerSchedule, ResultSkipped)
	r.IncConfigReload(false)
	r.ObserveGenerateDuration(25 * time.Millisecond)

	got := testutil.ToFloat64(r.generateResults.WithLabelValues("schedule", "skipped"))
	assert.Equal(t, 2.0, got)
	got = testutil.ToFloat64(r.configReloads.WithLabelValues("failed"))
	assert.Equal(t, 1.0, got)
}

func TestPrometheusRecorderNilSafety(t *testing.T) {
	var r *PrometheusRecorder
	require.NotPanics(t, func() {
		r.ObserveGenerateDuration(time.Second)
		r.IncGenerateResult(TriggerManual, ResultFailed)
		r.IncConfigReload(true)
	})
}
