package metrics

import "time"

// ResultLabel enumerates result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultSkipped ResultLabel = "skipped"
)

// TriggerLabel enumerates what caused a regeneration in watch mode.
type TriggerLabel string

const (
	TriggerManual   TriggerLabel = "manual"
	TriggerWatcher  TriggerLabel = "watcher"
	TriggerSchedule TriggerLabel = "schedule"
)

// Recorder defines observability hooks for configuration generation.
// Implementations may forward to Prometheus, OpenTelemetry, etc. All methods
// must be safe on the zero value so callers can default to NoopRecorder and
// skip nil checks.
type Recorder interface {
	ObserveGenerateDuration(d time.Duration)
	IncGenerateResult(trigger TriggerLabel, result ResultLabel)
	IncConfigReload(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerateDuration(time.Duration)       {}
func (NoopRecorder) IncGenerateResult(TriggerLabel, ResultLabel) {}
func (NoopRecorder) IncConfigReload(bool)                        {}
