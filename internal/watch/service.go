package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/udsdoc/udsdoc/internal/config"
	"github.com/udsdoc/udsdoc/internal/logfields"
	"github.com/udsdoc/udsdoc/internal/metrics"
	"github.com/udsdoc/udsdoc/internal/sphinx"
)

// Service keeps the generated docs tree in sync with the configuration file.
// The live record is a process-wide immutable snapshot: a reload constructs
// a new record and swaps the pointer, it never mutates the one in place.
type Service struct {
	configPath string
	docsDir    string
	recorder   metrics.Recorder

	mu       sync.RWMutex
	current  *config.SiteConfig
	snapshot string
}

// NewService creates a watch service for the given config file and docs dir.
func NewService(configPath, docsDir string) *Service {
	return &Service{
		configPath: configPath,
		docsDir:    docsDir,
		recorder:   metrics.NoopRecorder{},
	}
}

// WithRecorder swaps the metrics recorder (NoopRecorder by default).
func (s *Service) WithRecorder(r metrics.Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// Current returns the live configuration record.
func (s *Service) Current() *config.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Run performs an initial generation, then watches the configuration file
// and re-generates on change until the context is canceled. A non-zero
// interval additionally schedules periodic refreshes as a safety net for
// missed file events.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	if err := s.Refresh(ctx, metrics.TriggerManual); err != nil {
		return fmt.Errorf("initial generation failed: %w", err)
	}

	watcher, err := NewConfigWatcher(s.configPath, s)
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			slog.Warn("Failed to stop config watcher", logfields.Error(err))
		}
	}()

	if interval > 0 {
		scheduler, err := NewScheduler()
		if err != nil {
			return err
		}
		if err := scheduler.SchedulePeriodicRefresh(interval, func() {
			if err := s.Refresh(ctx, metrics.TriggerSchedule); err != nil {
				slog.Error("Scheduled refresh failed", logfields.Error(err))
			}
		}); err != nil {
			return err
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				slog.Warn("Failed to stop scheduler", logfields.Error(err))
			}
		}()
	}

	slog.Info("Watching configuration",
		logfields.ConfigPath(s.configPath),
		logfields.DocsDir(s.docsDir))

	<-ctx.Done()
	return nil
}

// Refresh loads the configuration and regenerates the docs tree when the
// record's snapshot differs from the live one. Unchanged records are skipped
// so file events that do not alter build-affecting fields stay cheap.
func (s *Service) Refresh(_ context.Context, trigger metrics.TriggerLabel) error {
	runID := uuid.NewString()

	cfg, err := config.Load(s.configPath)
	if err != nil {
		s.recorder.IncConfigReload(false)
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	s.recorder.IncConfigReload(true)

	snap := cfg.Snapshot()

	s.mu.Lock()
	unchanged := s.current != nil && snap == s.snapshot
	if !unchanged {
		s.current = cfg.Clone()
		s.snapshot = snap
	}
	s.mu.Unlock()

	if unchanged {
		slog.Debug("Configuration unchanged, skipping generation",
			logfields.RunID(runID),
			logfields.Trigger(string(trigger)))
		s.recorder.IncGenerateResult(trigger, metrics.ResultSkipped)
		return nil
	}

	slog.Info("Configuration changed, regenerating",
		logfields.RunID(runID),
		logfields.Trigger(string(trigger)),
		logfields.Project(cfg.Project))

	return sphinx.NewGenerator(cfg, s.docsDir).WithRecorder(s.recorder).Generate(trigger)
}
