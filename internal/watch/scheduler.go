package watch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler wraps gocron for periodic configuration refreshes.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler creates a new scheduler instance.
func NewScheduler() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &Scheduler{scheduler: s}, nil
}

// SchedulePeriodicRefresh registers task to run at the given interval.
func (s *Scheduler) SchedulePeriodicRefresh(interval time.Duration, task func()) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName("periodic-refresh"),
	)
	if err != nil {
		return fmt.Errorf("failed to create periodic refresh job: %w", err)
	}
	return nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("Starting scheduler")
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	return s.scheduler.Shutdown()
}
