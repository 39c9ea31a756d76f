package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	loadRetentionJob *LoadRetentionJob
}

// NewJobManager wires the retention sweep to the purge handler.
func NewJobManager(
	purger LoadPurger,
	retentionSchedule string,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		loadRetentionJob: NewLoadRetentionJob(purger, retentionSchedule, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.loadRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start load retention job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.loadRetentionJob.Stop()
}
