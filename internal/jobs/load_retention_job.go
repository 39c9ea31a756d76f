package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRetentionSchedule runs the sweep every night at 03:00.
const DefaultRetentionSchedule = "0 3 * * *"

// LoadPurger is the part of PurgeExpiredLoadsCommandHandler the job needs.
type LoadPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredLoadsCommand) (int64, error)
}

// LoadRetentionJob hard-deletes soft-deleted loads and stale drafts once they
// fall out of the retention window.
type LoadRetentionJob struct {
	purger    LoadPurger
	schedule  string
	retention time.Duration
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
	now       func() time.Time
}

func NewLoadRetentionJob(purger LoadPurger, schedule string, retention time.Duration, logger *slog.Logger) *LoadRetentionJob {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	if retention <= 0 {
		retention = commands.DefaultRetention
	}
	return &LoadRetentionJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		timeout:   5 * time.Minute,
		cron:      cron.New(cron.WithLocation(time.UTC)),
		logger:    logger.With("component", "load_retention_job"),
		now:       time.Now,
	}
}

// Start registers the sweep and starts the scheduler. An invalid schedule is
// reported here rather than at first run.
func (j *LoadRetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		_, _ = j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Load retention job started", "schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce performs one sweep and logs its outcome.
func (j *LoadRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPurgeExpiredLoadsCommand(j.retention, j.now())
	if err != nil {
		return 0, err
	}

	purged, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Load retention sweep failed", "error", err)
		return 0, err
	}
	j.logger.InfoContext(ctx, "Load retention sweep finished", "purged", purged, "cutoff", cmd.Cutoff())
	return purged, nil
}

// Stop waits for a running sweep to finish.
func (j *LoadRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Load retention job stopped")
}
