// Package jobs provides scheduled background tasks for the freight service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, standard five-field
// expressions evaluated in UTC).
//
// # Available Jobs
//
// LoadRetentionJob - hard-deletes loads that were soft-deleted, and drafts that
// were left untouched, longer than the retention window (30 days by default).
// Offers and final agreements of purged loads go with them.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, cfg.RetentionSchedule, cfg.Retention, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried at the next tick; nothing is purged
// partially because the sweep runs in a single transaction.
package jobs
