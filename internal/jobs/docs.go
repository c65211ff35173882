// Package jobs provides scheduled background tasks for the delivery backend.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and drive application
// command handlers; they never touch repositories directly.
//
// # Available Jobs
//
// 1. SessionCleanupJob - deletes expired and revoked refresh sessions,
// by default at minute 0 of every hour (SESSION_CLEANUP_SCHEDULE).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeSessionsHandler, cfg.SessionCleanupSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
