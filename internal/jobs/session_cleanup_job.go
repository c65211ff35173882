package jobs

import (
	"context"
	"time"

	"swiftdrop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSessionCleanupSchedule runs the cleanup at minute 0 of every hour.
const DefaultSessionCleanupSchedule = "0 * * * *"

// SessionPurger is the use case SessionCleanupJob drives.
type SessionPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeSessionsCommand) (int64, error)
}

// SessionCleanupJob periodically deletes expired and revoked refresh sessions.
type SessionCleanupJob struct {
	handler  SessionPurger
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionCleanupJob creates the job. An empty schedule falls back to
// DefaultSessionCleanupSchedule; schedules use the standard five-field cron syntax.
func NewSessionCleanupJob(handler SessionPurger, schedule string, logger *zap.Logger) *SessionCleanupJob {
	if schedule == "" {
		schedule = DefaultSessionCleanupSchedule
	}

	return &SessionCleanupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With(zap.String("component", "session_cleanup_job")),
		now:      time.Now,
	}
}

// Start registers the cleanup on the schedule and starts the scheduler.
func (j *SessionCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Session cleanup job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one cleanup pass.
func (j *SessionCleanupJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewPurgeSessionsCommand(j.now())
	if err != nil {
		j.logger.Error("Session cleanup job failed", zap.Error(err))
		return
	}

	if _, err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.Error("Session cleanup job failed", zap.Error(err))
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *SessionCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Session cleanup job stopped")
}
