package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	abandonedCartJob *AbandonedCartJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	abandonedCartQueryHandler queries.GetAbandonedCartOrdersQueryHandler,
	notifyAbandonedCartHandler commands.NotifyAbandonedCartCommandHandler,
	abandonedCartThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		abandonedCartJob: NewAbandonedCartJob(
			abandonedCartQueryHandler,
			notifyAbandonedCartHandler,
			abandonedCartThreshold,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.abandonedCartJob.Start(); err != nil {
		return fmt.Errorf("failed to start abandoned cart job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.abandonedCartJob.Stop()
}
