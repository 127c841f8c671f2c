package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// AbandonedCartJob periodically scans for collecting orders whose cart has
// been untouched for longer than the threshold and records a reminder fact
// for each.
type AbandonedCartJob struct {
	queryHandler   queries.GetAbandonedCartOrdersQueryHandler
	commandHandler commands.NotifyAbandonedCartCommandHandler
	threshold      time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewAbandonedCartJob creates a new job for abandoned cart reminders.
// The threshold controls how long a collecting cart may sit idle before a
// reminder is due.
func NewAbandonedCartJob(
	queryHandler queries.GetAbandonedCartOrdersQueryHandler,
	commandHandler commands.NotifyAbandonedCartCommandHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *AbandonedCartJob {
	return &AbandonedCartJob{
		queryHandler:   queryHandler,
		commandHandler: commandHandler,
		threshold:      threshold,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "abandoned_cart_job"),
	}
}

// Start begins the abandoned cart job to run every minute.
func (j *AbandonedCartJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned cart job started (running every minute)")
	return nil
}

// Stop stops the abandoned cart job.
func (j *AbandonedCartJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned cart job stopped")
}

func (j *AbandonedCartJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetAbandonedCartOrdersQuery(time.Now().UTC().Add(-j.threshold))
	if err != nil {
		j.logger.ErrorContext(ctx, "Abandoned cart query construction failed", "error", err)
		return
	}

	stale, err := j.queryHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Abandoned cart scan failed", "error", err)
		return
	}

	for _, order := range stale {
		cmd, cmdErr := commands.NewNotifyAbandonedCartCommand(order.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned cart command construction failed",
				"order_id", order.ID, "error", cmdErr)
			continue
		}

		if handleErr := j.commandHandler.Handle(ctx, cmd); handleErr != nil {
			// The order may have moved on or been deleted since the scan.
			if errors.Is(handleErr, errs.ErrInvalidTransition) ||
				errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Abandoned cart reminder failed",
				"order_id", order.ID, "error", handleErr)
		}
	}
}
