package jobs

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDelayWatchdogJob flags delayed orders whose pushed-back readiness
// estimate has already passed. Runs every minute and logs each overdue order
// so the kitchen staff can see what slipped.
type OverdueDelayWatchdogJob struct {
	handler queries.GetOverdueDelayedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDelayWatchdogJob creates a new watchdog for overdue delayed orders.
func NewOverdueDelayWatchdogJob(
	handler queries.GetOverdueDelayedOrdersQueryHandler,
	logger *slog.Logger,
) *OverdueDelayWatchdogJob {
	return &OverdueDelayWatchdogJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_delay_watchdog_job"),
	}
}

// Start begins the watchdog job to run every minute.
func (j *OverdueDelayWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOverdueDelayedOrdersQuery()

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delay watchdog failed", "error", err)
			return
		}

		for _, o := range overdue {
			j.logger.WarnContext(ctx, "Delayed order is overdue",
				"order_id", o.ID,
				"external_reference", o.ExternalReference,
				"delayed_to", o.DelayedTo,
				"overdue_for", time.Since(o.DelayedTo).Round(time.Second),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delay watchdog started (running every minute)")
	return nil
}

// Stop stops the watchdog job.
func (j *OverdueDelayWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delay watchdog stopped")
}
