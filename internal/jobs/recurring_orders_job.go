package jobs

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// recurringOrdersSchedule runs the recurrence sweep at the top of every hour.
const recurringOrdersSchedule = "0 0 * * * *"

// RecurringOrdersJob manages the scheduled generation of recurring orders.
// Runs hourly to stamp out the next instance of every order whose
// recurrence is due.
type RecurringOrdersJob struct {
	handler commands.ProcessRecurringOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRecurringOrdersJob creates a new job for generating recurring orders.
// Uses ProcessRecurringOrdersCommandHandler to run the hourly sweep.
func NewRecurringOrdersJob(handler commands.ProcessRecurringOrdersCommandHandler, logger *slog.Logger) *RecurringOrdersJob {
	return &RecurringOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "recurring_orders_job"),
	}
}

// Start begins the recurring orders job on its hourly schedule.
func (j *RecurringOrdersJob) Start() error {
	_, err := j.cron.AddFunc(recurringOrdersSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewProcessRecurringOrdersCommand(time.Now())

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Recurring orders sweep failed", "error", err)
			return
		}
		if result.Due > 0 {
			j.logger.InfoContext(ctx, "Recurring orders sweep finished",
				"due", result.Due,
				"generated", result.Generated,
				"failed", result.Failed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Recurring orders job started (running hourly)")
	return nil
}

// Stop stops the recurring orders job.
func (j *RecurringOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Recurring orders job stopped")
}
