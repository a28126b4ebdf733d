package jobs

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// overdueInstallmentsSchedule runs the overdue sweep daily at 00:05, after
// the day boundary has passed for every installment due the previous day.
const overdueInstallmentsSchedule = "0 5 0 * * *"

// OverdueInstallmentsJob manages the scheduled flagging of overdue
// installments. Runs daily to mark pending installments whose due date has
// passed.
type OverdueInstallmentsJob struct {
	handler commands.MarkInstallmentsOverdueCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueInstallmentsJob creates a new job for flagging overdue
// installments. Uses MarkInstallmentsOverdueCommandHandler to run the daily
// sweep.
func NewOverdueInstallmentsJob(handler commands.MarkInstallmentsOverdueCommandHandler, logger *slog.Logger) *OverdueInstallmentsJob {
	return &OverdueInstallmentsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_installments_job"),
	}
}

// Start begins the overdue installments job on its daily schedule.
func (j *OverdueInstallmentsJob) Start() error {
	_, err := j.cron.AddFunc(overdueInstallmentsSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewMarkInstallmentsOverdueCommand(time.Now())

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue installments sweep failed", "error", err)
			return
		}
		if result.MarkedInstallments > 0 || result.Failed > 0 {
			j.logger.InfoContext(ctx, "Overdue installments sweep finished",
				"orders", result.Orders,
				"marked", result.MarkedInstallments,
				"failed", result.Failed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue installments job started (running daily)")
	return nil
}

// Stop stops the overdue installments job.
func (j *OverdueInstallmentsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue installments job stopped")
}
