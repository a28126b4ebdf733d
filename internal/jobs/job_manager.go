package jobs

import (
	"fmt"
	"log/slog"

	"pos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	recurringOrdersJob     *RecurringOrdersJob
	overdueInstallmentsJob *OverdueInstallmentsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	recurringOrdersHandler commands.ProcessRecurringOrdersCommandHandler,
	markOverdueHandler commands.MarkInstallmentsOverdueCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		recurringOrdersJob:     NewRecurringOrdersJob(recurringOrdersHandler, logger),
		overdueInstallmentsJob: NewOverdueInstallmentsJob(markOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.recurringOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start recurring orders job: %w", err)
	}

	if err := jm.overdueInstallmentsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.recurringOrdersJob.Stop()
		return fmt.Errorf("failed to start overdue installments job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueInstallmentsJob.Stop()
	jm.recurringOrdersJob.Stop()
}
