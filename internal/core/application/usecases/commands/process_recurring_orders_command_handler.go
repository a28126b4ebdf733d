package commands

import (
	"context"
	"log/slog"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/services"
)

// RecurringSweepResult reports the outcome of one recurrence sweep.
type RecurringSweepResult struct {
	Due       int
	Generated int
	Failed    int
}

// ProcessRecurringOrdersCommandHandler sweeps orders whose recurrence is
// due, stamps out the next instance of each, and advances the recurrence.
//
// Each due order is processed in its own transaction, so one failing order
// never blocks the rest of the sweep. A failure is logged and counted; the
// order stays due and is retried on the next sweep.
type ProcessRecurringOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  services.RecurringOrderScheduler
	logger     *slog.Logger
}

// NewProcessRecurringOrdersCommandHandler creates a handler for recurrence
// sweeps.
func NewProcessRecurringOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler services.RecurringOrderScheduler,
	logger *slog.Logger,
) ProcessRecurringOrdersCommandHandler {
	return ProcessRecurringOrdersCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		logger:     logger,
	}
}

// Handle runs one sweep and reports how many orders were due, generated,
// and failed.
func (h *ProcessRecurringOrdersCommandHandler) Handle(
	ctx context.Context, cmd ProcessRecurringOrdersCommand,
) (RecurringSweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecurringSweepResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecurringSweepResult{}, err
	}
	due, err := uow.OrderRepository().GetRecurringDue(ctx, cmd.Now())
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return RecurringSweepResult{}, err
	}

	result := RecurringSweepResult{Due: len(due)}
	for _, original := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := h.processOne(ctx, original.TenantID(), original.ID(), cmd); err != nil {
			result.Failed++
			h.logger.Error("recurring order generation failed",
				"order_id", original.ID().String(),
				"tenant_id", original.TenantID().String(),
				"error", err)
			continue
		}
		result.Generated++
	}

	return result, nil
}

// processOne generates the next instance of one due order and advances its
// recurrence, re-reading the order inside its own transaction and under its
// own deadline. A version conflict means a concurrent sweep or user write
// got there first; the cycle re-runs and the dueness check decides whether
// anything is left to do.
func (h *ProcessRecurringOrdersCommandHandler) processOne(
	ctx context.Context, tenantID, orderID kernel.UUID, cmd ProcessRecurringOrdersCommand,
) error {
	ctx, cancel := context.WithTimeout(ctx, perOrderTimeout)
	defer cancel()

	return retryOnVersionConflict(ctx, func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		original, err := orderRepo.Get(ctx, tenantID, orderID)
		if err != nil {
			return err
		}
		if !original.IsRecurringDue(cmd.Now()) {
			return nil
		}

		orderNumber, err := orderRepo.NextOrderNumber(ctx, tenantID, cmd.Now())
		if err != nil {
			return err
		}

		instance, err := h.scheduler.GenerateInstance(original, kernel.NewUUID(), orderNumber, cmd.Now())
		if err != nil {
			return err
		}
		if err = orderRepo.Add(ctx, instance); err != nil {
			return err
		}

		cfg := original.Recurring()
		nextDate := h.scheduler.NextDate(*cfg, cmd.Now())
		if err = original.AdvanceRecurrence(nextDate); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, original); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
