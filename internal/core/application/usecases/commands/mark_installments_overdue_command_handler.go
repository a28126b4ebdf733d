package commands

import (
	"context"
	"log/slog"

	"pos/internal/core/domain/model/kernel"
)

// OverdueSweepResult reports the outcome of one overdue-installment sweep.
type OverdueSweepResult struct {
	Orders             int
	MarkedInstallments int
	Failed             int
}

// MarkInstallmentsOverdueCommandHandler sweeps orders with installment
// terms and flags pending installments whose due date has passed.
//
// Each order is updated in its own transaction, so one failing order never
// blocks the rest of the sweep. A failure is logged and counted; the order
// is picked up again on the next sweep.
type MarkInstallmentsOverdueCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewMarkInstallmentsOverdueCommandHandler creates a handler for overdue
// sweeps.
func NewMarkInstallmentsOverdueCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) MarkInstallmentsOverdueCommandHandler {
	return MarkInstallmentsOverdueCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle runs one sweep and reports how many orders were visited, how many
// installments were flagged, and how many orders failed.
func (h *MarkInstallmentsOverdueCommandHandler) Handle(
	ctx context.Context, cmd MarkInstallmentsOverdueCommand,
) (OverdueSweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return OverdueSweepResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OverdueSweepResult{}, err
	}
	due, err := uow.OrderRepository().GetWithDueInstallments(ctx, cmd.Now())
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return OverdueSweepResult{}, err
	}

	result := OverdueSweepResult{Orders: len(due)}
	for _, o := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		marked, err := h.markOne(ctx, o.TenantID(), o.ID(), cmd)
		if err != nil {
			result.Failed++
			h.logger.Error("overdue installment sweep failed for order",
				"order_id", o.ID().String(),
				"tenant_id", o.TenantID().String(),
				"error", err)
			continue
		}
		result.MarkedInstallments += marked
	}

	return result, nil
}

// markOne re-reads one order inside its own transaction and under its own
// deadline, and flags its overdue installments. A concurrent payment may
// have settled them in the meantime; marking zero installments is a clean
// no-op.
func (h *MarkInstallmentsOverdueCommandHandler) markOne(
	ctx context.Context, tenantID, orderID kernel.UUID, cmd MarkInstallmentsOverdueCommand,
) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, perOrderTimeout)
	defer cancel()

	var marked int
	err := retryOnVersionConflict(ctx, func(ctx context.Context) error {
		marked = 0

		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, tenantID, orderID)
		if err != nil {
			return err
		}

		marked = aggregate.MarkInstallmentsOverdue(cmd.Now())
		if marked == 0 {
			return nil
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
	return marked, err
}
