package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
)

// ExecuteBulkOperationCommandHandler runs tracked batch operations over
// orders. The batch record is persisted up front, each target is processed
// in its own transaction, and progress is flushed back to the record after
// every target, so a crash mid-batch leaves an accurate record behind.
type ExecuteBulkOperationCommandHandler struct {
	orderUoWFactory OrderUoWFactory
	bulkUoWFactory  BulkOperationUoWFactory
	logger          *slog.Logger
}

// NewExecuteBulkOperationCommandHandler creates a handler for batch
// operations.
func NewExecuteBulkOperationCommandHandler(
	orderUoWFactory OrderUoWFactory,
	bulkUoWFactory BulkOperationUoWFactory,
	logger *slog.Logger,
) ExecuteBulkOperationCommandHandler {
	return ExecuteBulkOperationCommandHandler{
		orderUoWFactory: orderUoWFactory,
		bulkUoWFactory:  bulkUoWFactory,
		logger:          logger,
	}
}

// Handle runs the batch and returns the finished record. A failing target
// is recorded on the batch and never stops the remaining targets; the
// record finishes Failed when any target failed, Completed otherwise.
func (h *ExecuteBulkOperationCommandHandler) Handle(
	ctx context.Context, cmd ExecuteBulkOperationCommand,
) (*bulkop.Operation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	record, err := bulkop.NewOperation(
		kernel.NewUUID(), cmd.TenantID(), cmd.Type(), cmd.OrderIDs(), cmd.parameters(), time.Now(),
	)
	if err != nil {
		return nil, err
	}
	if err = h.saveRecord(ctx, record, true); err != nil {
		return nil, err
	}

	if err = record.Start(); err != nil {
		return nil, err
	}
	if err = h.saveRecord(ctx, record, false); err != nil {
		return nil, err
	}

	for _, orderID := range cmd.OrderIDs() {
		if err := ctx.Err(); err != nil {
			return record, err
		}
		if err := h.processTarget(ctx, cmd, orderID); err != nil {
			record.RecordFailure(fmt.Sprintf("%s: %v", orderID.String(), err))
			h.logger.Error("bulk operation target failed",
				"operation_id", record.ID().String(),
				"order_id", orderID.String(),
				"error", err)
		} else {
			record.RecordSuccess()
		}
		if err := h.saveRecord(ctx, record, false); err != nil {
			return record, err
		}
	}

	if err = record.Finish(); err != nil {
		return record, err
	}
	if err = h.saveRecord(ctx, record, false); err != nil {
		return record, err
	}

	return record, nil
}

// processTarget applies the batch mutation to one order in its own
// transaction and under its own deadline, retrying on version conflicts
// with user writes.
func (h *ExecuteBulkOperationCommandHandler) processTarget(
	ctx context.Context, cmd ExecuteBulkOperationCommand, orderID kernel.UUID,
) error {
	ctx, cancel := context.WithTimeout(ctx, perOrderTimeout)
	defer cancel()

	return retryOnVersionConflict(ctx, func(ctx context.Context) error {
		uow := h.orderUoWFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		target, err := orderRepo.Get(ctx, cmd.TenantID(), orderID)
		if err != nil {
			return err
		}

		if err = cmd.apply(target, time.Now()); err != nil {
			return err
		}

		if cmd.Type() != bulkop.TypeExport {
			if err = orderRepo.Update(ctx, target); err != nil {
				return err
			}
		}
		return uow.Commit(ctx)
	})
}

// saveRecord persists the batch record, inserting on the first call and
// updating afterwards.
func (h *ExecuteBulkOperationCommandHandler) saveRecord(
	ctx context.Context, record *bulkop.Operation, insert bool,
) error {
	uow := h.bulkUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BulkOperationRepository()
	var err error
	if insert {
		err = repo.Add(ctx, record)
	} else {
		err = repo.Update(ctx, record)
	}
	if err != nil {
		return err
	}
	return uow.Commit(ctx)
}
