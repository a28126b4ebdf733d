package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// ApproveOrderCommandHandler advances an order's approval workflow by one
// step. Two approvers racing for the same step serialize through the
// order's version, so a step can only be decided once.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for approval decisions.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{uowFactory: uowFactory}
}

// Handle approves the current step and returns the updated aggregate.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *order.Order
	err := retryOnVersionConflict(ctx, func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
		if err != nil {
			return err
		}

		if err = aggregate.Approve(cmd.ApproverID(), cmd.Comments(), time.Now()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}

		updated = aggregate
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
