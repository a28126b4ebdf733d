package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// RejectOrderCommandHandler rejects an order's current approval step and
// cancels the order.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for rejection decisions.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{uowFactory: uowFactory}
}

// Handle rejects the current step and returns the updated aggregate.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (*order.Order, error) {
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

		if err = aggregate.Reject(cmd.ApproverID(), cmd.Reason(), time.Now()); err != nil {
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
