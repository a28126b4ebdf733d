package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a validated status transition to
// a persisted order under optimistic concurrency.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the transition and returns the updated aggregate.
// A version conflict re-runs the whole fetch-transition-update cycle
// against fresh state.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

		if err = aggregate.ChangeStatus(
			cmd.NewStatus(), cmd.ActorID(), cmd.Reason(), cmd.Notes(), time.Now(),
		); err != nil {
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
