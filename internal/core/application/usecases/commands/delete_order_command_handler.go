package commands

import (
	"context"
	"fmt"

	"pos/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders that are still safe to delete.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the order if it is in Draft or Cancelled. Any other
// status yields a value-is-invalid error and leaves the order untouched.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if !aggregate.CanDelete() {
		return errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("order in status %s cannot be deleted", aggregate.Status()))
	}

	if err = orderRepo.Delete(ctx, cmd.TenantID(), cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
