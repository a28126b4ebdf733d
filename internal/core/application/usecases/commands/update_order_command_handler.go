package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial updates to an order that is
// still modifiable, under optimistic concurrency.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the update and returns the updated aggregate.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

		params, err := h.buildParams(cmd)
		if err != nil {
			return err
		}
		if err = aggregate.Update(params, time.Now()); err != nil {
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

func (h *UpdateOrderCommandHandler) buildParams(cmd UpdateOrderCommand) (order.UpdateParams, error) {
	params := order.UpdateParams{
		ShippingAmount:  cmd.ShippingAmount(),
		Priority:        cmd.Priority(),
		Notes:           cmd.Notes(),
		ShippingAddress: cmd.ShippingAddress(),
	}

	if cmd.Items() != nil {
		items, err := buildItems(cmd.Items())
		if err != nil {
			return order.UpdateParams{}, err
		}
		params.Items = items
	}

	if cmd.PaymentTerms() != nil {
		terms := cmd.PaymentTerms().toDomain()
		params.PaymentTerms = &terms
	}

	return params, nil
}
