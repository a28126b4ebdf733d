package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// RecordPaymentCommandHandler records payments against orders. The
// aggregate updates its paid and remaining balances, rolls up the payment
// status, and allocates across installments when the terms have a schedule.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle records the payment and returns the updated aggregate. Concurrent
// payments against the same order serialize through version conflicts, so
// the overpayment check always runs against the latest balance.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*order.Order, error) {
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

		if err = aggregate.RecordPayment(
			cmd.Amount(), cmd.Method(), cmd.ActorID(), cmd.Notes(), time.Now(),
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
