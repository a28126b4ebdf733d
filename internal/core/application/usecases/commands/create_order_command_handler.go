package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates the referenced customer exists, allocates the tenant-scoped
// order number, and runs the creation-time engines (totals, due date,
// approval check) via the domain constructor.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	customers  ports.CustomerReader
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and a
// CustomerReader for existence validation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, customers ports.CustomerReader) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
	}
}

// Handle processes the order creation command and returns the created
// aggregate. The order number allocation and the insert share one
// transaction, so concurrent creations never collide on a number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.customers.Exists(ctx, cmd.TenantID(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	orderRepo := uow.OrderRepository()

	orderNumber, err := orderRepo.NextOrderNumber(ctx, cmd.TenantID(), now)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		TenantID:        cmd.TenantID(),
		CustomerID:      cmd.CustomerID(),
		UserID:          cmd.UserID(),
		OrderNumber:     orderNumber,
		Items:           items,
		ShippingAmount:  cmd.ShippingAmount(),
		PaymentTerms:    cmd.PaymentTerms().toDomain(),
		Priority:        cmd.Priority(),
		Recurring:       cmd.Recurring(),
		Notes:           cmd.Notes(),
		ShippingAddress: cmd.ShippingAddress(),
		Now:             now,
	})
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
