package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// CreateOrderFromTemplateCommandHandler stamps new orders out of stored
// templates. The template is fetched directly by its identifier.
type CreateOrderFromTemplateCommandHandler struct {
	uowFactory UoWFactory
	customers  ports.CustomerReader
}

// NewCreateOrderFromTemplateCommandHandler creates a handler for
// template-based order creation. Requires a cross-aggregate UoWFactory,
// since the command reads a template and writes an order in one
// transaction.
func NewCreateOrderFromTemplateCommandHandler(
	uowFactory UoWFactory, customers ports.CustomerReader,
) CreateOrderFromTemplateCommandHandler {
	return CreateOrderFromTemplateCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
	}
}

// Handle creates an order from the template's seed items and terms and
// returns the created aggregate. The order runs through the normal
// creation path, so totals, due date, and the approval check all apply.
func (h *CreateOrderFromTemplateCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderFromTemplateCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tmpl, err := uow.TemplateRepository().Get(ctx, cmd.TenantID(), cmd.TemplateID())
	if err != nil {
		return nil, err
	}

	customerID := cmd.CustomerID()
	if customerID == nil {
		customerID = tmpl.CustomerID()
	}
	if customerID == nil {
		return nil, errs.NewValueIsRequiredError("customer id")
	}

	exists, err := h.customers.Exists(ctx, cmd.TenantID(), *customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", customerID.String())
	}

	now := time.Now()
	orderRepo := uow.OrderRepository()

	orderNumber, err := orderRepo.NextOrderNumber(ctx, cmd.TenantID(), now)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(order.NewOrderParams{
		ID:           kernel.NewUUID(),
		TenantID:     cmd.TenantID(),
		CustomerID:   *customerID,
		UserID:       cmd.UserID(),
		OrderNumber:  orderNumber,
		Items:        tmpl.Items(),
		PaymentTerms: tmpl.PaymentTerms(),
		Now:          now,
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
