package commands

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/template"
)

// CreateOrderTemplateCommandHandler handles template registration.
type CreateOrderTemplateCommandHandler struct {
	uowFactory TemplateUoWFactory
}

// NewCreateOrderTemplateCommandHandler creates a handler for template creation.
func NewCreateOrderTemplateCommandHandler(uowFactory TemplateUoWFactory) CreateOrderTemplateCommandHandler {
	return CreateOrderTemplateCommandHandler{uowFactory: uowFactory}
}

// Handle creates the template and returns the created aggregate. Items are
// derived once here; stamping out orders later reuses the stored amounts.
func (h *CreateOrderTemplateCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderTemplateCommand,
) (*template.Template, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	terms := cmd.PaymentTerms().toDomain()
	if terms.Type == order.PaymentTermsUnknown {
		terms = order.DefaultPaymentTerms()
	}

	aggregate, err := template.NewTemplate(
		kernel.NewUUID(),
		cmd.TenantID(),
		cmd.CustomerID(),
		cmd.Name(),
		items,
		terms,
		cmd.Tags(),
	)
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

	if err = uow.TemplateRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
