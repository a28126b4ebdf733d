package commands

import "context"

// DeleteOrderTemplateCommandHandler removes a template from the catalog.
type DeleteOrderTemplateCommandHandler struct {
	uowFactory TemplateUoWFactory
}

// NewDeleteOrderTemplateCommandHandler creates a handler for template
// deletion.
func NewDeleteOrderTemplateCommandHandler(uowFactory TemplateUoWFactory) DeleteOrderTemplateCommandHandler {
	return DeleteOrderTemplateCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the template. A missing template surfaces as an
// ObjectNotFoundError from the repository.
func (h *DeleteOrderTemplateCommandHandler) Handle(ctx context.Context, cmd DeleteOrderTemplateCommand) error {
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

	if err := uow.TemplateRepository().Delete(ctx, cmd.TenantID(), cmd.TemplateID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
