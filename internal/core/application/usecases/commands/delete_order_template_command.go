package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrDeleteOrderTemplateCommandIsNotConstructed = errors.New(
	"DeleteOrderTemplateCommand must be created via NewDeleteOrderTemplateCommand constructor",
)

// DeleteOrderTemplateCommand represents a request to remove a template.
// Orders already stamped out of the template are unaffected.
type DeleteOrderTemplateCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	templateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderTemplateCommand creates a command to delete a template.
func NewDeleteOrderTemplateCommand(tenantID, templateID kernel.UUID) (DeleteOrderTemplateCommand, error) {
	if err := errors.Join(tenantID.Validate(), templateID.Validate()); err != nil {
		return DeleteOrderTemplateCommand{}, err
	}

	return DeleteOrderTemplateCommand{
		tenantID:   tenantID,
		templateID: templateID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderTemplateCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderTemplateCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c DeleteOrderTemplateCommand) TenantID() kernel.UUID { return c.tenantID }

// TemplateID returns the template to delete.
func (c DeleteOrderTemplateCommand) TemplateID() kernel.UUID { return c.templateID }
