package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrCreateOrderFromTemplateCommandIsNotConstructed = errors.New(
	"CreateOrderFromTemplateCommand must be created via NewCreateOrderFromTemplateCommand constructor",
)

// CreateOrderFromTemplateCommand stamps a new order out of a stored
// template. The customer defaults to the template's binding and may be
// overridden per call.
type CreateOrderFromTemplateCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	templateID kernel.UUID
	userID     kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderFromTemplateCommand creates a command to stamp an order out
// of the identified template.
func NewCreateOrderFromTemplateCommand(
	tenantID kernel.UUID,
	templateID kernel.UUID,
	userID kernel.UUID,
) (CreateOrderFromTemplateCommand, error) {
	cmd := CreateOrderFromTemplateCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		tenantID.Validate(),
		templateID.Validate(),
		userID.Validate(),
	); err != nil {
		return CreateOrderFromTemplateCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.templateID = templateID
	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderFromTemplateCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderFromTemplateCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c CreateOrderFromTemplateCommand) TenantID() kernel.UUID { return c.tenantID }

// TemplateID returns the template to stamp out.
func (c CreateOrderFromTemplateCommand) TemplateID() kernel.UUID { return c.templateID }

// UserID returns the user creating the order.
func (c CreateOrderFromTemplateCommand) UserID() kernel.UUID { return c.userID }

// CustomerID returns the per-call customer override, nil to use the
// template's binding.
func (c CreateOrderFromTemplateCommand) CustomerID() *kernel.UUID { return c.customerID }

// SetCustomerID overrides the template's customer binding for this order.
func (c *CreateOrderFromTemplateCommand) SetCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = &customerID
	return nil
}
