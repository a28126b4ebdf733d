package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrCreateOrderTemplateCommandIsNotConstructed = errors.New(
	"CreateOrderTemplateCommand must be created via NewCreateOrderTemplateCommand constructor",
)

// CreateOrderTemplateCommand registers a reusable order template.
type CreateOrderTemplateCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	customerID *kernel.UUID
	name       string
	items      []ItemInput

	paymentTerms PaymentTermsInput
	tags         []string

	guard guard.ConstructorGuard
}

// NewCreateOrderTemplateCommand creates a command to register a template.
// The customer binding is optional; name and items are mandatory.
func NewCreateOrderTemplateCommand(
	tenantID kernel.UUID,
	name string,
	items []ItemInput,
) (CreateOrderTemplateCommand, error) {
	cmd := CreateOrderTemplateCommand{guard: guard.NewConstructorGuard()}

	var nameErr, itemsErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("template name")
	}
	if len(items) == 0 {
		itemsErr = ErrItemsAreRequired
	}
	if err := errors.Join(tenantID.Validate(), nameErr, itemsErr); err != nil {
		return CreateOrderTemplateCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.name = name
	cmd.items = items
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderTemplateCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTemplateCommandIsNotConstructed)
}

// TenantID returns the tenant the template belongs to.
func (c CreateOrderTemplateCommand) TenantID() kernel.UUID { return c.tenantID }

// CustomerID returns the optional customer binding, nil when unbound.
func (c CreateOrderTemplateCommand) CustomerID() *kernel.UUID { return c.customerID }

// Name returns the template's display name.
func (c CreateOrderTemplateCommand) Name() string { return c.name }

// Items returns the raw seed line-item inputs.
func (c CreateOrderTemplateCommand) Items() []ItemInput { return c.items }

// PaymentTerms returns the raw seed payment-terms selection.
func (c CreateOrderTemplateCommand) PaymentTerms() PaymentTermsInput { return c.paymentTerms }

// Tags returns the template's tags.
func (c CreateOrderTemplateCommand) Tags() []string { return c.tags }

// SetCustomerID binds the template to a customer.
func (c *CreateOrderTemplateCommand) SetCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = &customerID
	return nil
}

// SetPaymentTerms sets the seed payment-terms selection.
func (c *CreateOrderTemplateCommand) SetPaymentTerms(terms PaymentTermsInput) {
	c.paymentTerms = terms
}

// SetTags sets the template's tags.
func (c *CreateOrderTemplateCommand) SetTags(tags []string) {
	c.tags = tags
}
