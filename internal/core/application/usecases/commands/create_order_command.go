package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to create a new order for a
// customer. Totals, due date, order number, and the approval check are all
// derived by the handler and the domain; callers supply only raw inputs.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(tenantID, customerID, userID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	cmd.SetShippingAmount(decimal.NewFromInt(25))
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	customerID kernel.UUID
	userID     kernel.UUID
	items      []ItemInput

	shippingAmount  decimal.Decimal
	paymentTerms    PaymentTermsInput
	priority        order.Priority
	recurring       *order.RecurringConfig
	notes           string
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that all identities are constructed and that at least one item
// is supplied. Optional attributes are set through the Set methods.
func NewCreateOrderCommand(
	tenantID kernel.UUID,
	customerID kernel.UUID,
	userID kernel.UUID,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard:          guard.NewConstructorGuard(),
		shippingAmount: decimal.Zero,
	}

	if err := errors.Join(
		cmd.setIdentity(tenantID, customerID, userID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (c CreateOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// CustomerID returns the customer the order is for.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// UserID returns the user creating the order.
func (c CreateOrderCommand) UserID() kernel.UUID { return c.userID }

// Items returns the raw line-item inputs.
func (c CreateOrderCommand) Items() []ItemInput { return c.items }

// ShippingAmount returns the shipping charge.
func (c CreateOrderCommand) ShippingAmount() decimal.Decimal { return c.shippingAmount }

// PaymentTerms returns the raw payment-terms selection.
func (c CreateOrderCommand) PaymentTerms() PaymentTermsInput { return c.paymentTerms }

// Priority returns the requested priority, zero meaning default.
func (c CreateOrderCommand) Priority() order.Priority { return c.priority }

// Recurring returns the optional recurrence configuration.
func (c CreateOrderCommand) Recurring() *order.RecurringConfig { return c.recurring }

// Notes returns the free-text order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// ShippingAddress returns the free-text shipping address.
func (c CreateOrderCommand) ShippingAddress() string { return c.shippingAddress }

// SetShippingAmount sets the shipping charge.
func (c *CreateOrderCommand) SetShippingAmount(amount decimal.Decimal) {
	c.shippingAmount = amount
}

// SetPaymentTerms sets the payment-terms selection.
func (c *CreateOrderCommand) SetPaymentTerms(terms PaymentTermsInput) {
	c.paymentTerms = terms
}

// SetPriority sets the order priority.
func (c *CreateOrderCommand) SetPriority(priority order.Priority) {
	c.priority = priority
}

// SetRecurring attaches a recurrence configuration.
func (c *CreateOrderCommand) SetRecurring(recurring *order.RecurringConfig) {
	c.recurring = recurring
}

// SetNotes sets the free-text order notes.
func (c *CreateOrderCommand) SetNotes(notes string) {
	c.notes = notes
}

// SetShippingAddress sets the free-text shipping address.
func (c *CreateOrderCommand) SetShippingAddress(address string) {
	c.shippingAddress = address
}

func (c *CreateOrderCommand) setIdentity(tenantID, customerID, userID kernel.UUID) error {
	if err := errors.Join(
		tenantID.Validate(),
		customerID.Validate(),
		userID.Validate(),
	); err != nil {
		return err
	}
	c.tenantID = tenantID
	c.customerID = customerID
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}
