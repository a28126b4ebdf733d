package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of a modifiable order.
// Nil optional fields are left untouched; supplying items or shipping
// recomputes the totals, supplying terms re-resolves the due date.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	orderID  kernel.UUID

	items           []ItemInput
	shippingAmount  *decimal.Decimal
	paymentTerms    *PaymentTermsInput
	priority        *order.Priority
	notes           *string
	shippingAddress *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order. The fields to
// change are supplied through the Set methods; a command with no Set calls
// is a valid no-op.
func NewUpdateOrderCommand(tenantID, orderID kernel.UUID) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		tenantID.Validate(),
		orderID.Validate(),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c UpdateOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Items returns the replacement line items, nil when items are unchanged.
func (c UpdateOrderCommand) Items() []ItemInput { return c.items }

// ShippingAmount returns the new shipping charge, nil when unchanged.
func (c UpdateOrderCommand) ShippingAmount() *decimal.Decimal { return c.shippingAmount }

// PaymentTerms returns the new terms selection, nil when unchanged.
func (c UpdateOrderCommand) PaymentTerms() *PaymentTermsInput { return c.paymentTerms }

// Priority returns the new priority, nil when unchanged.
func (c UpdateOrderCommand) Priority() *order.Priority { return c.priority }

// Notes returns the new notes, nil when unchanged.
func (c UpdateOrderCommand) Notes() *string { return c.notes }

// ShippingAddress returns the new shipping address, nil when unchanged.
func (c UpdateOrderCommand) ShippingAddress() *string { return c.shippingAddress }

// SetItems replaces the order's line items.
func (c *UpdateOrderCommand) SetItems(items []ItemInput) {
	c.items = items
}

// SetShippingAmount changes the shipping charge.
func (c *UpdateOrderCommand) SetShippingAmount(amount decimal.Decimal) {
	c.shippingAmount = &amount
}

// SetPaymentTerms changes the payment terms.
func (c *UpdateOrderCommand) SetPaymentTerms(terms PaymentTermsInput) {
	c.paymentTerms = &terms
}

// SetPriority changes the order priority.
func (c *UpdateOrderCommand) SetPriority(priority order.Priority) {
	c.priority = &priority
}

// SetNotes changes the free-text order notes.
func (c *UpdateOrderCommand) SetNotes(notes string) {
	c.notes = &notes
}

// SetShippingAddress changes the free-text shipping address.
func (c *UpdateOrderCommand) SetShippingAddress(address string) {
	c.shippingAddress = &address
}
