package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand registers a received payment against an order.
// Amount bounds are enforced by the aggregate against its live remaining
// balance; the command validates only shape.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	orderID  kernel.UUID
	amount   decimal.Decimal
	method   order.PaymentMethod
	actorID  kernel.UUID
	notes    string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(
	tenantID kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method order.PaymentMethod,
	actorID kernel.UUID,
	notes string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		tenantID.Validate(),
		orderID.Validate(),
		method.Validate(),
		actorID.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.orderID = orderID
	cmd.amount = amount
	cmd.method = method
	cmd.actorID = actorID
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c RecordPaymentCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order the payment is for.
func (c RecordPaymentCommand) OrderID() kernel.UUID { return c.orderID }

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() decimal.Decimal { return c.amount }

// Method returns the payment method.
func (c RecordPaymentCommand) Method() order.PaymentMethod { return c.method }

// ActorID returns the user recording the payment.
func (c RecordPaymentCommand) ActorID() kernel.UUID { return c.actorID }

// Notes returns the optional payment notes.
func (c RecordPaymentCommand) Notes() string { return c.notes }
