package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand requests removal of an order. Only orders in Draft or
// Cancelled may be deleted; the handler rejects everything else.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(tenantID, orderID kernel.UUID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		tenantID.Validate(),
		orderID.Validate(),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c DeleteOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
