package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a status transition on an order.
// The transition is validated against the state machine by the aggregate;
// the command only validates its own inputs.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	tenantID  kernel.UUID
	orderID   kernel.UUID
	newStatus order.Status
	actorID   kernel.UUID
	reason    string
	notes     string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order to
// newStatus. Reason and notes are optional free text recorded in the
// status history.
func NewChangeOrderStatusCommand(
	tenantID kernel.UUID,
	orderID kernel.UUID,
	newStatus order.Status,
	actorID kernel.UUID,
	reason string,
	notes string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		tenantID.Validate(),
		orderID.Validate(),
		newStatus.Validate(),
		actorID.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.orderID = orderID
	cmd.newStatus = newStatus
	cmd.actorID = actorID
	cmd.reason = reason
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c ChangeOrderStatusCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the requested target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// ActorID returns the user applying the transition.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the optional transition reason.
func (c ChangeOrderStatusCommand) Reason() string { return c.reason }

// Notes returns the optional transition notes.
func (c ChangeOrderStatusCommand) Notes() string { return c.notes }
