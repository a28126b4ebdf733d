package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand records a rejection of the order's current workflow
// step, which cancels the order. A reason is mandatory.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	orderID    kernel.UUID
	approverID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject the current workflow step.
func NewRejectOrderCommand(
	tenantID kernel.UUID,
	orderID kernel.UUID,
	approverID kernel.UUID,
	reason string,
) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{guard: guard.NewConstructorGuard()}

	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("rejection reason")
	}
	if err := errors.Join(
		tenantID.Validate(),
		orderID.Validate(),
		approverID.Validate(),
		reasonErr,
	); err != nil {
		return RejectOrderCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.orderID = orderID
	cmd.approverID = approverID
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c RejectOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order under approval.
func (c RejectOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ApproverID returns the user rejecting the current step.
func (c RejectOrderCommand) ApproverID() kernel.UUID { return c.approverID }

// Reason returns the mandatory rejection reason.
func (c RejectOrderCommand) Reason() string { return c.reason }
