package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand records an approval decision on the order's current
// workflow step. Approving the final step moves the order to Approved.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	orderID    kernel.UUID
	approverID kernel.UUID
	comments   string

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve the current workflow
// step. Comments are optional.
func NewApproveOrderCommand(
	tenantID kernel.UUID,
	orderID kernel.UUID,
	approverID kernel.UUID,
	comments string,
) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		tenantID.Validate(),
		orderID.Validate(),
		approverID.Validate(),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.orderID = orderID
	cmd.approverID = approverID
	cmd.comments = comments
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// TenantID returns the tenant scope of the operation.
func (c ApproveOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order under approval.
func (c ApproveOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ApproverID returns the user approving the current step.
func (c ApproveOrderCommand) ApproverID() kernel.UUID { return c.approverID }

// Comments returns the optional approval comments.
func (c ApproveOrderCommand) Comments() string { return c.comments }
