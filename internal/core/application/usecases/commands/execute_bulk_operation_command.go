package commands

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrExecuteBulkOperationCommandIsNotConstructed = errors.New(
	"ExecuteBulkOperationCommand must be created via NewExecuteBulkOperationCommand constructor",
)

// ExecuteBulkOperationCommand runs one batch operation over a set of
// orders. The operation kind decides which parameter setter is mandatory:
// status updates need SetTargetStatus, priority updates SetTargetPriority.
type ExecuteBulkOperationCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	opType   bulkop.Type
	orderIDs []kernel.UUID
	actorID  kernel.UUID

	targetStatus   order.Status
	targetPriority order.Priority
	reason         string

	guard guard.ConstructorGuard
}

// NewExecuteBulkOperationCommand creates a command to run a batch
// operation over the given orders.
func NewExecuteBulkOperationCommand(
	tenantID kernel.UUID,
	opType bulkop.Type,
	orderIDs []kernel.UUID,
	actorID kernel.UUID,
) (ExecuteBulkOperationCommand, error) {
	cmd := ExecuteBulkOperationCommand{guard: guard.NewConstructorGuard()}

	var idsErr error
	if len(orderIDs) == 0 {
		idsErr = errs.NewValueIsRequiredError("target order ids")
	}
	for _, orderID := range orderIDs {
		idsErr = errors.Join(idsErr, orderID.Validate())
	}
	if err := errors.Join(
		tenantID.Validate(),
		opType.Validate(),
		actorID.Validate(),
		idsErr,
	); err != nil {
		return ExecuteBulkOperationCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.opType = opType
	cmd.orderIDs = orderIDs
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor and
// that the parameters required by the operation kind are present.
func (c ExecuteBulkOperationCommand) Validate() error {
	if err := c.guard.Validate(ErrExecuteBulkOperationCommandIsNotConstructed); err != nil {
		return err
	}
	switch c.opType {
	case bulkop.TypeStatusUpdate:
		return c.targetStatus.Validate()
	case bulkop.TypePriorityUpdate:
		return c.targetPriority.Validate()
	case bulkop.TypeCancel, bulkop.TypeExport, bulkop.TypeUnknown:
		return nil
	}
	return nil
}

// TenantID returns the tenant scope of the operation.
func (c ExecuteBulkOperationCommand) TenantID() kernel.UUID { return c.tenantID }

// Type returns what the operation does to its targets.
func (c ExecuteBulkOperationCommand) Type() bulkop.Type { return c.opType }

// OrderIDs returns the target order identifiers.
func (c ExecuteBulkOperationCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// ActorID returns the user running the batch.
func (c ExecuteBulkOperationCommand) ActorID() kernel.UUID { return c.actorID }

// TargetStatus returns the status applied by a status-update batch.
func (c ExecuteBulkOperationCommand) TargetStatus() order.Status { return c.targetStatus }

// TargetPriority returns the priority applied by a priority-update batch.
func (c ExecuteBulkOperationCommand) TargetPriority() order.Priority { return c.targetPriority }

// Reason returns the free-text reason recorded on each touched order.
func (c ExecuteBulkOperationCommand) Reason() string { return c.reason }

// SetTargetStatus sets the status a status-update batch applies.
func (c *ExecuteBulkOperationCommand) SetTargetStatus(status order.Status) {
	c.targetStatus = status
}

// SetTargetPriority sets the priority a priority-update batch applies.
func (c *ExecuteBulkOperationCommand) SetTargetPriority(priority order.Priority) {
	c.targetPriority = priority
}

// SetReason sets the free-text reason recorded on each touched order.
func (c *ExecuteBulkOperationCommand) SetReason(reason string) {
	c.reason = reason
}

// parameters renders the typed command parameters into the string map the
// batch record persists for audit.
func (c ExecuteBulkOperationCommand) parameters() map[string]string {
	params := map[string]string{}
	switch c.opType {
	case bulkop.TypeStatusUpdate:
		params["status"] = c.targetStatus.String()
	case bulkop.TypePriorityUpdate:
		params["priority"] = c.targetPriority.String()
	case bulkop.TypeCancel, bulkop.TypeExport, bulkop.TypeUnknown:
	}
	if c.reason != "" {
		params["reason"] = c.reason
	}
	return params
}

// apply mutates one target order according to the operation kind.
func (c ExecuteBulkOperationCommand) apply(target *order.Order, now time.Time) error {
	switch c.opType {
	case bulkop.TypeStatusUpdate:
		return target.ChangeStatus(c.targetStatus, c.actorID, c.reason, "", now)
	case bulkop.TypeCancel:
		return target.ChangeStatus(order.StatusCancelled, c.actorID, c.reason, "", now)
	case bulkop.TypePriorityUpdate:
		priority := c.targetPriority
		return target.Update(order.UpdateParams{Priority: &priority}, now)
	case bulkop.TypeExport:
		// Export reads targets without mutating them.
		return nil
	case bulkop.TypeUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"bulk operation type", fmt.Errorf("%d is not executable", c.opType))
}
