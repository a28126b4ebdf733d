// Package bulkop contains the BulkOrderOperation record: a tracked batch
// job over a set of orders. The record only tracks progress; execution
// belongs to an external batch runner and never mutates Order aggregates
// from inside this package.
package bulkop

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// ErrOperationIsNotConstructed is returned when an Operation instance was
// not created through NewOperation or RestoreOperation.
var ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation or RestoreOperation")

// Type identifies what a bulk operation does to its target orders.
type Type int

const (
	TypeUnknown Type = iota
	TypeStatusUpdate
	TypeCancel
	TypePriorityUpdate
	TypeExport
)

// String returns the human-readable name of the operation type.
func (t Type) String() string {
	switch t {
	case TypeStatusUpdate:
		return "StatusUpdate"
	case TypeCancel:
		return "Cancel"
	case TypePriorityUpdate:
		return "PriorityUpdate"
	case TypeExport:
		return "Export"
	case TypeUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t < TypeStatusUpdate || t > TypeExport {
		return errs.NewValueIsInvalidErrorWithCause(
			"bulk operation type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

// ParseType converts an operation-type name back into a value.
func ParseType(name string) (Type, error) {
	for _, t := range []Type{TypeStatusUpdate, TypeCancel, TypePriorityUpdate, TypeExport} {
		if t.String() == name {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"bulk operation type", fmt.Errorf("%q is not a valid type", name))
}

// Status is the batch record's lifecycle state:
// Pending -> InProgress -> Completed | Failed.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusInProgress
	StatusCompleted
	StatusFailed
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	case StatusUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParseStatus converts a status name back into a value.
func ParseStatus(name string) (Status, error) {
	for _, s := range []Status{StatusPending, StatusInProgress, StatusCompleted, StatusFailed} {
		if s.String() == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"bulk operation status", fmt.Errorf("%q is not a valid status", name))
}

// Operation tracks one batch job over target orders. Progress counters and
// per-item errors are updated by the batch runner through the methods below.
type Operation struct {
	id             kernel.UUID
	tenantID       kernel.UUID
	opType         Type
	orderIDs       []kernel.UUID
	parameters     map[string]string
	status         Status
	processedCount int
	totalCount     int
	errors         []string
	createdAt      time.Time

	isConstructed bool
}

// NewOperation creates a pending batch record over the given target orders.
func NewOperation(
	id kernel.UUID,
	tenantID kernel.UUID,
	opType Type,
	orderIDs []kernel.UUID,
	parameters map[string]string,
	now time.Time,
) (*Operation, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), opType.Validate()); err != nil {
		return nil, err
	}
	if len(orderIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("target order ids")
	}
	for _, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	params := make(map[string]string, len(parameters))
	for k, v := range parameters {
		params[k] = v
	}

	return &Operation{
		id:            id,
		tenantID:      tenantID,
		opType:        opType,
		orderIDs:      append([]kernel.UUID(nil), orderIDs...),
		parameters:    params,
		status:        StatusPending,
		totalCount:    len(orderIDs),
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOperation reconstructs an Operation record from persisted state.
func RestoreOperation(
	id kernel.UUID,
	tenantID kernel.UUID,
	opType Type,
	orderIDs []kernel.UUID,
	parameters map[string]string,
	status Status,
	processedCount int,
	totalCount int,
	opErrors []string,
	createdAt time.Time,
) (*Operation, error) {
	op, err := NewOperation(id, tenantID, opType, orderIDs, parameters, createdAt)
	if err != nil {
		return nil, err
	}
	op.status = status
	op.processedCount = processedCount
	op.totalCount = totalCount
	op.errors = append([]string(nil), opErrors...)
	return op, nil
}

// Validate ensures the Operation was properly constructed.
func (op *Operation) Validate() error {
	if op == nil || !op.isConstructed {
		return ErrOperationIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (op *Operation) ID() kernel.UUID { return op.id }

// TenantID returns the owning tenant's identifier.
func (op *Operation) TenantID() kernel.UUID { return op.tenantID }

// Type returns what the operation does to its targets.
func (op *Operation) Type() Type { return op.opType }

// OrderIDs returns a copy of the target order identifiers.
func (op *Operation) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), op.orderIDs...)
}

// Parameters returns a copy of the operation parameters.
func (op *Operation) Parameters() map[string]string {
	params := make(map[string]string, len(op.parameters))
	for k, v := range op.parameters {
		params[k] = v
	}
	return params
}

// Status returns the record's lifecycle state.
func (op *Operation) Status() Status { return op.status }

// ProcessedCount returns how many targets have been handled so far.
func (op *Operation) ProcessedCount() int { return op.processedCount }

// TotalCount returns the number of target orders.
func (op *Operation) TotalCount() int { return op.totalCount }

// Errors returns a copy of the per-item error messages.
func (op *Operation) Errors() []string {
	return append([]string(nil), op.errors...)
}

// CreatedAt returns when the record was created.
func (op *Operation) CreatedAt() time.Time { return op.createdAt }

// Start moves the record from Pending to InProgress.
func (op *Operation) Start() error {
	if op.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"bulk operation", fmt.Errorf("cannot start operation in status %s", op.status))
	}
	op.status = StatusInProgress
	return nil
}

// RecordSuccess counts one successfully processed target.
func (op *Operation) RecordSuccess() {
	op.processedCount++
}

// RecordFailure counts one failed target and keeps its error message.
func (op *Operation) RecordFailure(message string) {
	op.processedCount++
	op.errors = append(op.errors, message)
}

// Finish resolves an in-progress record: Completed when every target
// processed cleanly, Failed when any error was recorded.
func (op *Operation) Finish() error {
	if op.status != StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"bulk operation", fmt.Errorf("cannot finish operation in status %s", op.status))
	}
	if len(op.errors) > 0 {
		op.status = StatusFailed
	} else {
		op.status = StatusCompleted
	}
	return nil
}
