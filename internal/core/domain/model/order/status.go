package order

import (
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──┬──> PendingApproval ──> Approved ──┐
//	        │                                   │
//	        └──────────> Confirmed <────────────┘
//	                         │
//	                    InProduction <──> OnHold
//	                         │
//	                    ReadyToShip ──> Shipped ──> Delivered ──> Completed
//	                                       │            │
//	                                       └── Returned ┴──> Cancelled
//
// Completed and Cancelled are terminal: no outgoing transitions exist.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status of a newly created order.
	StatusDraft

	// StatusPendingApproval indicates the order crossed the approval
	// threshold and is waiting for its approval workflow to resolve.
	StatusPendingApproval

	// StatusApproved indicates the approval workflow completed successfully.
	StatusApproved

	// StatusConfirmed indicates the order has been accepted for fulfillment.
	StatusConfirmed

	// StatusInProduction indicates the order is being prepared.
	StatusInProduction

	// StatusReadyToShip indicates preparation finished and the order awaits shipment.
	StatusReadyToShip

	// StatusShipped indicates the order left the warehouse.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	StatusDelivered

	// StatusCompleted is a terminal state for successfully closed orders.
	StatusCompleted

	// StatusCancelled is a terminal state for abandoned or rejected orders.
	StatusCancelled

	// StatusOnHold indicates fulfillment is temporarily paused.
	StatusOnHold

	// StatusReturned indicates the customer sent the order back.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusDraft:           "Draft",
		StatusPendingApproval: "PendingApproval",
		StatusApproved:        "Approved",
		StatusConfirmed:       "Confirmed",
		StatusInProduction:    "InProduction",
		StatusReadyToShip:     "ReadyToShip",
		StatusShipped:         "Shipped",
		StatusDelivered:       "Delivered",
		StatusCompleted:       "Completed",
		StatusCancelled:       "Cancelled",
		StatusOnHold:          "OnHold",
		StatusReturned:        "Returned",
	}
}

// AllStatuses returns every valid order status.
// Useful for exhaustive iteration in queries and tests.
func AllStatuses() []Status {
	return []Status{
		StatusDraft, StatusPendingApproval, StatusApproved, StatusConfirmed,
		StatusInProduction, StatusReadyToShip, StatusShipped, StatusDelivered,
		StatusCompleted, StatusCancelled, StatusOnHold, StatusReturned,
	}
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name back into a Status value.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusReturned {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// allowedTransitions returns the statuses reachable from s.
// The switch is exhaustive over all statuses so that adding a status
// forces this table to be revisited.
func (s Status) allowedTransitions() []Status {
	switch s {
	case StatusDraft:
		return []Status{StatusPendingApproval, StatusConfirmed, StatusCancelled}
	case StatusPendingApproval:
		return []Status{StatusApproved, StatusCancelled}
	case StatusApproved:
		return []Status{StatusConfirmed, StatusCancelled}
	case StatusConfirmed:
		return []Status{StatusInProduction, StatusCancelled}
	case StatusInProduction:
		return []Status{StatusReadyToShip, StatusOnHold}
	case StatusReadyToShip:
		return []Status{StatusShipped, StatusOnHold}
	case StatusShipped:
		return []Status{StatusDelivered, StatusReturned}
	case StatusDelivered:
		return []Status{StatusCompleted, StatusReturned}
	case StatusOnHold:
		return []Status{StatusInProduction, StatusCancelled}
	case StatusReturned:
		return []Status{StatusCancelled}
	case StatusCompleted, StatusCancelled:
		return nil
	case StatusUnknown:
		return nil
	}
	return nil
}

// CanTransitionTo reports whether the transition s -> next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range s.allowedTransitions() {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition s -> next and returns the new status.
//
// Returns:
//   - (next, nil) when the transition is listed in the state machine
//   - (0, error) for any unlisted pair, including transitions out of the
//     terminal statuses Completed and Cancelled
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}
	return next, nil
}

// IsTerminal reports whether no transitions leave this status.
func (s Status) IsTerminal() bool {
	return len(s.allowedTransitions()) == 0 && s.Validate() == nil
}

// Priority classifies the urgency of an order. Informational only:
// priority never influences state transitions.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	case PriorityUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParsePriority converts a priority name back into a Priority value.
func ParsePriority(name string) (Priority, error) {
	for _, priority := range []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent} {
		if priority.String() == name {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority", fmt.Errorf("%q is not a valid priority", name))
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p < PriorityLow || p > PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// PaymentStatus tracks how much of the order total has been collected.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending means no payment has been recorded yet.
	PaymentStatusPending

	// PaymentStatusPartial means some, but not all, of the total is paid.
	PaymentStatusPartial

	// PaymentStatusPaid means the outstanding balance reached zero.
	PaymentStatusPaid
)

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusPartial:
		return "Partial"
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParsePaymentStatus converts a payment-status name back into a value.
func ParsePaymentStatus(name string) (PaymentStatus, error) {
	for _, status := range []PaymentStatus{PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid} {
		if status.String() == name {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status", fmt.Errorf("%q is not a valid payment status", name))
}

// StatusHistoryEntry records a single applied status transition.
// The history is append-only and ordered by application time.
type StatusHistoryEntry struct {
	Status    Status
	ChangedBy kernel.UUID
	Reason    string
	Notes     string
	Timestamp time.Time
}
