package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// Approval thresholds in currency units. Orders above managerApprovalLimit
// require the two-step workflow; the second step exists to cover orders
// above ownerApprovalLimit. Tenant-level configuration of these values is
// a deliberate non-feature for now.
var (
	managerApprovalLimit = decimal.NewFromInt(10000)
	ownerApprovalLimit   = decimal.NewFromInt(50000)
)

// ApproverRole identifies who must sign off an approval step.
type ApproverRole int

const (
	ApproverRoleUnknown ApproverRole = iota
	ApproverRoleManager
	ApproverRoleOwner
)

// String returns the human-readable name of the role.
func (r ApproverRole) String() string {
	switch r {
	case ApproverRoleManager:
		return "Manager"
	case ApproverRoleOwner:
		return "Owner"
	case ApproverRoleUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParseApproverRole converts a role name back into a value.
func ParseApproverRole(name string) (ApproverRole, error) {
	for _, r := range []ApproverRole{ApproverRoleManager, ApproverRoleOwner} {
		if r.String() == name {
			return r, nil
		}
	}
	return ApproverRoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"approver role", fmt.Errorf("%q is not a valid approver role", name))
}

// ApprovalStatus is the resolution state of a workflow or a single step.
type ApprovalStatus int

const (
	ApprovalUnknown ApprovalStatus = iota
	ApprovalPending
	ApprovalApproved
	ApprovalRejected
)

// String returns the human-readable name of the approval status.
func (s ApprovalStatus) String() string {
	switch s {
	case ApprovalPending:
		return "Pending"
	case ApprovalApproved:
		return "Approved"
	case ApprovalRejected:
		return "Rejected"
	case ApprovalUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParseApprovalStatus converts an approval-status name back into a value.
func ParseApprovalStatus(name string) (ApprovalStatus, error) {
	for _, s := range []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected} {
		if s.String() == name {
			return s, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidErrorWithCause(
		"approval status", fmt.Errorf("%q is not a valid approval status", name))
}

// ApprovalStep is one sequential sign-off in the workflow.
type ApprovalStep struct {
	Step           int
	Role           ApproverRole
	RequiredAmount decimal.Decimal
	Status         ApprovalStatus
	ApproverID     *kernel.UUID
	Comments       string
	DecidedAt      *time.Time
}

// ApprovalWorkflow is a sequential, role-gated sign-off chain attached to
// high-value orders. Steps resolve strictly in order; the workflow itself
// resolves when the last step does, or immediately on any rejection.
type ApprovalWorkflow struct {
	Status      ApprovalStatus
	CurrentStep int
	TotalSteps  int
	Steps       []ApprovalStep
}

// RequiresApproval reports whether an order with the given total must go
// through the approval workflow before confirmation.
func RequiresApproval(totalAmount decimal.Decimal) bool {
	return totalAmount.GreaterThan(managerApprovalLimit)
}

// NewApprovalWorkflow builds the standard two-step workflow:
// step 1 signed by a manager, step 2 by the owner.
func NewApprovalWorkflow() *ApprovalWorkflow {
	return &ApprovalWorkflow{
		Status:      ApprovalPending,
		CurrentStep: 1,
		TotalSteps:  2,
		Steps: []ApprovalStep{
			{Step: 1, Role: ApproverRoleManager, RequiredAmount: managerApprovalLimit, Status: ApprovalPending},
			{Step: 2, Role: ApproverRoleOwner, RequiredAmount: ownerApprovalLimit, Status: ApprovalPending},
		},
	}
}

// approveStep marks the current step approved and advances the workflow.
// Returns true when the approved step was the last one, i.e. the workflow
// is now resolved.
func (w *ApprovalWorkflow) approveStep(approverID kernel.UUID, comments string, now time.Time) (bool, error) {
	if w.Status != ApprovalPending {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"approval workflow",
			fmt.Errorf("workflow is already %s", w.Status))
	}

	step := &w.Steps[w.CurrentStep-1]
	step.Status = ApprovalApproved
	step.ApproverID = &approverID
	step.Comments = comments
	step.DecidedAt = &now

	if w.CurrentStep == w.TotalSteps {
		w.Status = ApprovalApproved
		return true, nil
	}
	w.CurrentStep++
	return false, nil
}

// Approve records a sign-off on the current approval step.
//
// Requires an attached workflow that is still pending and an order still
// in PendingApproval; calling Approve on an order without a workflow,
// whose workflow already resolved, or that has left PendingApproval (e.g.
// was cancelled while awaiting sign-off) fails without changing the order.
// Approving a non-final step advances the workflow and leaves the order in
// PendingApproval; approving the final step resolves the workflow and
// transitions the order to Approved.
func (o *Order) Approve(approverID kernel.UUID, comments string, now time.Time) error {
	if err := approverID.Validate(); err != nil {
		return err
	}
	if o.approval == nil {
		return errs.NewValueIsRequiredError("approval workflow")
	}
	if o.approval.Status == ApprovalPending && o.status != StatusPendingApproval {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("cannot approve order in status %s", o.status))
	}

	final, err := o.approval.approveStep(approverID, comments, now)
	if err != nil {
		return err
	}
	if final {
		return o.ChangeStatus(StatusApproved, approverID, "Order approved", "", now)
	}
	return nil
}

// Reject records a rejection on the current approval step. The reason is
// required, and the order must still be in PendingApproval. Rejection
// resolves the workflow and cancels the order with the supplied reason.
func (o *Order) Reject(approverID kernel.UUID, reason string, now time.Time) error {
	if err := approverID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if o.approval == nil {
		return errs.NewValueIsRequiredError("approval workflow")
	}
	if o.approval.Status == ApprovalPending && o.status != StatusPendingApproval {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("cannot reject order in status %s", o.status))
	}

	if err := o.approval.rejectStep(approverID, reason, now); err != nil {
		return err
	}
	return o.ChangeStatus(StatusCancelled, approverID, reason, "", now)
}

// rejectStep marks the current step rejected and resolves the workflow.
func (w *ApprovalWorkflow) rejectStep(approverID kernel.UUID, reason string, now time.Time) error {
	if w.Status != ApprovalPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"approval workflow",
			fmt.Errorf("workflow is already %s", w.Status))
	}

	step := &w.Steps[w.CurrentStep-1]
	step.Status = ApprovalRejected
	step.ApproverID = &approverID
	step.Comments = reason
	step.DecidedAt = &now

	w.Status = ApprovalRejected
	return nil
}
