package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// expectedDeliveryLead is applied when an order enters Shipped without an
// expected delivery date already set.
const expectedDeliveryLead = 72 * time.Hour

// Order is the aggregate root of the order lifecycle. It owns its line
// items, status history, payment terms, payment records, and the optional
// approval workflow and recurrence configuration; none of those are shared
// with or referenced by any other aggregate.
//
// Money invariants maintained by every mutation:
//   - totalAmount = subtotal − discountAmount + taxAmount + shippingAmount
//   - remainingAmount = totalAmount − paidAmount, never negative
//   - paidAmount never exceeds totalAmount
//
// Status mutations go exclusively through ChangeStatus, which enforces the
// transition table in Status and appends to the append-only history.
//
// The version field supports optimistic concurrency: repositories compare
// and increment it on every update, so two interleaved read-modify-write
// cycles against the same order cannot both commit.
type Order struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	customerID  kernel.UUID
	userID      kernel.UUID
	orderNumber string

	items          []Item
	subtotal       decimal.Decimal
	discountAmount decimal.Decimal
	taxAmount      decimal.Decimal
	shippingAmount decimal.Decimal
	totalAmount    decimal.Decimal

	status        Status
	priority      Priority
	statusHistory []StatusHistoryEntry

	paymentStatus   PaymentStatus
	paymentTerms    PaymentTerms
	dueDate         time.Time
	paidAmount      decimal.Decimal
	remainingAmount decimal.Decimal
	payments        []PaymentRecord

	approval  *ApprovalWorkflow
	recurring *RecurringConfig

	orderDate            time.Time
	expectedDeliveryDate *time.Time
	actualDeliveryDate   *time.Time
	notes                string
	shippingAddress      string

	version       int
	isConstructed bool
}

// NewOrderParams carries the caller-supplied inputs for order creation.
// Items must be constructed via NewItem. PaymentTerms may be zero-valued,
// in which case the net-30 default applies. Recurring may be nil.
type NewOrderParams struct {
	ID              kernel.UUID
	TenantID        kernel.UUID
	CustomerID      kernel.UUID
	UserID          kernel.UUID
	OrderNumber     string
	Items           []Item
	ShippingAmount  decimal.Decimal
	PaymentTerms    PaymentTerms
	Priority        Priority
	Recurring       *RecurringConfig
	Notes           string
	ShippingAddress string
	Now             time.Time
}

// NewOrder creates a validated Order and runs it through the creation-time
// engines: totals are computed from the items, the due date is resolved
// from the payment terms, and the approval check is applied — an order
// whose total crosses the approval threshold starts in PendingApproval
// with the two-step workflow attached, every other order starts in Draft.
//
// The initial status is recorded as the first history entry.
func NewOrder(p NewOrderParams) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setIdentity(p.ID, p.TenantID, p.CustomerID, p.UserID),
		o.setOrderNumber(p.OrderNumber),
		o.setPriority(p.Priority),
	); err != nil {
		return nil, err
	}

	terms := p.PaymentTerms
	if terms.Type == PaymentTermsUnknown {
		terms = DefaultPaymentTerms()
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if p.Recurring != nil {
		if err := p.Recurring.Validate(); err != nil {
			return nil, err
		}
		recurring := *p.Recurring
		o.recurring = &recurring
	}

	if err := o.replaceItems(p.Items, p.ShippingAmount); err != nil {
		return nil, err
	}

	o.paymentTerms = terms
	o.dueDate = ResolveDueDate(terms, p.Now)
	o.paymentStatus = PaymentStatusPending
	o.paidAmount = decimal.Zero
	o.remainingAmount = o.totalAmount
	o.orderDate = p.Now
	o.notes = p.Notes
	o.shippingAddress = p.ShippingAddress

	o.status = StatusDraft
	reason := "Order created"
	if RequiresApproval(o.totalAmount) {
		o.status = StatusPendingApproval
		o.approval = NewApprovalWorkflow()
		reason = "Order created, approval required"
	}
	o.appendHistory(o.status, p.UserID, reason, "", p.Now)

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call this when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// TenantID returns the owning tenant's identifier.
func (o *Order) TenantID() kernel.UUID { return o.tenantID }

// CustomerID returns the customer the order belongs to.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// UserID returns the user who created the order.
func (o *Order) UserID() kernel.UUID { return o.userID }

// OrderNumber returns the tenant-scoped sequential order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of item subtotals before discounts and taxes.
func (o *Order) Subtotal() decimal.Decimal { return o.subtotal }

// DiscountAmount returns the sum of item-level discounts.
func (o *Order) DiscountAmount() decimal.Decimal { return o.discountAmount }

// TaxAmount returns the sum of item-level taxes.
func (o *Order) TaxAmount() decimal.Decimal { return o.taxAmount }

// ShippingAmount returns the shipping charge, which is never item-discounted.
func (o *Order) ShippingAmount() decimal.Decimal { return o.shippingAmount }

// TotalAmount returns subtotal − discounts + taxes + shipping.
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Priority returns the informational priority classification.
func (o *Order) Priority() Priority { return o.priority }

// StatusHistory returns a copy of the append-only transition history.
func (o *Order) StatusHistory() []StatusHistoryEntry {
	history := make([]StatusHistoryEntry, len(o.statusHistory))
	copy(history, o.statusHistory)
	return history
}

// PaymentStatus returns the payment progress classification.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// PaymentTerms returns the order's payment terms, including any installment
// schedule with its current allocation state.
func (o *Order) PaymentTerms() PaymentTerms {
	terms := o.paymentTerms
	terms.Installments = make([]Installment, len(o.paymentTerms.Installments))
	copy(terms.Installments, o.paymentTerms.Installments)
	return terms
}

// DueDate returns when the outstanding balance falls due.
func (o *Order) DueDate() time.Time { return o.dueDate }

// PaidAmount returns the cumulative amount collected so far.
func (o *Order) PaidAmount() decimal.Decimal { return o.paidAmount }

// RemainingAmount returns the outstanding balance.
func (o *Order) RemainingAmount() decimal.Decimal { return o.remainingAmount }

// Payments returns a copy of the recorded payment history.
func (o *Order) Payments() []PaymentRecord {
	payments := make([]PaymentRecord, len(o.payments))
	copy(payments, o.payments)
	return payments
}

// ApprovalWorkflow returns the attached approval workflow, or nil when the
// order never required approval.
func (o *Order) ApprovalWorkflow() *ApprovalWorkflow {
	if o.approval == nil {
		return nil
	}
	workflow := *o.approval
	workflow.Steps = make([]ApprovalStep, len(o.approval.Steps))
	copy(workflow.Steps, o.approval.Steps)
	return &workflow
}

// Recurring returns the recurrence configuration, or nil for one-off orders.
func (o *Order) Recurring() *RecurringConfig {
	if o.recurring == nil {
		return nil
	}
	recurring := *o.recurring
	return &recurring
}

// OrderDate returns when the order was created.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// ExpectedDeliveryDate returns the projected delivery date, if set.
func (o *Order) ExpectedDeliveryDate() *time.Time { return o.expectedDeliveryDate }

// ActualDeliveryDate returns the recorded delivery date, if delivered.
func (o *Order) ActualDeliveryDate() *time.Time { return o.actualDeliveryDate }

// Notes returns the free-text order notes.
func (o *Order) Notes() string { return o.notes }

// ShippingAddress returns the free-text shipping address.
func (o *Order) ShippingAddress() string { return o.shippingAddress }

// Version returns the optimistic-concurrency version counter.
func (o *Order) Version() int { return o.version }

// CanModify reports whether updateable fields may still change.
// Modification is only permitted while the order is in Draft or
// PendingApproval.
func (o *Order) CanModify() bool {
	return o.status == StatusDraft || o.status == StatusPendingApproval
}

// CanDelete reports whether the order may be deleted.
// Deletion is only permitted while the order is in Draft or Cancelled.
func (o *Order) CanDelete() bool {
	return o.status == StatusDraft || o.status == StatusCancelled
}

// ChangeStatus applies a status transition, appending a history entry with
// the acting user, optional reason and notes, and the supplied timestamp.
//
// State-entry side effects:
//   - entering Shipped sets the expected delivery date to now + 3 days,
//     unless one is already set
//   - entering Delivered records the actual delivery date
//
// Returns a value-is-invalid error for any transition not listed in the
// state machine; the order is left unchanged in that case.
func (o *Order) ChangeStatus(next Status, actor kernel.UUID, reason, notes string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendHistory(newStatus, actor, reason, notes, now)

	switch newStatus {
	case StatusShipped:
		if o.expectedDeliveryDate == nil {
			expected := now.Add(expectedDeliveryLead)
			o.expectedDeliveryDate = &expected
		}
	case StatusDelivered:
		delivered := now
		o.actualDeliveryDate = &delivered
	case StatusUnknown, StatusDraft, StatusPendingApproval, StatusApproved,
		StatusConfirmed, StatusInProduction, StatusReadyToShip,
		StatusCompleted, StatusCancelled, StatusOnHold, StatusReturned:
		// No entry side effects.
	}

	return nil
}

// UpdateParams carries the fields that may change while an order is still
// modifiable. Nil pointer fields are left untouched.
type UpdateParams struct {
	Items           []Item
	ShippingAmount  *decimal.Decimal
	PaymentTerms    *PaymentTerms
	Priority        *Priority
	Notes           *string
	ShippingAddress *string
}

// Update applies the supplied changes. Only orders in Draft or
// PendingApproval may change; any item or shipping change recomputes the
// order totals, and a payment-terms change re-resolves the due date
// against the supplied timestamp.
func (o *Order) Update(p UpdateParams, now time.Time) error {
	if !o.CanModify() {
		return errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("order in status %s cannot be modified", o.status))
	}

	if p.Items != nil || p.ShippingAmount != nil {
		items := o.items
		if p.Items != nil {
			items = p.Items
		}
		shipping := o.shippingAmount
		if p.ShippingAmount != nil {
			shipping = *p.ShippingAmount
		}
		if err := o.replaceItems(items, shipping); err != nil {
			return err
		}
		o.remainingAmount = o.totalAmount.Sub(o.paidAmount)
	}

	if p.PaymentTerms != nil {
		if err := p.PaymentTerms.Validate(); err != nil {
			return err
		}
		o.paymentTerms = *p.PaymentTerms
		o.dueDate = ResolveDueDate(o.paymentTerms, now)
	}

	if p.Priority != nil {
		if err := o.setPriority(*p.Priority); err != nil {
			return err
		}
	}
	if p.Notes != nil {
		o.notes = *p.Notes
	}
	if p.ShippingAddress != nil {
		o.shippingAddress = *p.ShippingAddress
	}

	return nil
}

// appendHistory adds one entry to the append-only status history.
func (o *Order) appendHistory(status Status, actor kernel.UUID, reason, notes string, now time.Time) {
	o.statusHistory = append(o.statusHistory, StatusHistoryEntry{
		Status:    status,
		ChangedBy: actor,
		Reason:    reason,
		Notes:     notes,
		Timestamp: now,
	})
}

// replaceItems swaps the line items and shipping charge and recomputes all
// order-level money fields from them.
func (o *Order) replaceItems(items []Item, shippingAmount decimal.Decimal) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	if shippingAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping amount", fmt.Errorf("%s is negative", shippingAmount))
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)

	totals := CalculateTotals(o.items)
	o.subtotal = totals.Subtotal
	o.discountAmount = totals.DiscountAmount
	o.taxAmount = totals.TaxAmount
	o.shippingAmount = shippingAmount
	o.totalAmount = totals.TotalAmount.Add(shippingAmount)
	return nil
}

func (o *Order) setIdentity(id, tenantID, customerID, userID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		customerID.Validate(),
		userID.Validate(),
	); err != nil {
		return err
	}
	o.id = id
	o.tenantID = tenantID
	o.customerID = customerID
	o.userID = userID
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if priority == PriorityUnknown {
		priority = PriorityNormal
	}
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

// RestoreOrderParams carries the full persisted state of an order for
// rehydration from storage. No creation-time engines run on restore.
type RestoreOrderParams struct {
	ID                   kernel.UUID
	TenantID             kernel.UUID
	CustomerID           kernel.UUID
	UserID               kernel.UUID
	OrderNumber          string
	Items                []Item
	Subtotal             decimal.Decimal
	DiscountAmount       decimal.Decimal
	TaxAmount            decimal.Decimal
	ShippingAmount       decimal.Decimal
	TotalAmount          decimal.Decimal
	Status               Status
	Priority             Priority
	StatusHistory        []StatusHistoryEntry
	PaymentStatus        PaymentStatus
	PaymentTerms         PaymentTerms
	DueDate              time.Time
	PaidAmount           decimal.Decimal
	RemainingAmount      decimal.Decimal
	Payments             []PaymentRecord
	Approval             *ApprovalWorkflow
	Recurring            *RecurringConfig
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	Notes                string
	ShippingAddress      string
	Version              int
}

// RestoreOrder reconstructs an Order aggregate from persisted state.
// Identity fields and the status are validated; everything else is taken
// as stored, since it was validated when first written.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setIdentity(p.ID, p.TenantID, p.CustomerID, p.UserID),
		o.setOrderNumber(p.OrderNumber),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.items = p.Items
	o.subtotal = p.Subtotal
	o.discountAmount = p.DiscountAmount
	o.taxAmount = p.TaxAmount
	o.shippingAmount = p.ShippingAmount
	o.totalAmount = p.TotalAmount
	o.status = p.Status
	o.priority = p.Priority
	o.statusHistory = p.StatusHistory
	o.paymentStatus = p.PaymentStatus
	o.paymentTerms = p.PaymentTerms
	o.dueDate = p.DueDate
	o.paidAmount = p.PaidAmount
	o.remainingAmount = p.RemainingAmount
	o.payments = p.Payments
	o.approval = p.Approval
	o.recurring = p.Recurring
	o.orderDate = p.OrderDate
	o.expectedDeliveryDate = p.ExpectedDeliveryDate
	o.actualDeliveryDate = p.ActualDeliveryDate
	o.notes = p.Notes
	o.shippingAddress = p.ShippingAddress
	o.version = p.Version

	return o, nil
}
