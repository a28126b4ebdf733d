package queries

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a filtered, paginated page of order summaries.
// All filters are optional and combine with AND; the text search matches
// order numbers and notes.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	page     int
	pageSize int

	status        *order.Status
	paymentStatus *order.PaymentStatus
	priority      *order.Priority
	customerID    *kernel.UUID
	orderedFrom   *time.Time
	orderedTo     *time.Time
	search        string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query for a tenant. Page numbering
// starts at 1; a pageSize of 0 applies the default, and oversized requests
// are rejected rather than clamped.
func NewListOrdersQuery(tenantID kernel.UUID, page, pageSize int) (ListOrdersQuery, error) {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	var pageErr error
	if page < 1 {
		pageErr = errs.NewValueIsInvalidErrorWithCause(
			"page", fmt.Errorf("%d is not greater than 0", page))
	}
	var sizeErr error
	if pageSize < 1 || pageSize > maxPageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("page size", pageSize, 1, maxPageSize)
	}
	if err := errors.Join(tenantID.Validate(), pageErr, sizeErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		tenantID: tenantID,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q ListOrdersQuery) TenantID() kernel.UUID { return q.tenantID }

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int { return q.pageSize }

// Status returns the status filter, nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status { return q.status }

// PaymentStatus returns the payment-status filter, nil when unfiltered.
func (q ListOrdersQuery) PaymentStatus() *order.PaymentStatus { return q.paymentStatus }

// Priority returns the priority filter, nil when unfiltered.
func (q ListOrdersQuery) Priority() *order.Priority { return q.priority }

// CustomerID returns the customer filter, nil when unfiltered.
func (q ListOrdersQuery) CustomerID() *kernel.UUID { return q.customerID }

// OrderedFrom returns the inclusive lower bound on the order date.
func (q ListOrdersQuery) OrderedFrom() *time.Time { return q.orderedFrom }

// OrderedTo returns the exclusive upper bound on the order date.
func (q ListOrdersQuery) OrderedTo() *time.Time { return q.orderedTo }

// Search returns the free-text search term, empty when unfiltered.
func (q ListOrdersQuery) Search() string { return q.search }

// SetStatus filters the listing to one lifecycle status.
func (q *ListOrdersQuery) SetStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = &status
	return nil
}

// SetPaymentStatus filters the listing to one payment status.
func (q *ListOrdersQuery) SetPaymentStatus(status order.PaymentStatus) {
	q.paymentStatus = &status
}

// SetPriority filters the listing to one priority.
func (q *ListOrdersQuery) SetPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	q.priority = &priority
	return nil
}

// SetCustomerID filters the listing to one customer.
func (q *ListOrdersQuery) SetCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = &customerID
	return nil
}

// SetOrderedBetween bounds the listing by order date: from inclusive, to
// exclusive.
func (q *ListOrdersQuery) SetOrderedBetween(from, to time.Time) {
	q.orderedFrom = &from
	q.orderedTo = &to
}

// SetSearch filters the listing by a free-text term over order numbers and
// notes.
func (q *ListOrdersQuery) SetSearch(term string) {
	q.search = term
}

// ListOrdersQueryResponse is one page of order summaries plus the total
// match count across all pages.
type ListOrdersQueryResponse struct {
	Orders     []OrderSummary
	TotalCount int
	Page       int
	PageSize   int
}
