package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves orders whose due date has passed while a
// balance is still outstanding. Cancelled orders are never overdue.
type GetOverdueOrdersQuery struct {
	tenantID kernel.UUID
	now      time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates an overdue-orders query evaluated as of
// now.
func NewGetOverdueOrdersQuery(tenantID kernel.UUID, now time.Time) (GetOverdueOrdersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetOverdueOrdersQuery{}, err
	}
	return GetOverdueOrdersQuery{
		tenantID: tenantID,
		now:      now,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetOverdueOrdersQuery) TenantID() kernel.UUID { return q.tenantID }

// Now returns the instant dueness is evaluated against.
func (q GetOverdueOrdersQuery) Now() time.Time { return q.now }
