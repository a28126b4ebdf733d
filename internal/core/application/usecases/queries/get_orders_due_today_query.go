package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetOrdersDueTodayQueryIsNotConstructed = errors.New(
	"GetOrdersDueTodayQuery must be created via NewGetOrdersDueTodayQuery constructor",
)

// GetOrdersDueTodayQuery retrieves unpaid orders whose due date falls on
// the calendar day containing now, in now's location.
type GetOrdersDueTodayQuery struct {
	tenantID kernel.UUID
	now      time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersDueTodayQuery creates a due-today query evaluated as of now.
func NewGetOrdersDueTodayQuery(tenantID kernel.UUID, now time.Time) (GetOrdersDueTodayQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetOrdersDueTodayQuery{}, err
	}
	return GetOrdersDueTodayQuery{
		tenantID: tenantID,
		now:      now,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersDueTodayQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersDueTodayQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetOrdersDueTodayQuery) TenantID() kernel.UUID { return q.tenantID }

// Now returns the instant whose calendar day bounds the query.
func (q GetOrdersDueTodayQuery) Now() time.Time { return q.now }
