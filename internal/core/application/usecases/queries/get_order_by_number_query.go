package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves one order in full detail by its
// tenant-scoped order number.
type GetOrderByNumberQuery struct {
	tenantID    kernel.UUID
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for a single order by number.
func NewGetOrderByNumberQuery(tenantID kernel.UUID, orderNumber string) (GetOrderByNumberQuery, error) {
	var numberErr error
	if orderNumber == "" {
		numberErr = errs.NewValueIsRequiredError("order number")
	}
	if err := errors.Join(tenantID.Validate(), numberErr); err != nil {
		return GetOrderByNumberQuery{}, err
	}
	return GetOrderByNumberQuery{
		tenantID:    tenantID,
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetOrderByNumberQuery) TenantID() kernel.UUID { return q.tenantID }

// OrderNumber returns the order number to look up.
func (q GetOrderByNumberQuery) OrderNumber() string { return q.orderNumber }
