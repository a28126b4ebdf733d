package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetOrderMetricsQueryIsNotConstructed = errors.New(
	"GetOrderMetricsQuery must be created via NewGetOrderMetricsQuery constructor",
)

// GetOrderMetricsQuery computes order and revenue rollups for a tenant,
// optionally bounded by an order-date window.
type GetOrderMetricsQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	from     *time.Time
	to       *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderMetricsQuery creates a metrics query for a tenant.
func NewGetOrderMetricsQuery(tenantID kernel.UUID) (GetOrderMetricsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetOrderMetricsQuery{}, err
	}
	return GetOrderMetricsQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMetricsQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetOrderMetricsQuery) TenantID() kernel.UUID { return q.tenantID }

// From returns the inclusive lower bound on the order date, nil when unbounded.
func (q GetOrderMetricsQuery) From() *time.Time { return q.from }

// To returns the exclusive upper bound on the order date, nil when unbounded.
func (q GetOrderMetricsQuery) To() *time.Time { return q.to }

// SetWindow bounds the metrics by order date: from inclusive, to exclusive.
func (q *GetOrderMetricsQuery) SetWindow(from, to time.Time) {
	q.from = &from
	q.to = &to
}

// GetOrderMetricsQueryResponse is the tenant's order and revenue rollup.
// Revenue figures exclude cancelled orders; outstanding is what remains
// collectible on the revenue base.
type GetOrderMetricsQueryResponse struct {
	TotalOrders       int
	OrdersByStatus    map[string]int
	TotalRevenue      decimal.Decimal
	TotalCollected    decimal.Decimal
	TotalOutstanding  decimal.Decimal
	AverageOrderValue decimal.Decimal
}
