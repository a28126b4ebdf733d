package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetPendingApprovalOrdersQueryIsNotConstructed = errors.New(
	"GetPendingApprovalOrdersQuery must be created via NewGetPendingApprovalOrdersQuery constructor",
)

// GetPendingApprovalOrdersQuery retrieves orders waiting on their approval
// workflow, for an approver's work queue.
type GetPendingApprovalOrdersQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingApprovalOrdersQuery creates a pending-approval query.
func NewGetPendingApprovalOrdersQuery(tenantID kernel.UUID) (GetPendingApprovalOrdersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetPendingApprovalOrdersQuery{}, err
	}
	return GetPendingApprovalOrdersQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingApprovalOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingApprovalOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetPendingApprovalOrdersQuery) TenantID() kernel.UUID { return q.tenantID }
