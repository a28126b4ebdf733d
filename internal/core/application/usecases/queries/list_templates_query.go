package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrListTemplatesQueryIsNotConstructed = errors.New(
	"ListTemplatesQuery must be created via NewListTemplatesQuery constructor",
)

// ListTemplatesQuery retrieves the tenant's template catalog.
type ListTemplatesQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTemplatesQuery creates a template catalog query.
func NewListTemplatesQuery(tenantID kernel.UUID) (ListTemplatesQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListTemplatesQuery{}, err
	}
	return ListTemplatesQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTemplatesQuery) Validate() error {
	return q.guard.Validate(ErrListTemplatesQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q ListTemplatesQuery) TenantID() kernel.UUID { return q.tenantID }
