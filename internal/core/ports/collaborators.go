package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
)

// CustomerReader exposes the only customer capability this core consumes:
// existence lookups during order creation. Customer CRUD lives elsewhere.
type CustomerReader interface {
	// Exists reports whether the customer exists within the tenant.
	Exists(ctx context.Context, tenantID, customerID kernel.UUID) (bool, error)
}
