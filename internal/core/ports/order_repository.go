// Package ports defines repository and collaborator interfaces for the
// order lifecycle core. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability. All reads and writes are implicitly scoped by tenant.
package ports

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update performs an optimistic-concurrency check: it compares the
// aggregate's version against the stored row and increments it on success.
// A mismatch surfaces as errs.VersionIsInvalidError so callers can re-fetch
// and retry their read-modify-write cycle.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, subject to
	// the optimistic-concurrency version check described above.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier within a tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its tenant-scoped order number.
	GetByNumber(ctx context.Context, tenantID kernel.UUID, orderNumber string) (*order.Order, error)

	// Delete removes an order. Callers must check order.CanDelete first;
	// the repository only enforces existence.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error

	// GetRecurringDue retrieves all orders across tenants whose recurrence
	// is enabled, not cancelled, and due at or before now. Used by the
	// scheduled sweep.
	GetRecurringDue(ctx context.Context, now time.Time) ([]*order.Order, error)

	// GetWithDueInstallments retrieves all orders across tenants carrying
	// installment terms with at least one pending installment past its due
	// date as of now. Used by the scheduled overdue sweep.
	GetWithDueInstallments(ctx context.Context, now time.Time) ([]*order.Order, error)

	// NextOrderNumber allocates the next sequential order number for the
	// tenant on the given day, in the ORD-YYYYMMDD-NNNN format. Allocation
	// happens inside the surrounding transaction so two concurrent
	// creations never share a number.
	NextOrderNumber(ctx context.Context, tenantID kernel.UUID, day time.Time) (string, error)
}
