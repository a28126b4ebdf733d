package ports

import (
	"context"

	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
)

// BulkOperationRepository defines the persistence contract for tracked
// batch job records. Execution of the batches belongs to an external
// runner; this core only creates records and reads progress.
type BulkOperationRepository interface {
	// Add persists a new batch record.
	Add(ctx context.Context, aggregate *bulkop.Operation) error

	// Update persists progress changes to an existing batch record.
	Update(ctx context.Context, aggregate *bulkop.Operation) error

	// Get retrieves a batch record by its unique identifier within a tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*bulkop.Operation, error)
}
