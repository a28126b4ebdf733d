package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetBulkOperationQueryIsNotConstructed = errors.New(
	"GetBulkOperationQuery must be created via NewGetBulkOperationQuery constructor",
)

// GetBulkOperationQuery retrieves one batch operation record with its
// progress counters and per-target errors.
type GetBulkOperationQuery struct {
	tenantID    kernel.UUID
	operationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBulkOperationQuery creates a batch record lookup.
func NewGetBulkOperationQuery(tenantID, operationID kernel.UUID) (GetBulkOperationQuery, error) {
	if err := errors.Join(tenantID.Validate(), operationID.Validate()); err != nil {
		return GetBulkOperationQuery{}, err
	}
	return GetBulkOperationQuery{
		tenantID:    tenantID,
		operationID: operationID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBulkOperationQuery) Validate() error {
	return q.guard.Validate(ErrGetBulkOperationQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetBulkOperationQuery) TenantID() kernel.UUID { return q.tenantID }

// OperationID returns the batch record to fetch.
func (q GetBulkOperationQuery) OperationID() kernel.UUID { return q.operationID }

// GetBulkOperationQueryResponse is the full view of one batch record.
type GetBulkOperationQueryResponse struct {
	ID             kernel.UUID       `json:"id"`
	Type           string            `json:"type"`
	OrderIDs       []string          `json:"order_ids"`
	Parameters     map[string]string `json:"parameters"`
	Status         string            `json:"status"`
	ProcessedCount int               `json:"processed_count"`
	TotalCount     int               `json:"total_count"`
	Errors         []string          `json:"errors"`
	CreatedAt      time.Time         `json:"created_at"`
}
