package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// GetBulkOperationQueryHandler retrieves one batch operation record.
type GetBulkOperationQueryHandler struct {
	db *gorm.DB
}

// NewGetBulkOperationQueryHandler creates a handler for batch record
// lookups.
func NewGetBulkOperationQueryHandler(db *gorm.DB) GetBulkOperationQueryHandler {
	return GetBulkOperationQueryHandler{db: db}
}

// Handle executes the query.
func (h GetBulkOperationQueryHandler) Handle(
	ctx context.Context, query GetBulkOperationQuery,
) (GetBulkOperationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBulkOperationQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, op_type, order_ids, parameters, status,
		       processed_count, total_count, errors, created_at
		FROM bulk_order_operations
		WHERE tenant_id = ? AND id = ?
	`, query.TenantID().String(), query.OperationID().String()).Row()

	var response GetBulkOperationQueryResponse
	var id uuid.UUID
	var orderIDs, errorList pq.StringArray
	var parameters []byte

	err := row.Scan(
		&id,
		&response.Type,
		&orderIDs,
		&parameters,
		&response.Status,
		&response.ProcessedCount,
		&response.TotalCount,
		&errorList,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetBulkOperationQueryResponse{},
				errs.NewObjectNotFoundError("bulk operation", query.OperationID().String())
		}
		return GetBulkOperationQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetBulkOperationQueryResponse{}, err
	}
	if err = json.Unmarshal(parameters, &response.Parameters); err != nil {
		return GetBulkOperationQueryResponse{}, err
	}
	response.OrderIDs = orderIDs
	response.Errors = errorList

	return response, nil
}
