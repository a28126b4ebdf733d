// Package bulkoprepo provides data transfer objects and mapping functions
// for bulk operation record persistence.
package bulkoprepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
)

// OperationDTO represents the database structure for persisting batch
// operation records.
type OperationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID `gorm:"type:uuid;index"`
	OpType         string    `gorm:"column:op_type"`
	OrderIDs       pq.StringArray `gorm:"column:order_ids;type:text[]"`
	Parameters     []byte    `gorm:"type:jsonb"`
	Status         string
	ProcessedCount int
	TotalCount     int
	Errors         pq.StringArray `gorm:"type:text[]"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for batch records.
func (OperationDTO) TableName() string {
	return "bulk_order_operations"
}

// fromDomain converts a batch record to its database representation.
func fromDomain(aggregate *bulkop.Operation) (OperationDTO, error) {
	parameters, err := json.Marshal(aggregate.Parameters())
	if err != nil {
		return OperationDTO{}, err
	}

	orderIDs := make(pq.StringArray, 0, len(aggregate.OrderIDs()))
	for _, orderID := range aggregate.OrderIDs() {
		orderIDs = append(orderIDs, orderID.String())
	}

	return OperationDTO{
		ID:             aggregate.ID().Bytes(),
		TenantID:       aggregate.TenantID().Bytes(),
		OpType:         aggregate.Type().String(),
		OrderIDs:       orderIDs,
		Parameters:     parameters,
		Status:         aggregate.Status().String(),
		ProcessedCount: aggregate.ProcessedCount(),
		TotalCount:     aggregate.TotalCount(),
		Errors:         pq.StringArray(aggregate.Errors()),
		CreatedAt:      aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO back into a batch record.
func toDomain(dto OperationDTO) (*bulkop.Operation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	opType, err := bulkop.ParseType(dto.OpType)
	if err != nil {
		return nil, err
	}
	status, err := bulkop.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	var parameters map[string]string
	if err = json.Unmarshal(dto.Parameters, &parameters); err != nil {
		return nil, err
	}

	return bulkop.RestoreOperation(
		id, tenantID, opType, orderIDs, parameters,
		status, dto.ProcessedCount, dto.TotalCount, dto.Errors, dto.CreatedAt,
	)
}
