package bulkoprepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// GormBulkOperationRepository implements BulkOperationRepository using GORM.
type GormBulkOperationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBulkOperationRepository creates a new GORM batch record repository.
func NewGormBulkOperationRepository(db *gorm.DB, tracker aggregateTracker) *GormBulkOperationRepository {
	return &GormBulkOperationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch record to the database.
func (r *GormBulkOperationRepository) Add(ctx context.Context, aggregate *bulkop.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves progress changes to an existing batch record.
func (r *GormBulkOperationRepository) Update(ctx context.Context, aggregate *bulkop.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&OperationDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bulk operation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch record by ID within a tenant.
func (r *GormBulkOperationRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*bulkop.Operation, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OperationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bulk operation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
