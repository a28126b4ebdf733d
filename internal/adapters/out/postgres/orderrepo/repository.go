package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order under the optimistic-concurrency check:
// the row is only written when its stored version still matches the
// aggregate's, and the stored version is incremented in the same statement.
// A version mismatch surfaces as a VersionIsInvalidError so the caller can
// re-fetch and retry.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND tenant_id = ? AND version = ?", dto.ID, dto.TenantID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID within a tenant.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its tenant-scoped order number.
func (r *GormOrderRepository) GetByNumber(
	ctx context.Context, tenantID kernel.UUID, orderNumber string,
) (*order.Order, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND order_number = ?", tenantID.Bytes(), orderNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order row. Deletability rules live on the aggregate;
// the repository only reports a missing row.
func (r *GormOrderRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// GetRecurringDue retrieves all orders across tenants whose recurrence is
// enabled, not cancelled, and due at or before now.
func (r *GormOrderRepository) GetRecurringDue(ctx context.Context, now time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("recurring IS NOT NULL").
		Where("(recurring->>'enabled')::boolean").
		Where("(recurring->>'next_order_date')::timestamptz <= ?", now).
		Where("status <> ?", order.StatusCancelled.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// GetWithDueInstallments retrieves all orders across tenants carrying at
// least one pending installment past its due date.
func (r *GormOrderRepository) GetWithDueInstallments(ctx context.Context, now time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("payment_terms->>'type' = ?", order.PaymentTermsInstallments.String()).
		Where(`EXISTS (
			SELECT 1 FROM jsonb_array_elements(payment_terms->'installments') AS inst
			WHERE inst->>'status' = ? AND (inst->>'due_date')::timestamptz < ?
		)`, order.InstallmentPending.String(), now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// NextOrderNumber allocates the next sequential order number for the
// tenant on the given day. The per-day counter row is upserted atomically,
// so concurrent allocations inside overlapping transactions serialize on
// the row and never produce duplicates.
func (r *GormOrderRepository) NextOrderNumber(
	ctx context.Context, tenantID kernel.UUID, day time.Time,
) (string, error) {
	if err := tenantID.Validate(); err != nil {
		return "", err
	}

	var sequence int
	row := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_counters (tenant_id, day, counter)
		VALUES (?, ?, 1)
		ON CONFLICT (tenant_id, day)
		DO UPDATE SET counter = order_number_counters.counter + 1
		RETURNING counter
	`, tenantID.Bytes(), day.Format("2006-01-02")).Row()
	if err := row.Scan(&sequence); err != nil {
		return "", err
	}

	return order.FormatOrderNumber(day, sequence), nil
}
