package templaterepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/template"
	"pos/internal/pkg/errs"
)

// GormTemplateRepository implements TemplateRepository using GORM.
type GormTemplateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTemplateRepository creates a new GORM template repository.
func NewGormTemplateRepository(db *gorm.DB, tracker aggregateTracker) *GormTemplateRepository {
	return &GormTemplateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new template to the database.
func (r *GormTemplateRepository) Add(ctx context.Context, aggregate *template.Template) error {
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

// Update saves an existing template to the database.
func (r *GormTemplateRepository) Update(ctx context.Context, aggregate *template.Template) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&TemplateDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order template", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a template by ID within a tenant.
func (r *GormTemplateRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*template.Template, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto TemplateDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order template", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every template owned by the tenant, sorted by name.
func (r *GormTemplateRepository) GetAll(ctx context.Context, tenantID kernel.UUID) ([]*template.Template, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TemplateDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "tenant_id = ?", tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	templates := make([]*template.Template, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// Delete removes a template row.
func (r *GormTemplateRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).
		Delete(&TemplateDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order template", id.String())
	}
	return nil
}
