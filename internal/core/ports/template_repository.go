package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/template"
)

// TemplateRepository defines the persistence contract for order templates.
type TemplateRepository interface {
	// Add persists a new template to storage.
	Add(ctx context.Context, aggregate *template.Template) error

	// Update persists changes to an existing template.
	Update(ctx context.Context, aggregate *template.Template) error

	// Get retrieves a template by its unique identifier within a tenant.
	// Lookup is always direct by id, never positional.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*template.Template, error)

	// GetAll retrieves every template owned by the tenant.
	GetAll(ctx context.Context, tenantID kernel.UUID) ([]*template.Template, error)

	// Delete removes a template.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error
}
