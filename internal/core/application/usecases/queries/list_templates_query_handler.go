package queries

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"pos/internal/core/domain/model/kernel"
)

// TemplateSummary is the catalog-level view of a template: identity, the
// optional customer binding, and how many seed items it carries.
type TemplateSummary struct {
	ID         kernel.UUID  `json:"id"`
	CustomerID *kernel.UUID `json:"customer_id,omitempty"`
	Name       string       `json:"name"`
	ItemCount  int          `json:"item_count"`
	Tags       []string     `json:"tags"`
}

// ListTemplatesQueryHandler retrieves the template catalog.
type ListTemplatesQueryHandler struct {
	db *gorm.DB
}

// NewListTemplatesQueryHandler creates a handler for template catalog
// listings.
func NewListTemplatesQueryHandler(db *gorm.DB) ListTemplatesQueryHandler {
	return ListTemplatesQueryHandler{db: db}
}

// Handle executes the query, sorted by template name.
func (h ListTemplatesQueryHandler) Handle(
	ctx context.Context, query ListTemplatesQuery,
) ([]TemplateSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, name, items, tags
		FROM order_templates
		WHERE tenant_id = ?
		ORDER BY name
	`, query.TenantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]TemplateSummary, 0)
	for rows.Next() {
		var summary TemplateSummary
		var id uuid.UUID
		var customerID *uuid.UUID
		var items []byte
		var tags pq.StringArray

		if err := rows.Scan(&id, &customerID, &summary.Name, &items, &tags); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if customerID != nil {
			cID, idErr := kernel.UUIDFromBytes((*customerID)[:])
			if idErr != nil {
				return nil, idErr
			}
			summary.CustomerID = &cID
		}

		var itemDocs []json.RawMessage
		if err := json.Unmarshal(items, &itemDocs); err != nil {
			return nil, err
		}
		summary.ItemCount = len(itemDocs)
		summary.Tags = tags

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
