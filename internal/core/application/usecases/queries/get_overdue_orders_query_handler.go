package queries

import (
	"context"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/order"
)

// GetOverdueOrdersQueryHandler retrieves orders with an outstanding balance
// past their due date.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue listings.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered oldest due date first, so
// the most overdue orders surface at the top.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context, query GetOverdueOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE tenant_id = ?
		  AND due_date < ?
		  AND remaining_amount > 0
		  AND status != ?
		ORDER BY due_date
	`, query.TenantID().String(), query.Now(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
