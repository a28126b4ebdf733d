package queries

import (
	"context"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/order"
)

// GetPendingApprovalOrdersQueryHandler retrieves the approval work queue.
type GetPendingApprovalOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingApprovalOrdersQueryHandler creates a handler for approval
// queue listings.
func NewGetPendingApprovalOrdersQueryHandler(db *gorm.DB) GetPendingApprovalOrdersQueryHandler {
	return GetPendingApprovalOrdersQueryHandler{db: db}
}

// Handle executes the query. Oldest orders surface first, so approvals are
// worked in arrival order.
func (h GetPendingApprovalOrdersQueryHandler) Handle(
	ctx context.Context, query GetPendingApprovalOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE tenant_id = ? AND status = ?
		ORDER BY order_date
	`, query.TenantID().String(), order.StatusPendingApproval.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
