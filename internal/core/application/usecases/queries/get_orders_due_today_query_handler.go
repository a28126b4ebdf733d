package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/order"
)

// GetOrdersDueTodayQueryHandler retrieves unpaid orders falling due within
// the current calendar day.
type GetOrdersDueTodayQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersDueTodayQueryHandler creates a handler for due-today listings.
func NewGetOrdersDueTodayQueryHandler(db *gorm.DB) GetOrdersDueTodayQueryHandler {
	return GetOrdersDueTodayQueryHandler{db: db}
}

// Handle executes the query for the day containing query.Now().
func (h GetOrdersDueTodayQueryHandler) Handle(
	ctx context.Context, query GetOrdersDueTodayQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := query.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE tenant_id = ?
		  AND due_date >= ? AND due_date < ?
		  AND remaining_amount > 0
		  AND status != ?
		ORDER BY due_date
	`, query.TenantID().String(), dayStart, dayEnd, order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
