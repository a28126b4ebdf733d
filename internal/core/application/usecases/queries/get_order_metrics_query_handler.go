package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pos/internal/core/domain/model/order"
)

// GetOrderMetricsQueryHandler computes order and revenue rollups in the
// database.
type GetOrderMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderMetricsQueryHandler creates a handler for metrics queries.
func NewGetOrderMetricsQueryHandler(db *gorm.DB) GetOrderMetricsQueryHandler {
	return GetOrderMetricsQueryHandler{db: db}
}

// Handle executes the rollup. Cancelled orders count toward the per-status
// breakdown but are excluded from every revenue figure.
func (h GetOrderMetricsQueryHandler) Handle(
	ctx context.Context, query GetOrderMetricsQuery,
) (GetOrderMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	where := "tenant_id = ?"
	args := []any{query.TenantID().String()}
	if from := query.From(); from != nil {
		where += " AND order_date >= ?"
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		where += " AND order_date < ?"
		args = append(args, *to)
	}

	response := GetOrderMetricsQueryResponse{
		OrdersByStatus:    map[string]int{},
		TotalRevenue:      decimal.Zero,
		TotalCollected:    decimal.Zero,
		TotalOutstanding:  decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE `+where+`
		GROUP BY status
	`, args...).Rows()
	if err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderMetricsQueryResponse{}, err
		}
		response.OrdersByStatus[status] = count
		response.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	var revenueCount int
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(paid_amount), 0),
			COALESCE(SUM(remaining_amount), 0)
		FROM orders
		WHERE `+where+` AND status != ?
	`, append(args, order.StatusCancelled.String())...).Row()
	if err = row.Scan(
		&revenueCount,
		&response.TotalRevenue,
		&response.TotalCollected,
		&response.TotalOutstanding,
	); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	if revenueCount > 0 {
		response.AverageOrderValue = response.TotalRevenue.
			Div(decimal.NewFromInt(int64(revenueCount))).Round(2)
	}

	return response, nil
}
