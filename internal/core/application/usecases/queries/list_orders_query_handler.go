package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered, paginated order summaries.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are ordered newest first, with the
// order number as a tiebreaker for a stable pagination order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := buildOrderFilters(query)

	var totalCount int
	countRow := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders WHERE `+where, args...,
	).Row()
	if err := countRow.Scan(&totalCount); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pageArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY order_date DESC, order_number DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrderSummaries(rows)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:     orders,
		TotalCount: totalCount,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
	}, nil
}

// buildOrderFilters renders the query's filters into a WHERE clause with
// positional placeholders and the matching argument list.
func buildOrderFilters(query ListOrdersQuery) (string, []any) {
	conditions := []string{"tenant_id = ?"}
	args := []any{query.TenantID().String()}

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}
	if paymentStatus := query.PaymentStatus(); paymentStatus != nil {
		conditions = append(conditions, "payment_status = ?")
		args = append(args, paymentStatus.String())
	}
	if priority := query.Priority(); priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, priority.String())
	}
	if customerID := query.CustomerID(); customerID != nil {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, customerID.String())
	}
	if from := query.OrderedFrom(); from != nil {
		conditions = append(conditions, "order_date >= ?")
		args = append(args, *from)
	}
	if to := query.OrderedTo(); to != nil {
		conditions = append(conditions, "order_date < ?")
		args = append(args, *to)
	}
	if term := query.Search(); term != "" {
		conditions = append(conditions, "(order_number ILIKE ? OR notes ILIKE ?)")
		pattern := "%" + term + "%"
		args = append(args, pattern, pattern)
	}

	return strings.Join(conditions, " AND "), args
}
