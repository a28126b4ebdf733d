package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"pos/internal/pkg/errs"
)

// GetOrderByNumberQueryHandler retrieves single orders in full detail by
// their tenant-scoped order number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order-number lookups.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when the
// tenant has no order with that number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context, query GetOrderByNumberQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderDetailColumns+`
		FROM orders
		WHERE tenant_id = ? AND order_number = ?
	`, query.TenantID().String(), query.OrderNumber()).Row()

	response, err := scanOrderDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}
	return response, err
}
