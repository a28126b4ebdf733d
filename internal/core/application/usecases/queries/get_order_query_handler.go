package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// orderDetailColumns is the column list the detail queries select.
const orderDetailColumns = `
	id,
	tenant_id,
	customer_id,
	user_id,
	order_number,
	items,
	subtotal,
	discount_amount,
	tax_amount,
	shipping_amount,
	total_amount,
	status,
	priority,
	status_history,
	payment_status,
	payment_terms,
	due_date,
	paid_amount,
	remaining_amount,
	payments,
	approval,
	recurring,
	order_date,
	expected_delivery_date,
	actual_delivery_date,
	notes,
	shipping_address,
	version`

// GetOrderQueryHandler retrieves single orders in full detail from the
// database, including the jsonb sub-documents.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// order with the given identifier exists in the tenant.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderDetailColumns+`
		FROM orders
		WHERE tenant_id = ? AND id = ?
	`, query.TenantID().String(), query.OrderID().String()).Row()

	response, err := scanOrderDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return response, err
}

// scanOrderDetail scans one row selected with orderDetailColumns.
func scanOrderDetail(row *sql.Row) (GetOrderQueryResponse, error) {
	var response GetOrderQueryResponse
	var id, tenantID, customerID, userID uuid.UUID
	var items, statusHistory, paymentTerms, payments []byte
	var approval, recurring []byte

	err := row.Scan(
		&id,
		&tenantID,
		&customerID,
		&userID,
		&response.OrderNumber,
		&items,
		&response.Subtotal,
		&response.DiscountAmount,
		&response.TaxAmount,
		&response.ShippingAmount,
		&response.TotalAmount,
		&response.Status,
		&response.Priority,
		&statusHistory,
		&response.PaymentStatus,
		&paymentTerms,
		&response.DueDate,
		&response.PaidAmount,
		&response.RemainingAmount,
		&payments,
		&approval,
		&recurring,
		&response.OrderDate,
		&response.ExpectedDeliveryDate,
		&response.ActualDeliveryDate,
		&response.Notes,
		&response.ShippingAddress,
		&response.Version,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.TenantID, err = kernel.UUIDFromBytes(tenantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = json.Unmarshal(items, &response.Items); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = json.Unmarshal(statusHistory, &response.StatusHistory); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = json.Unmarshal(paymentTerms, &response.PaymentTerms); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = json.Unmarshal(payments, &response.Payments); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if approval != nil {
		if err = json.Unmarshal(approval, &response.Approval); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	if recurring != nil {
		if err = json.Unmarshal(recurring, &response.Recurring); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	return response, nil
}
