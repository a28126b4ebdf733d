// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain model and read projections straight
// from the database, returning plain response structs shaped for callers.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
)

// orderSummaryColumns is the column list every order-listing query selects.
const orderSummaryColumns = `
	id,
	order_number,
	customer_id,
	status,
	payment_status,
	priority,
	total_amount,
	paid_amount,
	remaining_amount,
	due_date,
	order_date`

// OrderSummary is the listing-level view of an order: identity, lifecycle
// position, and money rollups, without line items or history.
type OrderSummary struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerID      kernel.UUID
	Status          string
	PaymentStatus   string
	Priority        string
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	DueDate         time.Time
	OrderDate       time.Time
}

// scanOrderSummaries drains rows selected with orderSummaryColumns.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var summary OrderSummary
		var id, customerID uuid.UUID

		err := rows.Scan(
			&id,
			&summary.OrderNumber,
			&customerID,
			&summary.Status,
			&summary.PaymentStatus,
			&summary.Priority,
			&summary.TotalAmount,
			&summary.PaidAmount,
			&summary.RemainingAmount,
			&summary.DueDate,
			&summary.OrderDate,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
