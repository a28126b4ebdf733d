package http

import (
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/template"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderResponse is the compact view of an order returned by write
// endpoints. Full detail, including items and history, comes from the read
// endpoints.
type orderResponse struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerID      string          `json:"customer_id"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	Priority        string          `json:"priority"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	ShippingAmount  decimal.Decimal `json:"shipping_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	DueDate         time.Time       `json:"due_date"`
	OrderDate       time.Time       `json:"order_date"`
	Version         int             `json:"version"`
}

func newOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:              o.ID().String(),
		OrderNumber:     o.OrderNumber(),
		CustomerID:      o.CustomerID().String(),
		Status:          o.Status().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		Priority:        o.Priority().String(),
		Subtotal:        o.Subtotal(),
		DiscountAmount:  o.DiscountAmount(),
		TaxAmount:       o.TaxAmount(),
		ShippingAmount:  o.ShippingAmount(),
		TotalAmount:     o.TotalAmount(),
		PaidAmount:      o.PaidAmount(),
		RemainingAmount: o.RemainingAmount(),
		DueDate:         o.DueDate(),
		OrderDate:       o.OrderDate(),
		Version:         o.Version(),
	}
}

// templateResponse is the view of a template returned after creation.
type templateResponse struct {
	ID         string   `json:"id"`
	CustomerID *string  `json:"customer_id,omitempty"`
	Name       string   `json:"name"`
	ItemCount  int      `json:"item_count"`
	Tags       []string `json:"tags"`
}

func newTemplateResponse(t *template.Template) templateResponse {
	response := templateResponse{
		ID:        t.ID().String(),
		Name:      t.Name(),
		ItemCount: len(t.Items()),
		Tags:      t.Tags(),
	}
	if customerID := t.CustomerID(); customerID != nil {
		raw := customerID.String()
		response.CustomerID = &raw
	}
	return response
}

// bulkOperationResponse is the view of a finished batch record returned by
// the bulk endpoint.
type bulkOperationResponse struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	ProcessedCount int      `json:"processed_count"`
	TotalCount     int      `json:"total_count"`
	Errors         []string `json:"errors"`
}

func newBulkOperationResponse(op *bulkop.Operation) bulkOperationResponse {
	return bulkOperationResponse{
		ID:             op.ID().String(),
		Type:           op.Type().String(),
		Status:         op.Status().String(),
		ProcessedCount: op.ProcessedCount(),
		TotalCount:     op.TotalCount(),
		Errors:         op.Errors(),
	}
}
