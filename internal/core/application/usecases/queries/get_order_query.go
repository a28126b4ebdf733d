package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order in full detail by its identifier.
type GetOrderQuery struct {
	tenantID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(tenantID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		tenantID: tenantID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetOrderQuery) TenantID() kernel.UUID { return q.tenantID }

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// ItemResponse is one line item in the detail view, with its derived amounts.
type ItemResponse struct {
	ProductID       kernel.UUID     `json:"product_id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
}

// StatusHistoryEntryResponse is one applied transition in the detail view.
type StatusHistoryEntryResponse struct {
	Status    string      `json:"status"`
	ChangedBy kernel.UUID `json:"changed_by"`
	Reason    string      `json:"reason"`
	Notes     string      `json:"notes"`
	Timestamp time.Time   `json:"timestamp"`
}

// InstallmentResponse is one scheduled partial payment in the detail view.
type InstallmentResponse struct {
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	Status     string          `json:"status"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	PaidDate   *time.Time      `json:"paid_date,omitempty"`
}

// PaymentTermsResponse is the terms selection in the detail view.
type PaymentTermsResponse struct {
	Type            string                `json:"type"`
	NetDays         int                   `json:"net_days"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	DiscountDays    int                   `json:"discount_days"`
	Installments    []InstallmentResponse `json:"installments,omitempty"`
}

// ApprovalStepResponse is one sign-off step in the detail view.
type ApprovalStepResponse struct {
	Step           int             `json:"step"`
	Role           string          `json:"role"`
	RequiredAmount decimal.Decimal `json:"required_amount"`
	Status         string          `json:"status"`
	ApproverID     *kernel.UUID    `json:"approver_id,omitempty"`
	Comments       string          `json:"comments"`
	DecidedAt      *time.Time      `json:"decided_at,omitempty"`
}

// ApprovalWorkflowResponse is the sign-off chain in the detail view.
type ApprovalWorkflowResponse struct {
	Status      string                 `json:"status"`
	CurrentStep int                    `json:"current_step"`
	TotalSteps  int                    `json:"total_steps"`
	Steps       []ApprovalStepResponse `json:"steps"`
}

// RecurringResponse is the recurrence configuration in the detail view.
type RecurringResponse struct {
	Enabled           bool       `json:"enabled"`
	Frequency         string     `json:"frequency"`
	Interval          int        `json:"interval"`
	NextOrderDate     time.Time  `json:"next_order_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	MaxOccurrences    int        `json:"max_occurrences"`
	CurrentOccurrence int        `json:"current_occurrence"`
	AutoApprove       bool       `json:"auto_approve"`
}

// PaymentResponse is one recorded payment in the detail view.
type PaymentResponse struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	ReceivedBy kernel.UUID     `json:"received_by"`
	Notes      string          `json:"notes"`
	ReceivedAt time.Time       `json:"received_at"`
}

// GetOrderQueryResponse is the full detail view of a single order.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	TenantID    kernel.UUID
	CustomerID  kernel.UUID
	UserID      kernel.UUID
	OrderNumber string

	Items          []ItemResponse
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	Status        string
	Priority      string
	StatusHistory []StatusHistoryEntryResponse

	PaymentStatus   string
	PaymentTerms    PaymentTermsResponse
	DueDate         time.Time
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	Payments        []PaymentResponse

	Approval  *ApprovalWorkflowResponse
	Recurring *RecurringResponse

	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	Notes                string
	ShippingAddress      string
	Version              int
}
