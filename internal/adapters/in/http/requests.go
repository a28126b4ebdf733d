package http

import (
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// itemRequest is one order line as submitted by callers. Derived amounts
// are never accepted; the domain computes them.
type itemRequest struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
}

// installmentRequest is one caller-supplied installment in a payment schedule.
type installmentRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
}

// paymentTermsRequest is the payment-terms selection as submitted by callers.
type paymentTermsRequest struct {
	Type            string               `json:"type"`
	NetDays         int                  `json:"net_days"`
	DiscountPercent decimal.Decimal      `json:"discount_percent"`
	DiscountDays    int                  `json:"discount_days"`
	Installments    []installmentRequest `json:"installments"`
}

// recurringRequest is the recurrence configuration as submitted by callers.
type recurringRequest struct {
	Frequency      string     `json:"frequency"`
	Interval       int        `json:"interval"`
	NextOrderDate  time.Time  `json:"next_order_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	MaxOccurrences int        `json:"max_occurrences"`
	AutoApprove    bool       `json:"auto_approve"`
}

type createOrderRequest struct {
	CustomerID      string               `json:"customer_id"`
	Items           []itemRequest        `json:"items"`
	ShippingAmount  *decimal.Decimal     `json:"shipping_amount,omitempty"`
	PaymentTerms    *paymentTermsRequest `json:"payment_terms,omitempty"`
	Priority        string               `json:"priority,omitempty"`
	Recurring       *recurringRequest    `json:"recurring,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	ShippingAddress string               `json:"shipping_address,omitempty"`
}

type updateOrderRequest struct {
	Items           []itemRequest        `json:"items,omitempty"`
	ShippingAmount  *decimal.Decimal     `json:"shipping_amount,omitempty"`
	PaymentTerms    *paymentTermsRequest `json:"payment_terms,omitempty"`
	Priority        *string              `json:"priority,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	ShippingAddress *string              `json:"shipping_address,omitempty"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type recordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Notes  string          `json:"notes,omitempty"`
}

type approveOrderRequest struct {
	Comments string `json:"comments,omitempty"`
}

type rejectOrderRequest struct {
	Reason string `json:"reason"`
}

type createTemplateRequest struct {
	Name         string               `json:"name"`
	CustomerID   string               `json:"customer_id,omitempty"`
	Items        []itemRequest        `json:"items"`
	PaymentTerms *paymentTermsRequest `json:"payment_terms,omitempty"`
	Tags         []string             `json:"tags,omitempty"`
}

type createOrderFromTemplateRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
}

type bulkOperationRequest struct {
	Type           string   `json:"type"`
	OrderIDs       []string `json:"order_ids"`
	TargetStatus   string   `json:"target_status,omitempty"`
	TargetPriority string   `json:"target_priority,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

// parseID converts a path or body identifier into a kernel UUID, reporting
// the failure under the given parameter name.
func parseID(raw, paramName string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// toItemInputs converts submitted order lines into command inputs.
func toItemInputs(items []itemRequest) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		productID, err := parseID(item.ProductID, "product id")
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.ItemInput{
			ProductID:       productID,
			Name:            item.Name,
			SKU:             item.SKU,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			TaxPercent:      item.TaxPercent,
		})
	}
	return inputs, nil
}

// toPaymentTermsInput converts a submitted terms selection into a command
// input.
func toPaymentTermsInput(terms paymentTermsRequest) (commands.PaymentTermsInput, error) {
	termsType, err := order.ParsePaymentTermsType(terms.Type)
	if err != nil {
		return commands.PaymentTermsInput{}, err
	}

	input := commands.PaymentTermsInput{
		Type:            termsType,
		NetDays:         terms.NetDays,
		DiscountPercent: terms.DiscountPercent,
		DiscountDays:    terms.DiscountDays,
	}
	for _, installment := range terms.Installments {
		input.Installments = append(input.Installments, commands.InstallmentInput{
			Amount:  installment.Amount,
			DueDate: installment.DueDate,
		})
	}
	return input, nil
}

// toRecurringConfig converts a submitted recurrence block into a domain
// configuration. Submitted recurrences always start enabled at occurrence
// zero.
func toRecurringConfig(recurring recurringRequest) (*order.RecurringConfig, error) {
	frequency, err := order.ParseFrequency(recurring.Frequency)
	if err != nil {
		return nil, err
	}
	if recurring.NextOrderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("next order date")
	}

	return &order.RecurringConfig{
		Enabled:        true,
		Frequency:      frequency,
		Interval:       recurring.Interval,
		NextOrderDate:  recurring.NextOrderDate,
		EndDate:        recurring.EndDate,
		MaxOccurrences: recurring.MaxOccurrences,
		AutoApprove:    recurring.AutoApprove,
	}, nil
}
