package commands

import (
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// ItemInput is the raw line-item data accepted by order commands.
// Derived amounts are never accepted from callers; they are computed by
// the domain when the item is constructed.
type ItemInput struct {
	ProductID       kernel.UUID
	Name            string
	SKU             string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
}

// InstallmentInput is one caller-supplied installment in a payment schedule.
type InstallmentInput struct {
	Amount  decimal.Decimal
	DueDate time.Time
}

// PaymentTermsInput is the raw payment-terms selection accepted by order
// commands. A zero-valued input means "use the default terms".
type PaymentTermsInput struct {
	Type            order.PaymentTermsType
	NetDays         int
	DiscountPercent decimal.Decimal
	DiscountDays    int
	Installments    []InstallmentInput
}

// buildItems constructs validated domain items from raw inputs.
func buildItems(inputs []ItemInput) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))
	for _, in := range inputs {
		item, err := order.NewItem(
			in.ProductID, in.Name, in.SKU, in.Quantity,
			in.UnitPrice, in.DiscountPercent, in.TaxPercent,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// toDomain converts the raw terms selection into domain payment terms.
// All supplied installments start out pending with no allocation.
func (p PaymentTermsInput) toDomain() order.PaymentTerms {
	terms := order.PaymentTerms{
		Type:            p.Type,
		NetDays:         p.NetDays,
		DiscountPercent: p.DiscountPercent,
		DiscountDays:    p.DiscountDays,
	}
	for _, in := range p.Installments {
		terms.Installments = append(terms.Installments, order.Installment{
			Amount:     in.Amount,
			DueDate:    in.DueDate,
			Status:     order.InstallmentPending,
			PaidAmount: decimal.Zero,
		})
	}
	return terms
}
