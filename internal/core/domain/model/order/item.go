package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// moneyScale is the number of decimal places carried by every derived
// money amount. Each derivation step rounds half away from zero to this
// scale, so sums of item amounts equal the stored order-level amounts.
const moneyScale = 2

var percentHundred = decimal.NewFromInt(100)

// round applies the currency rounding rule to a raw amount.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyScale)
}

// Item is a single order line. Pricing inputs (quantity, unit price,
// discount and tax percentages) are supplied by the caller; the derived
// amounts are computed once by NewItem and never mutated afterwards.
type Item struct {
	ProductID       kernel.UUID
	Name            string
	SKU             string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal

	// Derived amounts, rounded to moneyScale.
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// NewItem creates a validated order line and computes its derived amounts:
//
//	subtotal       = quantity × unitPrice
//	discountAmount = subtotal × discountPercent / 100
//	taxAmount      = (subtotal − discountAmount) × taxPercent / 100
//	total          = subtotal − discountAmount + taxAmount
//
// Validation rules:
//   - productID must be a constructed UUID
//   - name must not be empty
//   - quantity must be positive
//   - unitPrice must not be negative
//   - discountPercent must be within [0, 100]
//   - taxPercent must not be negative
func NewItem(
	productID kernel.UUID,
	name string,
	sku string,
	quantity int,
	unitPrice decimal.Decimal,
	discountPercent decimal.Decimal,
	taxPercent decimal.Decimal,
) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unit price", fmt.Errorf("%s is negative", unitPrice))
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(percentHundred) {
		return Item{}, errs.NewValueIsOutOfRangeError("discount percent", discountPercent.String(), "0", "100")
	}
	if taxPercent.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"tax percent", fmt.Errorf("%s is negative", taxPercent))
	}

	item := Item{
		ProductID:       productID,
		Name:            name,
		SKU:             sku,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: discountPercent,
		TaxPercent:      taxPercent,
	}
	item.derive()
	return item, nil
}

// derive recomputes the item's derived amounts from its pricing inputs.
func (i *Item) derive() {
	qty := decimal.NewFromInt(int64(i.Quantity))
	i.Subtotal = round(qty.Mul(i.UnitPrice))
	i.DiscountAmount = round(i.Subtotal.Mul(i.DiscountPercent).Div(percentHundred))
	afterDiscount := i.Subtotal.Sub(i.DiscountAmount)
	i.TaxAmount = round(afterDiscount.Mul(i.TaxPercent).Div(percentHundred))
	i.Total = afterDiscount.Add(i.TaxAmount)
}

// Totals holds the order-level money amounts derived from a line item
// sequence. Shipping is not part of Totals; the aggregate adds it on top
// because shipping is never item-discounted.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// CalculateTotals computes order-level totals from the item sequence:
//
//	subtotal       = Σ item.Subtotal
//	discountAmount = Σ item.DiscountAmount
//	taxAmount      = Σ item.TaxAmount
//	totalAmount    = subtotal − discountAmount + taxAmount
//
// The function is pure: it never mutates the items and has no other inputs.
func CalculateTotals(items []Item) Totals {
	totals := Totals{
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TaxAmount:      decimal.Zero,
		TotalAmount:    decimal.Zero,
	}
	for _, item := range items {
		totals.Subtotal = totals.Subtotal.Add(item.Subtotal)
		totals.DiscountAmount = totals.DiscountAmount.Add(item.DiscountAmount)
		totals.TaxAmount = totals.TaxAmount.Add(item.TaxAmount)
	}
	totals.TotalAmount = totals.Subtotal.Sub(totals.DiscountAmount).Add(totals.TaxAmount)
	return totals
}
