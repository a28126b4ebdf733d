package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/pkg/errs"
)

// defaultNetDays is the fallback payment window applied when terms are
// omitted entirely or carry an unrecognized type.
const defaultNetDays = 30

// PaymentTermsType selects how an order's due date is derived.
type PaymentTermsType int

const (
	PaymentTermsUnknown PaymentTermsType = iota

	// PaymentTermsImmediate makes the order due at creation time.
	PaymentTermsImmediate

	// PaymentTermsNetDays gives the customer a fixed number of days to pay.
	PaymentTermsNetDays

	// PaymentTermsEndOfMonth makes the order due on the last calendar day
	// of the month it was created in.
	PaymentTermsEndOfMonth

	// PaymentTermsInstallments splits the balance into a caller-supplied
	// schedule of partial payments.
	PaymentTermsInstallments

	// PaymentTermsCustom carries a caller-managed due date arrangement.
	PaymentTermsCustom
)

// String returns the human-readable name of the terms type.
func (t PaymentTermsType) String() string {
	switch t {
	case PaymentTermsImmediate:
		return "Immediate"
	case PaymentTermsNetDays:
		return "NetDays"
	case PaymentTermsEndOfMonth:
		return "EndOfMonth"
	case PaymentTermsInstallments:
		return "Installments"
	case PaymentTermsCustom:
		return "Custom"
	case PaymentTermsUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParsePaymentTermsType converts a terms-type name back into a value.
func ParsePaymentTermsType(name string) (PaymentTermsType, error) {
	types := []PaymentTermsType{
		PaymentTermsImmediate, PaymentTermsNetDays, PaymentTermsEndOfMonth,
		PaymentTermsInstallments, PaymentTermsCustom,
	}
	for _, t := range types {
		if t.String() == name {
			return t, nil
		}
	}
	return PaymentTermsUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment terms type", fmt.Errorf("%q is not a valid payment terms type", name))
}

// InstallmentStatus tracks an individual installment's payment progress.
type InstallmentStatus int

const (
	InstallmentUnknown InstallmentStatus = iota
	InstallmentPending
	InstallmentPaid
	InstallmentOverdue
)

// String returns the human-readable name of the installment status.
func (s InstallmentStatus) String() string {
	switch s {
	case InstallmentPending:
		return "Pending"
	case InstallmentPaid:
		return "Paid"
	case InstallmentOverdue:
		return "Overdue"
	case InstallmentUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParseInstallmentStatus converts an installment-status name back into a value.
func ParseInstallmentStatus(name string) (InstallmentStatus, error) {
	for _, s := range []InstallmentStatus{InstallmentPending, InstallmentPaid, InstallmentOverdue} {
		if s.String() == name {
			return s, nil
		}
	}
	return InstallmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"installment status", fmt.Errorf("%q is not a valid installment status", name))
}

// Installment is one scheduled partial payment within the order's terms.
// PaidAmount accumulates allocations; once it reaches Amount the
// installment flips to InstallmentPaid and PaidDate is set.
type Installment struct {
	Amount     decimal.Decimal
	DueDate    time.Time
	Status     InstallmentStatus
	PaidAmount decimal.Decimal
	PaidDate   *time.Time
}

// PaymentTerms describes when and how an order's balance falls due.
// NetDays applies to PaymentTermsNetDays only. DiscountPercent and
// DiscountDays describe an optional early-payment incentive and are
// informational: no component applies the discount automatically.
// Installments is non-empty only for PaymentTermsInstallments; the
// schedule is supplied by the caller, never derived.
type PaymentTerms struct {
	Type            PaymentTermsType
	NetDays         int
	DiscountPercent decimal.Decimal
	DiscountDays    int
	Installments    []Installment
}

// DefaultPaymentTerms returns the terms applied when an order is created
// without any payment terms selection: net 30 days.
func DefaultPaymentTerms() PaymentTerms {
	return PaymentTerms{Type: PaymentTermsNetDays, NetDays: defaultNetDays}
}

// Validate checks structural consistency of the terms selection.
func (t PaymentTerms) Validate() error {
	if t.Type == PaymentTermsNetDays && t.NetDays < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment terms", fmt.Errorf("net days %d is negative", t.NetDays))
	}
	if t.Type != PaymentTermsInstallments && len(t.Installments) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment terms", fmt.Errorf("installments are only valid for %s terms", PaymentTermsInstallments))
	}
	for i, inst := range t.Installments {
		if !inst.Amount.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause(
				"payment terms", fmt.Errorf("installment %d amount %s is not positive", i+1, inst.Amount))
		}
	}
	return nil
}

// ResolveDueDate derives the order due date from the terms selection:
//
//   - Immediate    -> now
//   - NetDays      -> now + NetDays (defaulting to 30 when NetDays is 0)
//   - EndOfMonth   -> last calendar day of now's month
//   - anything else -> now + 30 days (fallback)
//
// The resolver is a pure function of (terms, now).
func ResolveDueDate(terms PaymentTerms, now time.Time) time.Time {
	switch terms.Type {
	case PaymentTermsImmediate:
		return now
	case PaymentTermsNetDays:
		days := terms.NetDays
		if days == 0 {
			days = defaultNetDays
		}
		return now.AddDate(0, 0, days)
	case PaymentTermsEndOfMonth:
		// Day 0 of the next month normalizes to the last day of this one.
		return time.Date(now.Year(), now.Month()+1, 0,
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	case PaymentTermsInstallments, PaymentTermsCustom, PaymentTermsUnknown:
		return now.AddDate(0, 0, defaultNetDays)
	}
	return now.AddDate(0, 0, defaultNetDays)
}

// MarkInstallmentsOverdue flips pending installments whose due date passed
// to InstallmentOverdue. Returns the number of installments affected.
// Overdue installments still participate in payment allocation exactly
// like pending ones.
func (t *PaymentTerms) MarkInstallmentsOverdue(now time.Time) int {
	marked := 0
	for i := range t.Installments {
		inst := &t.Installments[i]
		if inst.Status == InstallmentPending && inst.DueDate.Before(now) {
			inst.Status = InstallmentOverdue
			marked++
		}
	}
	return marked
}
