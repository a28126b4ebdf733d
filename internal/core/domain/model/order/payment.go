package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// PaymentMethod identifies how a payment was collected.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentMethodCash
	PaymentMethodCard
	PaymentMethodBankTransfer
	PaymentMethodCheque
	PaymentMethodOther
)

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCash:
		return "Cash"
	case PaymentMethodCard:
		return "Card"
	case PaymentMethodBankTransfer:
		return "BankTransfer"
	case PaymentMethodCheque:
		return "Cheque"
	case PaymentMethodOther:
		return "Other"
	case PaymentMethodUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParsePaymentMethod converts a method name back into a value.
func ParsePaymentMethod(name string) (PaymentMethod, error) {
	methods := []PaymentMethod{
		PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodCheque, PaymentMethodOther,
	}
	for _, m := range methods {
		if m.String() == name {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a valid payment method", name))
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if m < PaymentMethodCash || m > PaymentMethodOther {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentRecord is one recorded payment against the order's balance.
type PaymentRecord struct {
	Amount     decimal.Decimal
	Method     PaymentMethod
	ReceivedBy kernel.UUID
	Notes      string
	ReceivedAt time.Time
}

// RecordPayment applies an incoming payment against the outstanding balance.
//
// The amount must be positive and must not exceed the remaining balance;
// violating either rule fails without changing the order. On success the
// paid and remaining amounts are updated, the payment status is rederived
// (Paid when nothing remains, Pending when nothing is paid, Partial
// otherwise), and a payment record is appended.
//
// For installment terms the payment is additionally allocated greedily, in
// list order, across unpaid installments: each installment absorbs up to
// its outstanding amount before any later one receives a cent, and an
// installment whose cumulative paid amount reaches its amount flips to
// Paid with its paid date set.
//
// The operation is otherwise side-effect free: notifications and stock are
// external collaborators.
func (o *Order) RecordPayment(amount decimal.Decimal, method PaymentMethod, actor kernel.UUID, notes string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := method.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	if amount.GreaterThan(o.remainingAmount) {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment amount",
			fmt.Errorf("%s exceeds remaining balance %s", amount, o.remainingAmount))
	}

	o.paidAmount = o.paidAmount.Add(amount)
	o.remainingAmount = o.totalAmount.Sub(o.paidAmount)

	switch {
	case o.remainingAmount.IsZero():
		o.paymentStatus = PaymentStatusPaid
	case o.paidAmount.IsZero():
		o.paymentStatus = PaymentStatusPending
	default:
		o.paymentStatus = PaymentStatusPartial
	}

	if o.paymentTerms.Type == PaymentTermsInstallments {
		o.allocateToInstallments(amount, now)
	}

	o.payments = append(o.payments, PaymentRecord{
		Amount:     amount,
		Method:     method,
		ReceivedBy: actor,
		Notes:      notes,
		ReceivedAt: now,
	})

	return nil
}

// allocateToInstallments distributes a payment across unpaid installments
// strictly in list order. A later installment never receives an allocation
// before every earlier unpaid one is filled.
func (o *Order) allocateToInstallments(amount decimal.Decimal, now time.Time) {
	remaining := amount
	for i := range o.paymentTerms.Installments {
		if !remaining.IsPositive() {
			break
		}
		inst := &o.paymentTerms.Installments[i]
		if inst.Status == InstallmentPaid {
			continue
		}

		outstanding := inst.Amount.Sub(inst.PaidAmount)
		applied := decimal.Min(remaining, outstanding)
		inst.PaidAmount = inst.PaidAmount.Add(applied)
		remaining = remaining.Sub(applied)

		if inst.PaidAmount.GreaterThanOrEqual(inst.Amount) {
			inst.Status = InstallmentPaid
			paidDate := now
			inst.PaidDate = &paidDate
		}
	}
}

// MarkInstallmentsOverdue flips pending installments past their due date to
// Overdue. Returns the number of installments affected. Used by the
// scheduled sweep; overdue installments still absorb allocations like
// pending ones.
func (o *Order) MarkInstallmentsOverdue(now time.Time) int {
	return o.paymentTerms.MarkInstallmentsOverdue(now)
}
