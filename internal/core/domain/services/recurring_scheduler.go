package services

import (
	"time"

	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// RecurringOrderScheduler is a domain service that stamps out the next
// instance of a recurring order template and computes how the template's
// recurrence must advance afterwards.
//
// Business rules:
//   - Only orders with an attached, enabled recurrence generate instances
//   - The generated instance is a fresh order: new identity, zero payment
//     progress, reset installment schedule, and no recurrence of its own
//   - The instance runs through the normal creation path, so totals, due
//     date, and the approval check all apply to it
//   - An auto-approve template confirms its instance immediately, unless
//     the instance crossed the approval threshold and must wait for the
//     approval workflow instead
type RecurringOrderScheduler struct{}

// NewRecurringOrderScheduler creates a new RecurringOrderScheduler instance.
func NewRecurringOrderScheduler() RecurringOrderScheduler {
	return RecurringOrderScheduler{}
}

// NextDate computes when the recurrence fires again: now advanced by
// interval frequency units.
func (s RecurringOrderScheduler) NextDate(cfg order.RecurringConfig, now time.Time) time.Time {
	return cfg.Frequency.Next(now, cfg.Interval)
}

// GenerateInstance clones the recurring template into a new order instance
// dated now, carrying the template's items, shipping charge, payment terms
// (with allocation state reset), priority, notes, and shipping address.
//
// Returns an error when the original carries no recurrence configuration
// or when the cloned order fails creation-time validation.
func (s RecurringOrderScheduler) GenerateInstance(
	original *order.Order,
	newID kernel.UUID,
	orderNumber string,
	now time.Time,
) (*order.Order, error) {
	if err := original.Validate(); err != nil {
		return nil, err
	}
	cfg := original.Recurring()
	if cfg == nil {
		return nil, errs.NewValueIsRequiredError("recurring configuration")
	}

	terms := original.PaymentTerms()
	for i := range terms.Installments {
		terms.Installments[i].Status = order.InstallmentPending
		terms.Installments[i].PaidAmount = decimal.Zero
		terms.Installments[i].PaidDate = nil
	}

	instance, err := order.NewOrder(order.NewOrderParams{
		ID:              newID,
		TenantID:        original.TenantID(),
		CustomerID:      original.CustomerID(),
		UserID:          original.UserID(),
		OrderNumber:     orderNumber,
		Items:           original.Items(),
		ShippingAmount:  original.ShippingAmount(),
		PaymentTerms:    terms,
		Priority:        original.Priority(),
		Notes:           original.Notes(),
		ShippingAddress: original.ShippingAddress(),
		Now:             now,
	})
	if err != nil {
		return nil, err
	}

	if cfg.AutoApprove && instance.Status() == order.StatusDraft {
		if err := instance.ChangeStatus(
			order.StatusConfirmed, original.UserID(), "Recurring order auto-confirmed", "", now,
		); err != nil {
			return nil, err
		}
	}

	return instance, nil
}
