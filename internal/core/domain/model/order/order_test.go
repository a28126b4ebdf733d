package order_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewItem(t *testing.T, name string, quantity int, unitPrice, discountPercent, taxPercent string) order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), name, "", quantity,
		decimal.RequireFromString(unitPrice),
		decimal.RequireFromString(discountPercent),
		decimal.RequireFromString(taxPercent))
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	userID := kernel.NewUUID()
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	validParams := func() order.NewOrderParams {
		return order.NewOrderParams{
			ID:          orderID,
			TenantID:    tenantID,
			CustomerID:  customerID,
			UserID:      userID,
			OrderNumber: "ORD-20260310-0001",
			Items: []order.Item{
				mustNewItem(t, "Espresso beans 1kg", 2, "10", "10", "5"),
				mustNewItem(t, "Paper cups", 1, "8", "0", "5"),
			},
			Now: now,
		}
	}

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validParams())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(orderID))
		assert.True(t, o.TenantID().IsEqual(tenantID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Equal(t, "ORD-20260310-0001", o.OrderNumber())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, 0, o.Version())
		assert.True(t, o.OrderDate().Equal(now))
	})

	t.Run("should compute totals from items", func(t *testing.T) {
		o, err := order.NewOrder(validParams())

		require.NoError(t, err)
		// 18.9 + 8.4 across two lines
		assert.True(t, o.Subtotal().Equal(decimal.NewFromInt(28)), "subtotal %s", o.Subtotal())
		assert.True(t, o.DiscountAmount().Equal(decimal.NewFromInt(2)))
		assert.True(t, o.TaxAmount().Equal(decimal.RequireFromString("1.3")))
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("27.3")))
		assert.True(t, o.RemainingAmount().Equal(o.TotalAmount()))
		assert.True(t, o.PaidAmount().Equal(decimal.Zero))
		assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus())
	})

	t.Run("should add shipping on top of item totals", func(t *testing.T) {
		params := validParams()
		params.ShippingAmount = decimal.RequireFromString("5.50")

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		assert.True(t, o.ShippingAmount().Equal(decimal.RequireFromString("5.50")))
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("32.8")))
	})

	t.Run("should start in draft with one history entry", func(t *testing.T) {
		o, err := order.NewOrder(validParams())

		require.NoError(t, err)
		assert.Equal(t, order.StatusDraft, o.Status())

		history := o.StatusHistory()
		require.Len(t, history, 1)
		assert.Equal(t, order.StatusDraft, history[0].Status)
		assert.True(t, history[0].ChangedBy.IsEqual(userID))
		assert.Equal(t, "Order created", history[0].Reason)
		assert.True(t, history[0].Timestamp.Equal(now))
	})

	t.Run("should start in pending approval above the threshold", func(t *testing.T) {
		params := validParams()
		params.Items = []order.Item{mustNewItem(t, "Espresso machine", 1, "15000", "0", "0")}

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPendingApproval, o.Status())
		require.NotNil(t, o.ApprovalWorkflow())

		history := o.StatusHistory()
		require.Len(t, history, 1)
		assert.Equal(t, "Order created, approval required", history[0].Reason)
	})

	t.Run("should default payment terms to net thirty", func(t *testing.T) {
		o, err := order.NewOrder(validParams())

		require.NoError(t, err)
		assert.Equal(t, order.PaymentTermsNetDays, o.PaymentTerms().Type)
		assert.Equal(t, 30, o.PaymentTerms().NetDays)
		assert.True(t, o.DueDate().Equal(now.AddDate(0, 0, 30)))
	})

	t.Run("should resolve due date from supplied terms", func(t *testing.T) {
		params := validParams()
		params.PaymentTerms = order.PaymentTerms{Type: order.PaymentTermsImmediate}

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		assert.True(t, o.DueDate().Equal(now))
	})

	t.Run("should default priority to normal", func(t *testing.T) {
		o, err := order.NewOrder(validParams())

		require.NoError(t, err)
		assert.Equal(t, order.PriorityNormal, o.Priority())
	})

	t.Run("should keep supplied priority", func(t *testing.T) {
		params := validParams()
		params.Priority = order.PriorityUrgent

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		assert.Equal(t, order.PriorityUrgent, o.Priority())
	})

	t.Run("should copy recurring configuration", func(t *testing.T) {
		params := validParams()
		recurring := &order.RecurringConfig{
			Enabled:       true,
			Frequency:     order.FrequencyWeekly,
			Interval:      1,
			NextOrderDate: now.AddDate(0, 0, 7),
		}
		params.Recurring = recurring

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		require.NotNil(t, o.Recurring())
		assert.Equal(t, order.FrequencyWeekly, o.Recurring().Frequency)

		// Mutating the caller's config must not affect the aggregate.
		recurring.Interval = 99
		assert.Equal(t, 1, o.Recurring().Interval)
	})

	t.Run("should fail with invalid recurring configuration", func(t *testing.T) {
		params := validParams()
		params.Recurring = &order.RecurringConfig{Frequency: order.FrequencyWeekly, Interval: 0}

		_, err := order.NewOrder(params)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed identity", func(t *testing.T) {
		params := validParams()
		params.ID = kernel.UUID{}
		params.TenantID = kernel.UUID{}

		_, err := order.NewOrder(params)

		require.Error(t, err)
	})

	t.Run("should fail with empty order number", func(t *testing.T) {
		params := validParams()
		params.OrderNumber = ""

		_, err := order.NewOrder(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order number")
	})

	t.Run("should fail without items", func(t *testing.T) {
		params := validParams()
		params.Items = nil

		_, err := order.NewOrder(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should fail with negative shipping amount", func(t *testing.T) {
		params := validParams()
		params.ShippingAmount = decimal.NewFromInt(-1)

		_, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shipping amount")
	})

	t.Run("should fail with invalid payment terms", func(t *testing.T) {
		params := validParams()
		params.PaymentTerms = order.PaymentTerms{Type: order.PaymentTermsNetDays, NetDays: -5}

		_, err := order.NewOrder(params)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	actor := kernel.NewUUID()
	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)

	newDraftOrder := func(t *testing.T) *order.Order {
		t.Helper()
		return newOrderWithTotal(t, 500)
	}

	// shipOrder walks a draft order to ReadyToShip.
	shipReady := func(t *testing.T, o *order.Order) {
		t.Helper()
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, actor, "", "", now))
		require.NoError(t, o.ChangeStatus(order.StatusInProduction, actor, "", "", now))
		require.NoError(t, o.ChangeStatus(order.StatusReadyToShip, actor, "", "", now))
	}

	t.Run("should apply a legal transition and append history", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.ChangeStatus(order.StatusConfirmed, actor, "customer confirmed", "by phone", now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())

		history := o.StatusHistory()
		require.Len(t, history, 2)
		last := history[1]
		assert.Equal(t, order.StatusConfirmed, last.Status)
		assert.True(t, last.ChangedBy.IsEqual(actor))
		assert.Equal(t, "customer confirmed", last.Reason)
		assert.Equal(t, "by phone", last.Notes)
		assert.True(t, last.Timestamp.Equal(now))
	})

	t.Run("should reject an illegal transition and leave the order unchanged", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.ChangeStatus(order.StatusShipped, actor, "", "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("should set expected delivery date on entering shipped", func(t *testing.T) {
		o := newDraftOrder(t)
		shipReady(t, o)
		require.Nil(t, o.ExpectedDeliveryDate())

		shippedAt := now.Add(2 * time.Hour)
		err := o.ChangeStatus(order.StatusShipped, actor, "", "", shippedAt)

		require.NoError(t, err)
		require.NotNil(t, o.ExpectedDeliveryDate())
		assert.True(t, o.ExpectedDeliveryDate().Equal(shippedAt.Add(72*time.Hour)))
	})

	t.Run("should record actual delivery date on entering delivered", func(t *testing.T) {
		o := newDraftOrder(t)
		shipReady(t, o)
		require.NoError(t, o.ChangeStatus(order.StatusShipped, actor, "", "", now))

		deliveredAt := now.AddDate(0, 0, 2)
		err := o.ChangeStatus(order.StatusDelivered, actor, "", "", deliveredAt)

		require.NoError(t, err)
		require.NotNil(t, o.ActualDeliveryDate())
		assert.True(t, o.ActualDeliveryDate().Equal(deliveredAt))
	})

	t.Run("should reject transitions out of terminal statuses", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled, actor, "mind changed", "", now))

		err := o.ChangeStatus(order.StatusDraft, actor, "", "", now)

		require.Error(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should fail with unconstructed actor", func(t *testing.T) {
		o := newDraftOrder(t)
		var invalidActor kernel.UUID

		err := o.ChangeStatus(order.StatusConfirmed, invalidActor, "", "", now)

		require.Error(t, err)
		assert.Equal(t, order.StatusDraft, o.Status())
	})

	t.Run("should support hold and resume", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, actor, "", "", now))
		require.NoError(t, o.ChangeStatus(order.StatusInProduction, actor, "", "", now))

		require.NoError(t, o.ChangeStatus(order.StatusOnHold, actor, "stock shortage", "", now))
		assert.Equal(t, order.StatusOnHold, o.Status())

		require.NoError(t, o.ChangeStatus(order.StatusInProduction, actor, "stock arrived", "", now))
		assert.Equal(t, order.StatusInProduction, o.Status())
	})
}

func TestOrder_CanModifyAndCanDelete(t *testing.T) {
	actor := kernel.NewUUID()
	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)

	t.Run("should allow modification in draft and pending approval only", func(t *testing.T) {
		draft := newOrderWithTotal(t, 500)
		assert.True(t, draft.CanModify())

		pending := newOrderWithTotal(t, 15000)
		assert.True(t, pending.CanModify())

		confirmed := newOrderWithTotal(t, 500)
		require.NoError(t, confirmed.ChangeStatus(order.StatusConfirmed, actor, "", "", now))
		assert.False(t, confirmed.CanModify())
	})

	t.Run("should allow deletion in draft and cancelled only", func(t *testing.T) {
		draft := newOrderWithTotal(t, 500)
		assert.True(t, draft.CanDelete())

		cancelled := newOrderWithTotal(t, 500)
		require.NoError(t, cancelled.ChangeStatus(order.StatusCancelled, actor, "", "", now))
		assert.True(t, cancelled.CanDelete())

		confirmed := newOrderWithTotal(t, 500)
		require.NoError(t, confirmed.ChangeStatus(order.StatusConfirmed, actor, "", "", now))
		assert.False(t, confirmed.CanDelete())

		pending := newOrderWithTotal(t, 15000)
		assert.False(t, pending.CanDelete())
	})
}

func TestOrder_Update(t *testing.T) {
	actor := kernel.NewUUID()
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)

	t.Run("should replace items and recompute totals", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)

		err := o.Update(order.UpdateParams{
			Items: []order.Item{mustNewItem(t, "Replacement", 3, "100", "0", "0")},
		}, now)

		require.NoError(t, err)
		assert.Len(t, o.Items(), 1)
		assert.True(t, o.TotalAmount().Equal(decimal.NewFromInt(300)))
		assert.True(t, o.RemainingAmount().Equal(decimal.NewFromInt(300)))
	})

	t.Run("should update shipping amount alone", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)
		shipping := decimal.NewFromInt(20)

		err := o.Update(order.UpdateParams{ShippingAmount: &shipping}, now)

		require.NoError(t, err)
		assert.True(t, o.ShippingAmount().Equal(shipping))
		assert.True(t, o.TotalAmount().Equal(decimal.NewFromInt(520)))
	})

	t.Run("should re-resolve due date on payment terms change", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)
		terms := order.PaymentTerms{Type: order.PaymentTermsNetDays, NetDays: 7}

		err := o.Update(order.UpdateParams{PaymentTerms: &terms}, now)

		require.NoError(t, err)
		assert.Equal(t, 7, o.PaymentTerms().NetDays)
		assert.True(t, o.DueDate().Equal(now.AddDate(0, 0, 7)))
	})

	t.Run("should update priority, notes and shipping address", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)
		priority := order.PriorityHigh
		notes := "call before delivery"
		address := "12 Main St"

		err := o.Update(order.UpdateParams{
			Priority:        &priority,
			Notes:           &notes,
			ShippingAddress: &address,
		}, now)

		require.NoError(t, err)
		assert.Equal(t, order.PriorityHigh, o.Priority())
		assert.Equal(t, notes, o.Notes())
		assert.Equal(t, address, o.ShippingAddress())
	})

	t.Run("should leave untouched fields alone", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)
		itemsBefore := o.Items()
		totalBefore := o.TotalAmount()

		notes := "only notes change"
		err := o.Update(order.UpdateParams{Notes: &notes}, now)

		require.NoError(t, err)
		assert.Equal(t, itemsBefore, o.Items())
		assert.True(t, o.TotalAmount().Equal(totalBefore))
	})

	t.Run("should fail once the order left a modifiable status", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, actor, "", "", now))

		notes := "too late"
		err := o.Update(order.UpdateParams{Notes: &notes}, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot be modified")
	})

	t.Run("should fail when replacing items with an empty list", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)

		err := o.Update(order.UpdateParams{Items: []order.Item{}}, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.Items(), 1)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	t.Run("should rehydrate persisted state as stored", func(t *testing.T) {
		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              kernel.NewUUID(),
			TenantID:        kernel.NewUUID(),
			CustomerID:      kernel.NewUUID(),
			UserID:          kernel.NewUUID(),
			OrderNumber:     "ORD-20260310-0042",
			Items:           []order.Item{mustNewItem(t, "Espresso beans 1kg", 2, "10", "10", "5")},
			Subtotal:        decimal.NewFromInt(20),
			DiscountAmount:  decimal.NewFromInt(2),
			TaxAmount:       decimal.RequireFromString("0.9"),
			TotalAmount:     decimal.RequireFromString("18.9"),
			Status:          order.StatusConfirmed,
			Priority:        order.PriorityHigh,
			PaymentStatus:   order.PaymentStatusPartial,
			PaymentTerms:    order.DefaultPaymentTerms(),
			DueDate:         now.AddDate(0, 0, 30),
			PaidAmount:      decimal.NewFromInt(10),
			RemainingAmount: decimal.RequireFromString("8.9"),
			OrderDate:       now,
			Version:         7,
		})

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.Equal(t, order.StatusConfirmed, restored.Status())
		assert.Equal(t, order.PriorityHigh, restored.Priority())
		assert.Equal(t, 7, restored.Version())
		assert.True(t, restored.PaidAmount().Equal(decimal.NewFromInt(10)))
	})

	t.Run("should fail with an invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:          kernel.NewUUID(),
			TenantID:    kernel.NewUUID(),
			CustomerID:  kernel.NewUUID(),
			UserID:      kernel.NewUUID(),
			OrderNumber: "ORD-20260310-0042",
			Status:      order.StatusUnknown,
		})

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed identity", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			OrderNumber: "ORD-20260310-0042",
			Status:      order.StatusDraft,
		})

		require.Error(t, err)
	})
}

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2026, time.May, 14, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "ORD-20260514-0007", order.FormatOrderNumber(day, 7))
	assert.Equal(t, "ORD-20260514-0001", order.FormatOrderNumber(day, 1))
	assert.Equal(t, "ORD-20260514-12345", order.FormatOrderNumber(day, 12345))
}
