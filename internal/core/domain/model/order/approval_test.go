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

// newOrderWithTotal creates a draft or pending-approval order whose total
// equals the given amount.
func newOrderWithTotal(t *testing.T, total int64) *order.Order {
	t.Helper()

	item, err := order.NewItem(
		kernel.NewUUID(), "Espresso machine", "SKU-900", 1,
		decimal.NewFromInt(total), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:          kernel.NewUUID(),
		TenantID:    kernel.NewUUID(),
		CustomerID:  kernel.NewUUID(),
		UserID:      kernel.NewUUID(),
		OrderNumber: "ORD-20260310-0001",
		Items:       []order.Item{item},
		Now:         time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func TestRequiresApproval(t *testing.T) {
	testCases := []struct {
		name     string
		total    int64
		expected bool
	}{
		{"small order", 100, false},
		{"exactly at manager limit", 10000, false},
		{"just above manager limit", 10001, true},
		{"above owner limit", 60000, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.RequiresApproval(decimal.NewFromInt(tc.total)))
		})
	}
}

func TestNewApprovalWorkflow(t *testing.T) {
	workflow := order.NewApprovalWorkflow()

	assert.Equal(t, order.ApprovalPending, workflow.Status)
	assert.Equal(t, 1, workflow.CurrentStep)
	assert.Equal(t, 2, workflow.TotalSteps)
	require.Len(t, workflow.Steps, 2)
	assert.Equal(t, order.ApproverRoleManager, workflow.Steps[0].Role)
	assert.Equal(t, order.ApproverRoleOwner, workflow.Steps[1].Role)
	assert.Equal(t, order.ApprovalPending, workflow.Steps[0].Status)
	assert.Equal(t, order.ApprovalPending, workflow.Steps[1].Status)
}

func TestOrder_Approve(t *testing.T) {
	manager := kernel.NewUUID()
	owner := kernel.NewUUID()
	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)

	t.Run("should attach workflow to order above the threshold", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)

		assert.Equal(t, order.StatusPendingApproval, o.Status())
		require.NotNil(t, o.ApprovalWorkflow())
	})

	t.Run("should not attach workflow to order below the threshold", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)

		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Nil(t, o.ApprovalWorkflow())
	})

	t.Run("should advance workflow on first approval", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)

		err := o.Approve(manager, "within budget", now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPendingApproval, o.Status())

		workflow := o.ApprovalWorkflow()
		assert.Equal(t, order.ApprovalPending, workflow.Status)
		assert.Equal(t, 2, workflow.CurrentStep)
		assert.Equal(t, order.ApprovalApproved, workflow.Steps[0].Status)
		require.NotNil(t, workflow.Steps[0].ApproverID)
		assert.True(t, workflow.Steps[0].ApproverID.IsEqual(manager))
		assert.Equal(t, "within budget", workflow.Steps[0].Comments)
		require.NotNil(t, workflow.Steps[0].DecidedAt)
	})

	t.Run("should resolve workflow and approve order on final approval", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)
		require.NoError(t, o.Approve(manager, "", now))

		err := o.Approve(owner, "sign-off", now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.StatusApproved, o.Status())

		workflow := o.ApprovalWorkflow()
		assert.Equal(t, order.ApprovalApproved, workflow.Status)
		assert.Equal(t, order.ApprovalApproved, workflow.Steps[1].Status)

		history := o.StatusHistory()
		require.NotEmpty(t, history)
		last := history[len(history)-1]
		assert.Equal(t, order.StatusApproved, last.Status)
		assert.Equal(t, "Order approved", last.Reason)
	})

	t.Run("should fail to approve a resolved workflow", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)
		require.NoError(t, o.Approve(manager, "", now))
		require.NoError(t, o.Approve(owner, "", now))

		err := o.Approve(owner, "again", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "workflow is already Approved")
		assert.Equal(t, order.StatusApproved, o.Status())
	})

	t.Run("should fail to approve an order cancelled while awaiting approval", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled, manager, "customer backed out", "", now))

		err := o.Approve(manager, "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot approve order in status Cancelled")

		workflow := o.ApprovalWorkflow()
		assert.Equal(t, order.ApprovalPending, workflow.Status)
		assert.Equal(t, order.ApprovalPending, workflow.Steps[0].Status)
		assert.Nil(t, workflow.Steps[0].ApproverID)
	})

	t.Run("should fail to approve an order without a workflow", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)

		err := o.Approve(manager, "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "approval workflow")
		assert.Equal(t, order.StatusDraft, o.Status())
	})

	t.Run("should fail with unconstructed approver", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)
		var invalidApprover kernel.UUID

		err := o.Approve(invalidApprover, "", now)

		require.Error(t, err)
		assert.Equal(t, order.StatusPendingApproval, o.Status())
	})
}

func TestOrder_Reject(t *testing.T) {
	manager := kernel.NewUUID()
	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)

	t.Run("should cancel the order on rejection", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)

		err := o.Reject(manager, "over budget", now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())

		workflow := o.ApprovalWorkflow()
		assert.Equal(t, order.ApprovalRejected, workflow.Status)
		assert.Equal(t, order.ApprovalRejected, workflow.Steps[0].Status)
		assert.Equal(t, "over budget", workflow.Steps[0].Comments)

		history := o.StatusHistory()
		last := history[len(history)-1]
		assert.Equal(t, order.StatusCancelled, last.Status)
		assert.Equal(t, "over budget", last.Reason)
	})

	t.Run("should allow rejection at the second step", func(t *testing.T) {
		o := newOrderWithTotal(t, 60000)
		require.NoError(t, o.Approve(manager, "", now))

		err := o.Reject(kernel.NewUUID(), "owner declined", now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())

		workflow := o.ApprovalWorkflow()
		assert.Equal(t, order.ApprovalApproved, workflow.Steps[0].Status)
		assert.Equal(t, order.ApprovalRejected, workflow.Steps[1].Status)
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)

		err := o.Reject(manager, "", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "rejection reason")
		assert.Equal(t, order.StatusPendingApproval, o.Status())
	})

	t.Run("should fail to reject a resolved workflow", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)
		require.NoError(t, o.Reject(manager, "over budget", now))

		err := o.Reject(manager, "again", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "workflow is already Rejected")
	})

	t.Run("should fail to reject an order cancelled while awaiting approval", func(t *testing.T) {
		o := newOrderWithTotal(t, 15000)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled, manager, "customer backed out", "", now))

		err := o.Reject(manager, "too late", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot reject order in status Cancelled")
		assert.Equal(t, order.ApprovalPending, o.ApprovalWorkflow().Status)
	})

	t.Run("should fail to reject an order without a workflow", func(t *testing.T) {
		o := newOrderWithTotal(t, 500)

		err := o.Reject(manager, "no", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParseApproverRole(t *testing.T) {
	t.Run("should round-trip every valid role", func(t *testing.T) {
		for _, role := range []order.ApproverRole{order.ApproverRoleManager, order.ApproverRoleOwner} {
			parsed, err := order.ParseApproverRole(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("should fail for unknown name", func(t *testing.T) {
		_, err := order.ParseApproverRole("Supervisor")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseApprovalStatus(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		statuses := []order.ApprovalStatus{
			order.ApprovalPending, order.ApprovalApproved, order.ApprovalRejected,
		}
		for _, status := range statuses {
			parsed, err := order.ParseApprovalStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should fail for unknown name", func(t *testing.T) {
		_, err := order.ParseApprovalStatus("Escalated")

		require.Error(t, err)
	})
}
