package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecuteBulkOperationCommand_ValidInput(t *testing.T) {
	tenantID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewExecuteBulkOperationCommand(
		tenantID, bulkop.TypeCancel, orderIDs, actorID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, bulkop.TypeCancel, cmd.Type())
	assert.Equal(t, orderIDs, cmd.OrderIDs())
	assert.Equal(t, actorID, cmd.ActorID())
}

func TestNewExecuteBulkOperationCommand_NoTargets(t *testing.T) {
	_, err := commands.NewExecuteBulkOperationCommand(
		kernel.NewUUID(), bulkop.TypeCancel, nil, kernel.NewUUID())

	require.Error(t, err)
}

func TestNewExecuteBulkOperationCommand_InvalidType(t *testing.T) {
	_, err := commands.NewExecuteBulkOperationCommand(
		kernel.NewUUID(), bulkop.TypeUnknown,
		[]kernel.UUID{kernel.NewUUID()}, kernel.NewUUID())

	require.Error(t, err)
}

func TestNewExecuteBulkOperationCommand_InvalidTarget(t *testing.T) {
	var invalidTarget kernel.UUID

	_, err := commands.NewExecuteBulkOperationCommand(
		kernel.NewUUID(), bulkop.TypeCancel,
		[]kernel.UUID{kernel.NewUUID(), invalidTarget}, kernel.NewUUID())

	require.Error(t, err)
}

func TestExecuteBulkOperationCommand_Validate_RequiresOperationParameters(t *testing.T) {
	t.Run("status update requires a target status", func(t *testing.T) {
		cmd, err := commands.NewExecuteBulkOperationCommand(
			kernel.NewUUID(), bulkop.TypeStatusUpdate,
			[]kernel.UUID{kernel.NewUUID()}, kernel.NewUUID())
		require.NoError(t, err)

		require.Error(t, cmd.Validate())

		cmd.SetTargetStatus(order.StatusConfirmed)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.StatusConfirmed, cmd.TargetStatus())
	})

	t.Run("priority update requires a target priority", func(t *testing.T) {
		cmd, err := commands.NewExecuteBulkOperationCommand(
			kernel.NewUUID(), bulkop.TypePriorityUpdate,
			[]kernel.UUID{kernel.NewUUID()}, kernel.NewUUID())
		require.NoError(t, err)

		require.Error(t, cmd.Validate())

		cmd.SetTargetPriority(order.PriorityHigh)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.PriorityHigh, cmd.TargetPriority())
	})

	t.Run("cancel needs no extra parameters", func(t *testing.T) {
		cmd, err := commands.NewExecuteBulkOperationCommand(
			kernel.NewUUID(), bulkop.TypeCancel,
			[]kernel.UUID{kernel.NewUUID()}, kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, cmd.Validate())

		cmd.SetReason("seasonal cleanup")
		assert.Equal(t, "seasonal cleanup", cmd.Reason())
	})
}

func TestExecuteBulkOperationCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ExecuteBulkOperationCommand{}

	require.Error(t, cmd.Validate())
}
