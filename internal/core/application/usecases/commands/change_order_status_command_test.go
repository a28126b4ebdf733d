package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(
		tenantID, orderID, order.StatusConfirmed, actorID, "customer confirmed", "by phone")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.StatusConfirmed, cmd.NewStatus())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, "customer confirmed", cmd.Reason())
	assert.Equal(t, "by phone", cmd.Notes())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewChangeOrderStatusCommand(
		kernel.NewUUID(), invalidID, order.StatusConfirmed, kernel.NewUUID(), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.StatusUnknown, kernel.NewUUID(), "", "")

	require.Error(t, err)
}

func TestChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}

	require.Error(t, cmd.Validate())
}
