package commands_test

import (
	"context"
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBulkOperationRepository struct{ mock.Mock }

func (m *MockBulkOperationRepository) Add(ctx context.Context, aggregate *bulkop.Operation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockBulkOperationRepository) Update(ctx context.Context, aggregate *bulkop.Operation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockBulkOperationRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*bulkop.Operation, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulkop.Operation), args.Error(1)
}

type MockBulkOperationUoW struct{ mock.Mock }

func (m *MockBulkOperationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBulkOperationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBulkOperationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBulkOperationUoW) BulkOperationRepository() ports.BulkOperationRepository {
	args := m.Called()
	return args.Get(0).(ports.BulkOperationRepository)
}

type MockBulkOperationUoWFactory struct{ mock.Mock }

func (m *MockBulkOperationUoWFactory) Create() commands.BulkOperationUoW {
	args := m.Called()
	return args.Get(0).(commands.BulkOperationUoW)
}

func TestExecuteBulkOperationCommandHandler_Handle_CompletesCleanBatch(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	target := newStoredOrder(t, tenantID)
	cmd, err := commands.NewExecuteBulkOperationCommand(
		tenantID, bulkop.TypeCancel, []kernel.UUID{target.ID()}, kernel.NewUUID())
	require.NoError(t, err)
	cmd.SetReason("seasonal cleanup")

	bulkRepo := new(MockBulkOperationRepository)
	bulkUoW := new(MockBulkOperationUoW)
	bulkUoW.On("Begin", ctx).Return(nil)
	bulkUoW.On("Commit", ctx).Return(nil)
	bulkUoW.On("Rollback", ctx).Return(nil)
	bulkUoW.On("BulkOperationRepository").Return(bulkRepo)
	bulkRepo.On("Add", ctx, mock.AnythingOfType("*bulkop.Operation")).Return(nil).Once()
	bulkRepo.On("Update", ctx, mock.AnythingOfType("*bulkop.Operation")).Return(nil).Times(3)

	orderRepo := new(MockOrderRepository)
	orderUoW := new(MockOrderUoW)
	orderUoW.On("Begin", perOrderCtx).Return(nil).Once()
	orderUoW.On("OrderRepository").Return(orderRepo)
	orderUoW.On("Rollback", mock.Anything).Return(nil)
	orderUoW.On("Commit", perOrderCtx).Return(nil).Once()
	orderRepo.On("Get", perOrderCtx, tenantID, target.ID()).Return(target, nil).Once()
	orderRepo.On("Update", perOrderCtx, target).Return(nil).Once()

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(orderUoW)
	bulkFactory := new(MockBulkOperationUoWFactory)
	bulkFactory.On("Create").Return(bulkUoW)

	h := commands.NewExecuteBulkOperationCommandHandler(orderFactory, bulkFactory, discardLogger())
	record, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, bulkop.StatusCompleted, record.Status())
	assert.Equal(t, 1, record.ProcessedCount())
	assert.Equal(t, 1, record.TotalCount())
	assert.Empty(t, record.Errors())

	assert.Equal(t, order.StatusCancelled, target.Status())
	history := target.StatusHistory()
	assert.Equal(t, "seasonal cleanup", history[len(history)-1].Reason)
	bulkRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestExecuteBulkOperationCommandHandler_Handle_IsolatesFailures(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	healthy := newStoredOrder(t, tenantID)
	missingID := kernel.NewUUID()
	cmd, err := commands.NewExecuteBulkOperationCommand(
		tenantID, bulkop.TypeCancel, []kernel.UUID{missingID, healthy.ID()}, kernel.NewUUID())
	require.NoError(t, err)

	bulkRepo := new(MockBulkOperationRepository)
	bulkUoW := new(MockBulkOperationUoW)
	bulkUoW.On("Begin", ctx).Return(nil)
	bulkUoW.On("Commit", ctx).Return(nil)
	bulkUoW.On("Rollback", ctx).Return(nil)
	bulkUoW.On("BulkOperationRepository").Return(bulkRepo)
	bulkRepo.On("Add", ctx, mock.AnythingOfType("*bulkop.Operation")).Return(nil).Once()
	bulkRepo.On("Update", ctx, mock.AnythingOfType("*bulkop.Operation")).Return(nil).Times(4)

	orderRepo := new(MockOrderRepository)
	orderUoW := new(MockOrderUoW)
	orderUoW.On("Begin", perOrderCtx).Return(nil).Twice()
	orderUoW.On("OrderRepository").Return(orderRepo)
	orderUoW.On("Rollback", mock.Anything).Return(nil)
	orderUoW.On("Commit", perOrderCtx).Return(nil).Once()
	orderRepo.On("Get", perOrderCtx, tenantID, missingID).
		Return(nil, errs.NewObjectNotFoundError("order", missingID.String())).Once()
	orderRepo.On("Get", perOrderCtx, tenantID, healthy.ID()).Return(healthy, nil).Once()
	orderRepo.On("Update", perOrderCtx, healthy).Return(nil).Once()

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(orderUoW)
	bulkFactory := new(MockBulkOperationUoWFactory)
	bulkFactory.On("Create").Return(bulkUoW)

	h := commands.NewExecuteBulkOperationCommandHandler(orderFactory, bulkFactory, discardLogger())
	record, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, bulkop.StatusFailed, record.Status())
	assert.Equal(t, 2, record.ProcessedCount())
	assert.Equal(t, 2, record.TotalCount())
	require.Len(t, record.Errors(), 1)
	assert.Contains(t, record.Errors()[0], missingID.String())

	// The healthy target is still cancelled despite the earlier failure.
	assert.Equal(t, order.StatusCancelled, healthy.Status())
	bulkRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestExecuteBulkOperationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ExecuteBulkOperationCommand{} // not constructed properly

	h := commands.NewExecuteBulkOperationCommandHandler(
		new(MockOrderUoWFactory), new(MockBulkOperationUoWFactory), discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
