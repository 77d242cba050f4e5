package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordOrderCompletionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), workerID, order.Completed)

	cmd, err := commands.NewRecordOrderCompletionCommand(aggregate.ID())
	require.NoError(t, err)

	progress := newApprovedWorker(t, workerID)

	orderRepo := new(MockOrderRepository)
	workerRepo := new(MockWorkerRepository)
	tierRepo := new(MockTierRepository)
	uow := new(MockUoW)

	uow.On("OrderRepository").Return(orderRepo)
	uow.On("WorkerRepository").Return(workerRepo)
	uow.On("TierRepository").Return(tierRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("MarkEarningsCounted", ctx, aggregate.ID()).Return(true, nil).Once(),
		workerRepo.On("Get", ctx, workerID).Return(progress, nil).Once(),
		tierRepo.On("GetAll", ctx).Return(testSchedule(t), nil).Once(),
		workerRepo.On("CreditBalance", ctx, workerID, mustMoney(t, 2000_00)).Return(nil).Once(),
		workerRepo.On("Update", ctx, progress).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordOrderCompletionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	workerRepo.AssertExpectations(t)
	assert.Equal(t, 1, progress.CompletedInTier())
}

func TestRecordOrderCompletionCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), workerID, order.Completed)

	cmd, err := commands.NewRecordOrderCompletionCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)

	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("MarkEarningsCounted", ctx, aggregate.ID()).Return(false, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordOrderCompletionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	workerRepo.AssertNotCalled(t, "CreditBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordOrderCompletionCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	aggregate := newOrderInStatus(t, kernel.NewUUID(), workerID, order.Delivered)

	cmd, err := commands.NewRecordOrderCompletionCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordOrderCompletionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotCompleted)
	orderRepo.AssertNotCalled(t, "MarkEarningsCounted", mock.Anything, mock.Anything)
}
