package commands_test

import (
	"context"
	"testing"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/bid"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/payout"
	"workorders/internal/core/domain/model/worker"
	"workorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) MarkEarningsCounted(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListCountedByWorker(
	ctx context.Context,
	workerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBidRepository struct{ mock.Mock }

func (m *MockBidRepository) Add(ctx context.Context, b *bid.Bid) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBidRepository) Update(ctx context.Context, b *bid.Bid) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) GetForOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) HasPendingForWorker(
	ctx context.Context,
	orderID, workerID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, orderID, workerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBidRepository) RejectOtherPending(
	ctx context.Context,
	orderID, acceptedBidID kernel.UUID,
) error {
	args := m.Called(ctx, orderID, acceptedBidID)
	return args.Error(0)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, p *worker.Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, p *worker.Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, workerID kernel.UUID) (*worker.Progress, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Progress), args.Error(1)
}

func (m *MockWorkerRepository) ReserveBalance(
	ctx context.Context,
	workerID kernel.UUID,
	amount kernel.Money,
) (bool, error) {
	args := m.Called(ctx, workerID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkerRepository) CreditBalance(
	ctx context.Context,
	workerID kernel.UUID,
	amount kernel.Money,
) error {
	args := m.Called(ctx, workerID, amount)
	return args.Error(0)
}

func (m *MockWorkerRepository) SetBalance(
	ctx context.Context,
	workerID kernel.UUID,
	amount kernel.Money,
) error {
	args := m.Called(ctx, workerID, amount)
	return args.Error(0)
}

func (m *MockWorkerRepository) ListApproved(ctx context.Context) ([]*worker.Progress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Progress), args.Error(1)
}

type MockPayoutRepository struct{ mock.Mock }

func (m *MockPayoutRepository) Add(ctx context.Context, p *payout.PayoutRequest) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPayoutRepository) Update(ctx context.Context, p *payout.PayoutRequest) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.PayoutRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payout.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRepository) UpdateStatusIf(
	ctx context.Context,
	id kernel.UUID,
	from, to payout.Status,
) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayoutRepository) ListByStatus(
	ctx context.Context,
	status payout.Status,
) ([]*payout.PayoutRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payout.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRepository) SumNonRejectedForWorker(
	ctx context.Context,
	workerID kernel.UUID,
) (kernel.Money, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockTierRepository struct{ mock.Mock }

func (m *MockTierRepository) GetAll(ctx context.Context) (worker.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(worker.Schedule), args.Error(1)
}

func (m *MockTierRepository) Seed(ctx context.Context, schedule worker.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

// MockUoW implements every unit-of-work combination the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BidRepository() ports.BidRepository {
	args := m.Called()
	return args.Get(0).(ports.BidRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) PayoutRepository() ports.PayoutRepository {
	args := m.Called()
	return args.Get(0).(ports.PayoutRepository)
}

func (m *MockUoW) TierRepository() ports.TierRepository {
	args := m.Called()
	return args.Get(0).(ports.TierRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBiddingUoWFactory struct{ mock.Mock }

func (m *MockBiddingUoWFactory) Create() commands.BiddingUoW {
	args := m.Called()
	return args.Get(0).(commands.BiddingUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockPayoutUoWFactory struct{ mock.Mock }

func (m *MockPayoutUoWFactory) Create() commands.PayoutUoW {
	args := m.Called()
	return args.Get(0).(commands.PayoutUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, recipientID kernel.UUID, event ports.Event) {
	m.Called(ctx, recipientID, event)
}

type MockMailDispatcher struct{ mock.Mock }

func (m *MockMailDispatcher) Send(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

type MockPaymentProcessor struct{ mock.Mock }

func (m *MockPaymentProcessor) ProcessPayout(
	ctx context.Context,
	request *payout.PayoutRequest,
) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

// Test data helpers shared across handler tests.

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	amount, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return amount
}

func newPendingOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), clientID, mustMoney(t, 300_00), 10, 0, order.Essay,
	)
	require.NoError(t, err)
	return aggregate
}

func newOrderInStatus(t *testing.T, clientID, workerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), clientID, &workerID, nil, status,
		mustMoney(t, 300_00), 10, 0, order.Essay, "files/deliverable.zip", false, now, now,
	)
	require.NoError(t, err)
	return aggregate
}

func newApprovedWorker(t *testing.T, workerID kernel.UUID) *worker.Progress {
	t.Helper()
	progress, err := worker.NewProgress(workerID)
	require.NoError(t, err)
	return progress
}

func newPendingBid(t *testing.T, orderID, workerID kernel.UUID) *bid.Bid {
	t.Helper()
	placed, err := bid.NewBid(kernel.NewUUID(), orderID, workerID, mustMoney(t, 250_00), "on it")
	require.NoError(t, err)
	return placed
}

func newPendingPayout(t *testing.T, workerID kernel.UUID, cents int64) *payout.PayoutRequest {
	t.Helper()
	request, err := payout.NewPayoutRequest(
		kernel.NewUUID(), workerID, mustMoney(t, cents), payout.Card, "4111-xxxx",
	)
	require.NoError(t, err)
	return request
}

func testSchedule(t *testing.T) worker.Schedule {
	t.Helper()
	schedule, err := worker.DefaultSchedule()
	require.NoError(t, err)
	return schedule
}
