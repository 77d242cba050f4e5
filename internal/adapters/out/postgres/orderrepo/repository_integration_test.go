package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesAllFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.ClientID(), retrieved.ClientID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.True(retrieved.Amount().IsEqual(testOrder.Amount()))
	suite.Equal(testOrder.Pages(), retrieved.Pages())
	suite.Equal(testOrder.Slides(), retrieved.Slides())
	suite.Equal(testOrder.WorkType(), retrieved.WorkType())
	suite.Nil(retrieved.Worker())
	suite.False(retrieved.EarningsCounted())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound_ReturnsObjectNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndAssignment() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	workerID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AssignWorker(workerID))
	suite.Require().NoError(testOrder.Transition(order.InProgress))
	suite.Require().NoError(testOrder.AttachDeliverable("files/draft-v1.zip"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.Worker())
	suite.True(retrieved.Worker().IsEqual(workerID))
	suite.Equal("files/draft-v1.zip", retrieved.DeliverableRef())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMarkEarningsCounted_FlipsOnce() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	flipped, err := suite.repository.MarkEarningsCounted(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(flipped, "First flip should succeed")

	flipped, err = suite.repository.MarkEarningsCounted(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(flipped, "Second flip must report the flag was already set")

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.EarningsCounted())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListCountedByWorker_FiltersByWorkerAndFlag() {
	ctx := context.Background()
	workerID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	counted := suite.createAssignedOrder(workerID)
	uncounted := suite.createAssignedOrder(workerID)
	otherWorker := suite.createAssignedOrder(kernel.NewUUID())

	for _, o := range []*order.Order{counted, uncounted, otherWorker} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	flipped, err := suite.repository.MarkEarningsCounted(ctx, counted.ID())
	suite.Require().NoError(err)
	suite.True(flipped)
	flipped, err = suite.repository.MarkEarningsCounted(ctx, otherWorker.ID())
	suite.Require().NoError(err)
	suite.True(flipped)

	orders, err := suite.repository.ListCountedByWorker(ctx, workerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(counted.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	amount, err := kernel.NewMoneyFromCents(5000_00)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), amount, 10, 5, order.Coursework)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createAssignedOrder(workerID kernel.UUID) *order.Order {
	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.AssignWorker(workerID))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
