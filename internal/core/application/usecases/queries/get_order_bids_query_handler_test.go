package queries_test

import (
	"context"
	"testing"
	"time"

	"workorders/internal/adapters/out/postgres/bidrepo"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/bid"
	"workorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderBidsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderBidsQueryHandler
	bidRepo   *bidrepo.GormBidRepository
}

func (suite *GetOrderBidsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&bidrepo.BidDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderBidsQueryHandler(db)
	suite.bidRepo = bidrepo.NewGormBidRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderBidsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderBidsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bids CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderBidsQueryHandlerTestSuite) TestHandle_NoBids_ReturnsEmptySlice() {
	query, err := queries.NewGetOrderBidsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderBidsQueryHandlerTestSuite) TestHandle_ReturnsOnlyThatOrdersBids() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	mine1 := suite.saveBid(orderID, 3000_00, "ready to start")
	mine2 := suite.saveBid(orderID, 2800_00, "done similar work")
	suite.saveBid(kernel.NewUUID(), 5000_00, "other order")

	query, err := queries.NewGetOrderBidsQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[mine1.ID()])
	suite.True(resultIDs[mine2.ID()])
}

func (suite *GetOrderBidsQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	saved := suite.saveBid(orderID, 3200_00, "native speaker, sources included")

	query, err := queries.NewGetOrderBidsQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Equal(saved.ID(), result[0].ID)
	suite.Equal(saved.WorkerID(), result[0].WorkerID)
	suite.Equal(int64(3200_00), result[0].Amount.Cents())
	suite.Equal("native speaker, sources included", result[0].Message)
	suite.Equal(bid.Pending.String(), result[0].Status)
}

func (suite *GetOrderBidsQueryHandlerTestSuite) TestHandle_ReflectsStatusChanges() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	accepted := suite.saveBid(orderID, 3000_00, "")
	loser := suite.saveBid(orderID, 2000_00, "")

	suite.Require().NoError(accepted.Accept())
	suite.Require().NoError(suite.bidRepo.Update(ctx, accepted))
	suite.Require().NoError(suite.bidRepo.RejectOtherPending(ctx, orderID, accepted.ID()))

	query, err := queries.NewGetOrderBidsQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	statusByID := make(map[kernel.UUID]string)
	for _, r := range result {
		statusByID[r.ID] = r.Status
	}
	suite.Equal(bid.Accepted.String(), statusByID[accepted.ID()])
	suite.Equal(bid.Rejected.String(), statusByID[loser.ID()])
}

func (suite *GetOrderBidsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderBidsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetOrderBidsQueryIsNotConstructed)
}

func (suite *GetOrderBidsQueryHandlerTestSuite) saveBid(
	orderID kernel.UUID,
	cents int64,
	message string,
) *bid.Bid {
	amount, err := kernel.NewMoneyFromCents(cents)
	suite.Require().NoError(err)

	b, err := bid.NewBid(kernel.NewUUID(), orderID, kernel.NewUUID(), amount, message)
	suite.Require().NoError(err)

	err = suite.bidRepo.Add(context.Background(), b)
	suite.Require().NoError(err)
	return b
}

func TestGetOrderBidsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderBidsQueryHandlerTestSuite))
}
