package queries_test

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/adapters/out/postgres/masterrepo"
	"fieldservice/internal/adapters/out/postgres/orderrepo"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
	"fieldservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllMastersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllMastersQueryHandler
}

func (suite *GetAllMastersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&masterrepo.MasterDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllMastersQueryHandler(db)
}

func (suite *GetAllMastersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllMastersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE masters, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllMastersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllMastersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllMastersQueryHandlerTestSuite) TestHandle_WithMasters_ReturnsAllOrderedByName() {
	suite.saveMaster("Charlie", 2.0, false, kernel.NewGeoPoint(3, 3))
	alice := suite.saveMaster("Alice", 4.8, true, kernel.NewGeoPoint(1, 1))
	suite.saveMaster("Bob", 3.5, true, kernel.NewGeoPoint(2, 2))

	query := queries.NewGetAllMastersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Alice", result[0].Name)
	suite.Equal(alice.ID(), result[0].ID)
	suite.InDelta(4.8, result[0].Rating, 1e-9)
	suite.True(result[0].Available)
	suite.InDelta(1.0, result[0].Location.Lat(), 1e-9)

	suite.Equal("Bob", result[1].Name)
	suite.Equal("Charlie", result[2].Name)
	suite.False(result[2].Available)
}

func (suite *GetAllMastersQueryHandlerTestSuite) TestHandle_CurrentLoad_CountsOnlyActiveOrders() {
	busy := suite.saveMaster("Busy", 4.0, true, kernel.NewGeoPoint(1, 1))
	suite.saveMaster("Idle", 4.0, true, kernel.NewGeoPoint(2, 2))

	busyID := busy.ID()
	suite.saveOrderWithStatus(order.Assigned, &busyID)
	suite.saveOrderWithStatus(order.InProgress, &busyID)
	suite.saveOrderWithStatus(order.Completed, &busyID)
	suite.saveOrderWithStatus(order.New, nil)

	query := queries.NewGetAllMastersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byName := make(map[string]queries.MasterQueryResponse)
	for _, r := range result {
		byName[r.Name] = r
	}

	suite.Equal(2, byName["Busy"].CurrentLoad)
	suite.Equal(0, byName["Idle"].CurrentLoad)
}

func (suite *GetAllMastersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllMastersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllMastersQuery constructor")
}

func (suite *GetAllMastersQueryHandlerTestSuite) saveMaster(
	name string, rating float64, available bool, location kernel.GeoPoint,
) *master.Master {
	aggregate, err := master.NewMaster(kernel.NewUUID(), name, rating, available, location)
	suite.Require().NoError(err)

	repo := masterrepo.NewGormMasterRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetAllMastersQueryHandlerTestSuite) saveOrderWithStatus(
	status order.Status, masterID *kernel.UUID,
) {
	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		"Load order",
		nil,
		nil,
		kernel.NewGeoPoint(5, 5),
		status,
		masterID,
		now,
		now,
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
}

func TestGetAllMastersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllMastersQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker; query tests do not need
// aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
