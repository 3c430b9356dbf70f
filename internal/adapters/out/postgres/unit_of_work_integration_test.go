package postgres_test

import (
	"context"
	"testing"
	"time"

	pgadapter "fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/adapters/out/postgres/evidencerepo"
	"fieldservice/internal/adapters/out/postgres/masterrepo"
	"fieldservice/internal/adapters/out/postgres/orderrepo"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
	"fieldservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination across
// the order, master and evidence repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&masterrepo.MasterDTO{},
		&evidencerepo.EvidenceDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = pgadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, masters, adl_media").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MultipleRepositories_SingleTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testMaster, err := master.NewMaster(
		kernel.NewUUID(), "Ivan", 4.5, true, kernel.NewGeoPoint(55.75, 37.61),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MasterRepository().Add(ctx, testMaster))

	record, err := order.NewEvidence(
		kernel.NewUUID(),
		testOrder.ID(),
		order.MediaTypePhoto,
		"https://cdn.example.com/media/1.jpg",
		kernel.NewGeoPoint(55.75, 37.61),
		time.Now().UTC(),
		nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EvidenceRepository().Add(ctx, record))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
	suite.assertCount(&masterrepo.MasterDTO{}, 1)
	suite.assertCount(&evidencerepo.EvidenceDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_MultipleRepositories_DiscardsAll() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testMaster, err := master.NewMaster(
		kernel.NewUUID(), "Olga", 5.0, true, kernel.NewGeoPoint(55.75, 37.61),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MasterRepository().Add(ctx, testMaster))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
	suite.assertCount(&masterrepo.MasterDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_DoesNotNest() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_ExecuteImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder()))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "Fix boiler", nil, nil, kernel.NewGeoPoint(55.75, 37.61),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOrderCount(expected int) {
	suite.assertCount(&orderrepo.OrderDTO{}, expected)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
