package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/adapters/out/postgres/orderrepo"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises the repository against a real
// PostgreSQL container.
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.ShipmentDTO{},
		&orderrepo.ReturnDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_payments, order_shipments, order_returns").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id int64) *order.Order {
	item, err := order.NewItem(11, 2, suite.money(250000))
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, suite.money(500000), suite.money(0), suite.money(30000),
		[]order.Item{item}, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAllSubEntities() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1)

	payment, err := order.NewPayment(order.MethodVNPay, testOrder.TotalAmount(), "TX-1")
	suite.Require().NoError(err)
	suite.Require().NoError(payment.MarkCompleted("TX-1", "captured"))
	suite.Require().NoError(testOrder.AttachPayment(payment, time.Now().UTC()))

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), loaded.ID())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(testOrder.TotalAmount(), loaded.TotalAmount())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(int64(11), loaded.Items()[0].ProductVariantID())

	suite.Require().NotNil(loaded.Payment())
	suite.Equal(order.PaymentCompleted, loaded.Payment().Status())
	suite.Equal("TX-1", loaded.Payment().TransactionCode())
	suite.Nil(loaded.Shipment())
	suite.Nil(loaded.Return())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 9999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(0), loaded.Version())

	registry := order.NewTransitionRegistry()
	_, err = loaded.ChangeStatus(order.Confirmed, registry, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, reloaded.Status())
	suite.Equal(int64(1), reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	registry := order.NewTransitionRegistry()

	// Two admins load the same version.
	first, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)

	_, err = first.ChangeStatus(order.Confirmed, registry, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second write carries the stale version and must lose.
	_, err = second.ChangeStatus(order.Cancelled, registry, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	reloaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(77)

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLateSubEntities() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	registry := order.NewTransitionRegistry()
	now := time.Now().UTC().Truncate(time.Microsecond)

	loaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	_, err = loaded.ChangeStatus(order.Confirmed, registry, now)
	suite.Require().NoError(err)
	_, err = loaded.ChangeStatus(order.Processing, registry, now)
	suite.Require().NoError(err)

	shipment, err := order.NewShipment("GHN")
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AttachShipment(shipment, now))
	suite.Require().NoError(loaded.MarkShipmentShipped("GHN123", now))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.Shipment())
	suite.Equal("GHN123", reloaded.Shipment().TrackingCode())
	suite.True(reloaded.Shipment().HasLeftWarehouse())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus() {
	ctx := context.Background()
	registry := order.NewTransitionRegistry()

	for id := int64(1); id <= 3; id++ {
		o := suite.createTestOrder(id)
		if id == 2 {
			_, err := o.ChangeStatus(order.Confirmed, registry, time.Now().UTC())
			suite.Require().NoError(err)
		}
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	pending, err := suite.repository.GetAllInStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Len(pending, 2)

	confirmed, err := suite.repository.GetAllInStatus(ctx, order.Confirmed)
	suite.Require().NoError(err)
	suite.Require().Len(confirmed, 1)
	suite.Equal(int64(2), confirmed[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPendingCreatedBefore() {
	ctx := context.Background()

	old, err := order.NewOrder(1, suite.money(100000), suite.money(0), suite.money(0),
		nil, time.Now().UTC().Add(-2*time.Hour))
	suite.Require().NoError(err)
	fresh := suite.createTestOrder(2)

	suite.Require().NoError(suite.repository.Add(ctx, old))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	lapsed, err := suite.repository.GetPendingCreatedBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(lapsed, 1)
	suite.Equal(int64(1), lapsed[0].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
