package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/adapters/out/postgres/orderrepo"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/queries"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(int64, any) {}

type GetOrdersByStatusQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersByStatusQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.ShipmentDTO{},
		&orderrepo.ReturnDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersByStatusQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &noopTracker{})
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_payments, order_shipments, order_returns").Error)
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) addOrder(id int64, status order.Status) {
	money := func(amount int64) kernel.Money {
		m, err := kernel.NewMoney(amount)
		suite.Require().NoError(err)
		return m
	}

	o, err := order.NewOrder(id, money(500000), money(0), money(30000),
		nil, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)

	registry := order.NewTransitionRegistry()
	if status == order.Confirmed {
		_, err = o.ChangeStatus(order.Confirmed, registry, time.Now().UTC())
		suite.Require().NoError(err)
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_FiltersByStatusSortedByID() {
	ctx := context.Background()

	suite.addOrder(3, order.Pending)
	suite.addOrder(1, order.Pending)
	suite.addOrder(2, order.Confirmed)

	query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
	suite.Require().NoError(err)

	rows, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal(int64(1), rows[0].ID)
	suite.Equal(int64(3), rows[1].ID)
	suite.Equal("PENDING", rows[0].Status)
	suite.Equal("Chờ xác nhận", rows[0].StatusLabel)
	suite.Equal(int64(530000), rows[0].TotalAmount)
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmpty() {
	ctx := context.Background()
	suite.addOrder(1, order.Pending)

	query, err := queries.NewGetOrdersByStatusQuery(order.Cancelled)
	suite.Require().NoError(err)

	rows, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *GetOrdersByStatusQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	ctx := context.Background()
	var invalidQuery queries.GetOrdersByStatusQuery // zero value query

	_, err := suite.handler.Handle(ctx, invalidQuery)
	suite.Require().ErrorIs(err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}

func TestGetOrdersByStatusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersByStatusQueryHandlerTestSuite))
}
