package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/adapters/in/http"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/adapters/out/postgres"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/adapters/out/vnpay"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/commands"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/queries"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/ports"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *order.TransitionRegistry
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	gateway, err := vnpay.NewClient(configs.VnpayMerchantCode, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   order.NewTransitionRegistry(),
		gateway:    gateway,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateRecordShipmentEventCommandHandler() commands.RecordShipmentEventCommandHandler {
	return commands.NewRecordShipmentEventCommandHandler(c.orderUoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	return commands.NewRequestReturnCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveReturnCommandHandler() commands.ApproveReturnCommandHandler {
	return commands.NewApproveReturnCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectReturnCommandHandler() commands.RejectReturnCommandHandler {
	return commands.NewRejectReturnCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateProcessRefundCommandHandler() commands.ProcessRefundCommandHandler {
	return commands.NewProcessRefundCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateBulkUpdateOrderStatusCommandHandler() commands.BulkUpdateOrderStatusCommandHandler {
	return commands.NewBulkUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRecordShipmentEventCommandHandler(),
		c.CreateRequestReturnCommandHandler(),
		c.CreateApproveReturnCommandHandler(),
		c.CreateRejectReturnCommandHandler(),
		c.CreateProcessRefundCommandHandler(),
		c.CreateBulkUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(paymentTimeout time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderUoWFactory(),
		c.CreateCancelOrderCommandHandler(),
		paymentTimeout,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
