package commands

import (
	"context"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/ports"
)

// CreateOrderCommandHandler places a new order from a storefront checkout.
// VNPAY payments are captured through the gateway before the order is
// persisted; COD payments stay pending until money changes hands at the door.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		now:        time.Now,
	}
}

// Handle builds the aggregate, settles the payment and writes the initial
// Pending ledger row, all in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.now()

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Subtotal(),
		cmd.DiscountAmount(),
		cmd.ShippingFee(),
		cmd.Items(),
		now,
	)
	if err != nil {
		return nil, err
	}

	payment, err := h.settlePayment(ctx, cmd, aggregate)
	if err != nil {
		return nil, err
	}

	if err = aggregate.AttachPayment(payment, now); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := order.NewStatusChange(aggregate.ID(), order.Pending, "order placed", now)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Append(ctx, change); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// settlePayment captures online payments immediately. COD stays pending.
func (h *CreateOrderCommandHandler) settlePayment(
	ctx context.Context,
	cmd CreateOrderCommand,
	aggregate *order.Order,
) (*order.Payment, error) {
	total := aggregate.TotalAmount()

	if cmd.PaymentMethod() != order.MethodVNPay {
		return order.NewPayment(cmd.PaymentMethod(), total, "")
	}

	transactionCode, err := h.gateway.Capture(ctx, total)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(order.MethodVNPay, total, transactionCode)
	if err != nil {
		return nil, err
	}
	if err = payment.MarkCompleted(transactionCode, "captured"); err != nil {
		return nil, err
	}

	return payment, nil
}
