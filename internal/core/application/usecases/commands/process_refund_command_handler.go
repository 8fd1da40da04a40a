package commands

import (
	"context"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/ports"
)

// ProcessRefundCommandHandler refunds an approved return. The gateway is
// only instructed after the aggregate confirms eligibility, so an
// ineligible order never reaches the provider.
type ProcessRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	now        func() time.Time
}

// NewProcessRefundCommandHandler creates a handler for refund processing.
func NewProcessRefundCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) ProcessRefundCommandHandler {
	return ProcessRefundCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		now:        time.Now,
	}
}

// Handle instructs the gateway to return the captured amount, then records
// the refund on the payment and return in one transaction.
func (h *ProcessRefundCommandHandler) Handle(ctx context.Context, cmd ProcessRefundCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ValidateRefundable(); err != nil {
		return nil, err
	}

	payment := aggregate.Payment()
	providerResponse, err := h.gateway.Refund(ctx, payment.TransactionCode(), payment.Amount())
	if err != nil {
		return nil, err
	}

	now := h.now()
	if err = aggregate.ProcessRefund(providerResponse, now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := order.NewStatusChange(aggregate.ID(), aggregate.Status(), "refund processed", now)
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
