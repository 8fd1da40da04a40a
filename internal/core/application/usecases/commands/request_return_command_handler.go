package commands

import (
	"context"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// RequestReturnCommandHandler opens a return case on a delivered order.
// The order stays Delivered; the return tracks its own approval state.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewRequestReturnCommandHandler creates a handler for return requests.
func NewRequestReturnCommandHandler(uowFactory OrderUoWFactory) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle attaches a pending return to the order and records it in the ledger.
func (h *RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) (*order.Order, error) {
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

	now := h.now()
	if _, err = aggregate.AttachReturn(cmd.Reason(), now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := order.NewStatusChange(aggregate.ID(), aggregate.Status(), "return requested: "+cmd.Reason(), now)
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
