package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order. Cancellation is only allowed
// inside the window before shipping: Pending, Confirmed or Processing. The
// window check runs before the transition so the caller gets a precondition
// failure, not a generic illegal-transition error, when cancelling too late.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   *order.TransitionRegistry
	now        func() time.Time
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	registry *order.TransitionRegistry,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		now:        time.Now,
	}
}

// Handle cancels the order and voids a completed payment. Refunding money,
// if any was captured, stays a separate explicit operation.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	switch aggregate.Status() {
	case order.Pending, order.Confirmed, order.Processing:
	default:
		return nil, errs.NewPreconditionError(
			fmt.Sprintf("order in status %s is outside the cancellation window", aggregate.Status()))
	}

	now := h.now()
	if _, err = aggregate.ChangeStatus(order.Cancelled, h.registry, now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := order.NewStatusChange(aggregate.ID(), order.Cancelled, cmd.Reason(), now)
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
