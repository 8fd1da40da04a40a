package commands

import (
	"context"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler executes a single status transition: it
// validates the edge against the transition registry, applies the change and
// its cascades to the aggregate, appends the history ledger entry and commits
// everything in one transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   *order.TransitionRegistry
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	registry *order.TransitionRegistry,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		now:        time.Now,
	}
}

// Handle processes the transition and returns the updated aggregate.
// On any failure the transaction rolls back and the stored aggregate is
// untouched; the returned error says why the transition was refused.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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
	if _, err = aggregate.ChangeStatus(cmd.NewStatus(), h.registry, now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := order.NewStatusChange(aggregate.ID(), aggregate.Status(), cmd.Notes(), now)
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
