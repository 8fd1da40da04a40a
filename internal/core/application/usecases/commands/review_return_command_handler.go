package commands

import (
	"context"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// ApproveReturnCommandHandler moves a pending return to Approved. Approval
// makes the order eligible for a refund but moves no money itself.
type ApproveReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewApproveReturnCommandHandler creates a handler for return approvals.
func NewApproveReturnCommandHandler(uowFactory OrderUoWFactory) ApproveReturnCommandHandler {
	return ApproveReturnCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle approves the order's return request.
func (h *ApproveReturnCommandHandler) Handle(ctx context.Context, cmd ApproveReturnCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return reviewReturn(ctx, h.uowFactory, cmd.OrderID(), h.now(),
		func(aggregate *order.Order, now time.Time) (string, error) {
			if err := aggregate.ApproveReturn(cmd.Notes(), now); err != nil {
				return "", err
			}
			return "return approved", nil
		})
}

// RejectReturnCommandHandler moves a pending return to Rejected. A rejected
// return stays attached to the order as a record of the decision.
type RejectReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewRejectReturnCommandHandler creates a handler for return rejections.
func NewRejectReturnCommandHandler(uowFactory OrderUoWFactory) RejectReturnCommandHandler {
	return RejectReturnCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle rejects the order's return request.
func (h *RejectReturnCommandHandler) Handle(ctx context.Context, cmd RejectReturnCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return reviewReturn(ctx, h.uowFactory, cmd.OrderID(), h.now(),
		func(aggregate *order.Order, now time.Time) (string, error) {
			if err := aggregate.RejectReturn(cmd.Reason(), now); err != nil {
				return "", err
			}
			return "return rejected: " + cmd.Reason(), nil
		})
}

// reviewReturn is the shared load/mutate/persist/ledger flow for both review
// outcomes. The mutate callback returns the ledger note for the decision.
func reviewReturn(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	now time.Time,
	mutate func(aggregate *order.Order, now time.Time) (string, error),
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	notes, err := mutate(aggregate, now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := order.NewStatusChange(aggregate.ID(), aggregate.Status(), notes, now)
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
