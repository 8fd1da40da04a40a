package commands

import (
	"context"
	"sync"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// bulkWorkerLimit caps how many orders are processed concurrently in a batch.
const bulkWorkerLimit = 8

// BulkFailure records why one order in a batch could not be updated.
type BulkFailure struct {
	OrderID int64
	Err     error
}

// BulkResult is the per-order outcome of a batch update. Succeeded and
// Failed together cover every id from the request, in request order.
type BulkResult struct {
	Succeeded []int64
	Failed    []BulkFailure
}

// BulkUpdateOrderStatusCommandHandler applies the same status transition to
// a batch of orders. Each order is its own transaction: one illegal
// transition or version conflict never rolls back its neighbours.
type BulkUpdateOrderStatusCommandHandler struct {
	updater UpdateOrderStatusCommandHandler
}

// NewBulkUpdateOrderStatusCommandHandler creates a handler for batch updates.
func NewBulkUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	registry *order.TransitionRegistry,
) BulkUpdateOrderStatusCommandHandler {
	return BulkUpdateOrderStatusCommandHandler{
		updater: NewUpdateOrderStatusCommandHandler(uowFactory, registry),
	}
}

// Handle fans the batch out over a bounded worker pool and collects the
// outcomes back into request order.
func (h *BulkUpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd BulkUpdateOrderStatusCommand) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	ids := cmd.OrderIDs()
	outcomes := make([]error, len(ids))

	var wg sync.WaitGroup
	sem := make(chan struct{}, bulkWorkerLimit)

	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}

		go func(slot int, orderID int64) {
			defer wg.Done()
			defer func() { <-sem }()

			outcomes[slot] = h.updateOne(ctx, orderID, cmd)
		}(i, id)
	}

	wg.Wait()

	result := BulkResult{}
	for i, id := range ids {
		if outcomes[i] != nil {
			result.Failed = append(result.Failed, BulkFailure{OrderID: id, Err: outcomes[i]})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result, nil
}

func (h *BulkUpdateOrderStatusCommandHandler) updateOne(ctx context.Context, orderID int64, cmd BulkUpdateOrderStatusCommand) error {
	single, err := NewUpdateOrderStatusCommand(orderID, cmd.NewStatus(), cmd.Notes())
	if err != nil {
		return err
	}

	_, err = h.updater.Handle(ctx, single)
	return err
}
