package commands

import (
	"errors"
	"fmt"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/guard"
)

var (
	ErrBulkUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"BulkUpdateOrderStatusCommand must be created via NewBulkUpdateOrderStatusCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// BulkUpdateOrderStatusCommand represents an administrative request to move
// a batch of orders to the same status.
type BulkUpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs  []int64
	newStatus order.Status
	notes     string

	guard guard.ConstructorGuard
}

// NewBulkUpdateOrderStatusCommand validates the batch. Duplicate ids are
// rejected up front: processing the same order twice in one batch would race
// against itself.
func NewBulkUpdateOrderStatusCommand(orderIDs []int64, newStatus order.Status, notes string) (BulkUpdateOrderStatusCommand, error) {
	if len(orderIDs) == 0 {
		return BulkUpdateOrderStatusCommand{}, ErrOrderIDsAreRequired
	}
	if err := newStatus.Validate(); err != nil {
		return BulkUpdateOrderStatusCommand{}, fmt.Errorf("new status: %w", err)
	}

	seen := make(map[int64]struct{}, len(orderIDs))
	ids := make([]int64, 0, len(orderIDs))
	for _, id := range orderIDs {
		if id <= 0 {
			return BulkUpdateOrderStatusCommand{}, ErrOrderIDIsInvalid
		}
		if _, dup := seen[id]; dup {
			return BulkUpdateOrderStatusCommand{}, fmt.Errorf("order id %d appears more than once", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return BulkUpdateOrderStatusCommand{
		orderIDs:  ids,
		newStatus: newStatus,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkUpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns the batch in its original order.
func (c BulkUpdateOrderStatusCommand) OrderIDs() []int64 {
	ids := make([]int64, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// NewStatus returns the requested status.
func (c BulkUpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Notes returns the administrative notes applied to every history entry.
func (c BulkUpdateOrderStatusCommand) Notes() string {
	return c.notes
}
