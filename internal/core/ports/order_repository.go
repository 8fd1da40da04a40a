package ports

import (
	"context"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its sub-entities.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing aggregate using an optimistic
	// version check: the write only applies if the stored version still equals
	// the version the aggregate was loaded with. A mismatch returns
	// errs.ConcurrentModificationError and the caller must reload and retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with all sub-entities by its id.
	// Returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetPendingCreatedBefore retrieves Pending orders placed before the
	// cutoff. Used by the payment timeout job to find lapsed orders.
	GetPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
