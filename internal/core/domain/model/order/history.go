package order

import (
	"fmt"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// StatusChange is one row of the append-only status history ledger. The
// ledger is the audit trail of every status change per order: rows are never
// mutated or deleted, and the latest row always equals the order's current
// status.
type StatusChange struct {
	orderID    int64
	status     Status
	notes      string
	occurredAt time.Time
}

// NewStatusChange creates a validated ledger row.
func NewStatusChange(orderID int64, status Status, notes string, occurredAt time.Time) (StatusChange, error) {
	if orderID <= 0 {
		return StatusChange{}, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if occurredAt.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return StatusChange{
		orderID:    orderID,
		status:     status,
		notes:      notes,
		occurredAt: occurredAt,
	}, nil
}

func (c StatusChange) OrderID() int64 {
	return c.orderID
}

func (c StatusChange) Status() Status {
	return c.status
}

func (c StatusChange) Notes() string {
	return c.notes
}

func (c StatusChange) OccurredAt() time.Time {
	return c.occurredAt
}
