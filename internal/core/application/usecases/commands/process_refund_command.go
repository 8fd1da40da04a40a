package commands

import (
	"errors"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/guard"
)

var ErrProcessRefundCommandIsNotConstructed = errors.New(
	"ProcessRefundCommand must be created via NewProcessRefundCommand constructor",
)

// ProcessRefundCommand represents the final step of an approved return:
// returning the captured payment to the customer.
type ProcessRefundCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewProcessRefundCommand creates a refund request for an order.
func NewProcessRefundCommand(orderID int64) (ProcessRefundCommand, error) {
	if orderID <= 0 {
		return ProcessRefundCommand{}, ErrOrderIDIsInvalid
	}

	return ProcessRefundCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessRefundCommand) Validate() error {
	return c.guard.Validate(ErrProcessRefundCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ProcessRefundCommand) OrderID() int64 {
	return c.orderID
}
