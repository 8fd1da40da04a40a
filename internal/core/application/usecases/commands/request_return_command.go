package commands

import (
	"errors"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/guard"
)

var (
	ErrRequestReturnCommandIsNotConstructed = errors.New(
		"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
	)
	ErrReturnReasonIsRequired = errors.New("return reason is required")
)

// RequestReturnCommand represents a customer asking to return a delivered order.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand creates a return request. The reason is mandatory:
// the back office triages returns by it.
func NewRequestReturnCommand(orderID int64, reason string) (RequestReturnCommand, error) {
	if orderID <= 0 {
		return RequestReturnCommand{}, ErrOrderIDIsInvalid
	}
	if reason == "" {
		return RequestReturnCommand{}, ErrReturnReasonIsRequired
	}

	return RequestReturnCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RequestReturnCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the customer's stated return reason.
func (c RequestReturnCommand) Reason() string {
	return c.reason
}
