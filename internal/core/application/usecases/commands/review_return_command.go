package commands

import (
	"errors"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/guard"
)

var (
	ErrApproveReturnCommandIsNotConstructed = errors.New(
		"ApproveReturnCommand must be created via NewApproveReturnCommand constructor",
	)
	ErrRejectReturnCommandIsNotConstructed = errors.New(
		"RejectReturnCommand must be created via NewRejectReturnCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
)

// ApproveReturnCommand represents the back office accepting a return request.
type ApproveReturnCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	notes   string

	guard guard.ConstructorGuard
}

// NewApproveReturnCommand creates an approval. Notes are optional.
func NewApproveReturnCommand(orderID int64, notes string) (ApproveReturnCommand, error) {
	if orderID <= 0 {
		return ApproveReturnCommand{}, ErrOrderIDIsInvalid
	}

	return ApproveReturnCommand{
		orderID: orderID,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveReturnCommand) Validate() error {
	return c.guard.Validate(ErrApproveReturnCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApproveReturnCommand) OrderID() int64 {
	return c.orderID
}

// Notes returns the reviewer's notes.
func (c ApproveReturnCommand) Notes() string {
	return c.notes
}

// RejectReturnCommand represents the back office declining a return request.
type RejectReturnCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectReturnCommand creates a rejection. The reason is mandatory so
// the customer can be told why.
func NewRejectReturnCommand(orderID int64, reason string) (RejectReturnCommand, error) {
	if orderID <= 0 {
		return RejectReturnCommand{}, ErrOrderIDIsInvalid
	}
	if reason == "" {
		return RejectReturnCommand{}, ErrRejectionReasonIsRequired
	}

	return RejectReturnCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectReturnCommand) Validate() error {
	return c.guard.Validate(ErrRejectReturnCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RejectReturnCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the reviewer's rejection reason.
func (c RejectReturnCommand) Reason() string {
	return c.reason
}
