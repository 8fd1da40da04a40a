package order

import (
	"fmt"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (see TransitionRegistry, the single source of truth):
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. A status never transitions to itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed
	// and is waiting for confirmation by the back office.
	Pending

	// Confirmed indicates the order has been accepted.
	Confirmed

	// Processing indicates the order is being picked and packed.
	// A shipment may be attached from this status onward.
	Processing

	// Shipped indicates the shipment has been handed to the carrier.
	Shipped

	// Delivered indicates the customer has received the order.
	// Terminal; only a return request may follow.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// getStatusLabels returns the customer-facing display names per status.
// Presentation pass-through only; nothing in the domain reads these.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive
	return map[Status]string{
		Pending:    "Chờ xác nhận",
		Confirmed:  "Đã xác nhận",
		Processing: "Đang xử lý",
		Shipped:    "Đang giao hàng",
		Delivered:  "Đã giao hàng",
		Cancelled:  "Đã hủy",
	}
}

// getStatusColors returns the badge colour per status used by the admin UI.
func getStatusColors() map[Status]string {
	//nolint:exhaustive
	return map[Status]string{
		Pending:    "gold",
		Confirmed:  "blue",
		Processing: "purple",
		Shipped:    "cyan",
		Delivered:  "green",
		Cancelled:  "red",
	}
}

// Validate checks if the Status value is one of the six defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "PENDING".
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the human-readable display name for the status.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return s.String()
}

// Color returns the badge colour for the status.
func (s Status) Color() string {
	if color, ok := getStatusColors()[s]; ok {
		return color
	}
	return "default"
}

// StatusFromString parses a wire name ("PENDING", "CONFIRMED", ...) back into
// a Status. Used by the HTTP adapter and when rehydrating API input.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}
