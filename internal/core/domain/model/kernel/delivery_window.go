package kernel

import (
	"fmt"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// DeliveryWindow is the estimated delivery interval shown to the customer.
// Both bounds are required and To may not precede From.
type DeliveryWindow struct {
	from time.Time
	to   time.Time
}

// NewDeliveryWindow creates a validated delivery window.
func NewDeliveryWindow(from, to time.Time) (DeliveryWindow, error) {
	if from.IsZero() {
		return DeliveryWindow{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return DeliveryWindow{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return DeliveryWindow{}, errs.NewValueIsInvalidErrorWithCause("to",
			fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)))
	}
	return DeliveryWindow{from: from, to: to}, nil
}

// From returns the earliest estimated delivery time.
func (w DeliveryWindow) From() time.Time {
	return w.from
}

// To returns the latest estimated delivery time.
func (w DeliveryWindow) To() time.Time {
	return w.to
}

// Contains reports whether t falls inside the window, bounds included.
func (w DeliveryWindow) Contains(t time.Time) bool {
	return !t.Before(w.from) && !t.After(w.to)
}
