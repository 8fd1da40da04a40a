package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// ShipmentStatus represents the state of an order's shipment.
type ShipmentStatus int

const (
	ShipmentUnknown ShipmentStatus = iota
	ShipmentPending
	ShipmentShipped
	ShipmentInTransit
	ShipmentDelivered
	ShipmentFailed
)

func getShipmentStatusStrings() map[ShipmentStatus]string {
	return map[ShipmentStatus]string{
		ShipmentUnknown:   "Unknown",
		ShipmentPending:   "PENDING",
		ShipmentShipped:   "SHIPPED",
		ShipmentInTransit: "IN_TRANSIT",
		ShipmentDelivered: "DELIVERED",
		ShipmentFailed:    "FAILED",
	}
}

// Validate checks that the value is one of the five defined shipment states.
func (s ShipmentStatus) Validate() error {
	if s == ShipmentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("shipmentStatus",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	if _, ok := getShipmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipmentStatus",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

func (s ShipmentStatus) String() string {
	if str, ok := getShipmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Shipment is the shipment sub-entity owned by an Order, created once the
// order starts processing. Tracking code is mandatory from Shipped onward;
// shippedAt and deliveredAt are each set exactly once, when the corresponding
// status is first reached.
type Shipment struct {
	status       ShipmentStatus
	trackingCode string
	providerName string
	shippedAt    *time.Time
	deliveredAt  *time.Time

	isConstructed bool
}

// NewShipment creates a pending shipment for the given carrier.
func NewShipment(providerName string) (*Shipment, error) {
	if providerName == "" {
		return nil, errs.NewValueIsRequiredError("providerName")
	}

	return &Shipment{
		status:        ShipmentPending,
		providerName:  providerName,
		isConstructed: true,
	}, nil
}

// RestoreShipment rehydrates a shipment from persistence. Repository use only.
func RestoreShipment(
	status ShipmentStatus,
	trackingCode, providerName string,
	shippedAt, deliveredAt *time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if providerName == "" {
		return nil, errs.NewValueIsRequiredError("providerName")
	}

	return &Shipment{
		status:        status,
		trackingCode:  trackingCode,
		providerName:  providerName,
		shippedAt:     shippedAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) Status() ShipmentStatus {
	return s.status
}

func (s *Shipment) TrackingCode() string {
	return s.trackingCode
}

func (s *Shipment) ProviderName() string {
	return s.providerName
}

func (s *Shipment) ShippedAt() *time.Time {
	return s.shippedAt
}

func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// HasLeftWarehouse reports whether the shipment has ever reached Shipped.
func (s *Shipment) HasLeftWarehouse() bool {
	return s.shippedAt != nil
}

// MarkShipped hands the shipment to the carrier. The tracking code becomes
// mandatory here; repeating the action is an AlreadyAppliedError, not a no-op.
func (s *Shipment) MarkShipped(trackingCode string, at time.Time) error {
	if s.status != ShipmentPending {
		return errs.NewAlreadyAppliedError("mark shipped")
	}
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}

	s.trackingCode = trackingCode
	s.status = ShipmentShipped
	shipped := at
	s.shippedAt = &shipped
	return nil
}

// MarkInTransit records a carrier scan after pickup.
func (s *Shipment) MarkInTransit() error {
	if s.status != ShipmentShipped {
		return errs.NewPreconditionError(
			fmt.Sprintf("shipment in status %s cannot be in transit", s.status))
	}
	s.status = ShipmentInTransit
	return nil
}

// MarkDelivered records the final carrier delivery scan.
func (s *Shipment) MarkDelivered(at time.Time) error {
	if s.status == ShipmentDelivered {
		return errs.NewAlreadyAppliedError("mark delivered")
	}
	if s.status != ShipmentShipped && s.status != ShipmentInTransit {
		return errs.NewPreconditionError(
			fmt.Sprintf("shipment in status %s cannot be delivered", s.status))
	}

	s.status = ShipmentDelivered
	delivered := at
	s.deliveredAt = &delivered
	return nil
}

// MarkFailed records a failed delivery attempt reported by the carrier.
func (s *Shipment) MarkFailed() error {
	if s.status != ShipmentShipped && s.status != ShipmentInTransit {
		return errs.NewPreconditionError(
			fmt.Sprintf("shipment in status %s cannot fail", s.status))
	}
	s.status = ShipmentFailed
	return nil
}
