package commands

import (
	"errors"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/guard"
)

// ShipmentEvent identifies the signal a carrier integration reports back.
type ShipmentEvent string

const (
	// MarkShipped records the package leaving the warehouse.
	MarkShipped ShipmentEvent = "MARK_SHIPPED"
	// MarkDelivered records the package reaching the customer.
	MarkDelivered ShipmentEvent = "MARK_DELIVERED"
)

var (
	ErrRecordShipmentEventCommandIsNotConstructed = errors.New(
		"RecordShipmentEventCommand must be created via NewRecordShipmentEventCommand constructor",
	)
	ErrShipmentEventIsInvalid = errors.New("shipment event is invalid")
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
)

// RecordShipmentEventCommand carries a carrier event for one order. The
// provider name, tracking code and delivery estimate are only meaningful for
// MarkShipped; MarkDelivered ignores them.
type RecordShipmentEventCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	event        ShipmentEvent
	providerName string
	trackingCode string
	estimate     *kernel.DeliveryWindow

	guard guard.ConstructorGuard
}

// NewRecordShipmentEventCommand creates a validated shipment event command.
// estimatedFrom/estimatedTo carry the carrier's delivery estimate; leave both
// zero when the carrier reported none.
func NewRecordShipmentEventCommand(
	orderID int64,
	event ShipmentEvent,
	providerName string,
	trackingCode string,
	estimatedFrom time.Time,
	estimatedTo time.Time,
) (RecordShipmentEventCommand, error) {
	if orderID <= 0 {
		return RecordShipmentEventCommand{}, ErrOrderIDIsInvalid
	}

	switch event {
	case MarkShipped:
		if trackingCode == "" {
			return RecordShipmentEventCommand{}, ErrTrackingCodeIsRequired
		}
	case MarkDelivered:
	default:
		return RecordShipmentEventCommand{}, ErrShipmentEventIsInvalid
	}

	var estimate *kernel.DeliveryWindow
	if !estimatedFrom.IsZero() || !estimatedTo.IsZero() {
		window, err := kernel.NewDeliveryWindow(estimatedFrom, estimatedTo)
		if err != nil {
			return RecordShipmentEventCommand{}, err
		}
		estimate = &window
	}

	return RecordShipmentEventCommand{
		orderID:      orderID,
		event:        event,
		providerName: providerName,
		trackingCode: trackingCode,
		estimate:     estimate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordShipmentEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentEventCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RecordShipmentEventCommand) OrderID() int64 {
	return c.orderID
}

// Event returns the carrier event kind.
func (c RecordShipmentEventCommand) Event() ShipmentEvent {
	return c.event
}

// ProviderName returns the carrier name, used when the event creates the shipment.
func (c RecordShipmentEventCommand) ProviderName() string {
	return c.providerName
}

// TrackingCode returns the carrier tracking code.
func (c RecordShipmentEventCommand) TrackingCode() string {
	return c.trackingCode
}

// DeliveryEstimate returns the carrier's estimated delivery window, or nil
// when the event carried none.
func (c RecordShipmentEventCommand) DeliveryEstimate() *kernel.DeliveryWindow {
	return c.estimate
}
