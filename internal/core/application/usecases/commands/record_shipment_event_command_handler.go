package commands

import (
	"context"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// RecordShipmentEventCommandHandler applies carrier events to an order and
// cascades the matching order status transition. A shipped event on a
// Processing order moves it to Shipped; a delivered event on a Shipped order
// moves it to Delivered. Each cascaded transition writes its own history row.
type RecordShipmentEventCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   *order.TransitionRegistry
	now        func() time.Time
}

// NewRecordShipmentEventCommandHandler creates a handler for carrier events.
func NewRecordShipmentEventCommandHandler(
	uowFactory OrderUoWFactory,
	registry *order.TransitionRegistry,
) RecordShipmentEventCommandHandler {
	return RecordShipmentEventCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		now:        time.Now,
	}
}

// Handle records the event on the order's shipment inside one transaction.
func (h *RecordShipmentEventCommandHandler) Handle(ctx context.Context, cmd RecordShipmentEventCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.now()

	var cascadeTo order.Status
	switch cmd.Event() {
	case MarkShipped:
		if err = h.applyShipped(aggregate, cmd, now); err != nil {
			return nil, err
		}
		if aggregate.Status() == order.Processing {
			cascadeTo = order.Shipped
		}
	case MarkDelivered:
		if err = aggregate.MarkShipmentDelivered(now); err != nil {
			return nil, err
		}
		if aggregate.Status() == order.Shipped {
			cascadeTo = order.Delivered
		}
	}

	if cascadeTo != order.Unknown {
		if _, err = aggregate.ChangeStatus(cascadeTo, h.registry, now); err != nil {
			return nil, err
		}

		change, changeErr := order.NewStatusChange(aggregate.ID(), cascadeTo, shipmentEventNotes(cmd), now)
		if changeErr != nil {
			return nil, changeErr
		}

		if err = uow.HistoryRepository().Append(ctx, change); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// applyShipped lazily creates the shipment when the carrier reports before
// the back office attached one.
func (h *RecordShipmentEventCommandHandler) applyShipped(aggregate *order.Order, cmd RecordShipmentEventCommand, now time.Time) error {
	if aggregate.Shipment() == nil {
		shipment, err := order.NewShipment(cmd.ProviderName())
		if err != nil {
			return err
		}
		if err = aggregate.AttachShipment(shipment, now); err != nil {
			return err
		}
	}

	if err := aggregate.MarkShipmentShipped(cmd.TrackingCode(), now); err != nil {
		return err
	}

	if estimate := cmd.DeliveryEstimate(); estimate != nil {
		aggregate.SetDeliveryWindow(*estimate, now)
	}

	return nil
}

func shipmentEventNotes(cmd RecordShipmentEventCommand) string {
	if cmd.Event() == MarkShipped {
		return "carrier reported shipment " + cmd.TrackingCode()
	}
	return "carrier reported delivery"
}
