// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their relational
// representation.
package orderrepo

import (
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Sub-entities live in their own tables and are loaded together with the
// order; the amounts are stored as integral VND so no floating point is ever
// involved.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey"`
	Status         int   `gorm:"index"`
	Subtotal       int64
	DiscountAmount int64
	ShippingFee    int64
	Notes          string
	DeliveryFrom   *time.Time
	DeliveryTo     *time.Time
	Version        int64
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	Items    []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment  *PaymentDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipment *ShipmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Return   *ReturnDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line row.
type ItemDTO struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	OrderID          int64 `gorm:"index"`
	ProductVariantID int64
	Quantity         int
	UnitPrice        int64
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO is the order's payment row, at most one per order.
type PaymentDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	OrderID          int64  `gorm:"uniqueIndex"`
	Status           int
	Method           string
	Amount           int64
	TransactionCode  string
	ProviderResponse string
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "order_payments"
}

// ShipmentDTO is the order's shipment row, at most one per order.
type ShipmentDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	OrderID      int64 `gorm:"uniqueIndex"`
	Status       int
	TrackingCode string
	ProviderName string
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "order_shipments"
}

// ReturnDTO is the order's return case row, at most one per order.
type ReturnDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	OrderID         int64 `gorm:"uniqueIndex"`
	Status          int
	Reason          string
	ResolutionNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for returns.
func (ReturnDTO) TableName() string {
	return "order_returns"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:             aggregate.ID(),
		Status:         int(aggregate.Status()),
		Subtotal:       aggregate.Subtotal().Amount(),
		DiscountAmount: aggregate.DiscountAmount().Amount(),
		ShippingFee:    aggregate.ShippingFee().Amount(),
		Notes:          aggregate.Notes(),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}

	if window := aggregate.DeliveryWindow(); window != nil {
		from := window.From()
		to := window.To()
		dto.DeliveryFrom = &from
		dto.DeliveryTo = &to
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:          aggregate.ID(),
			ProductVariantID: item.ProductVariantID(),
			Quantity:         item.Quantity(),
			UnitPrice:        item.UnitPrice().Amount(),
		})
	}

	if payment := aggregate.Payment(); payment != nil {
		dto.Payment = &PaymentDTO{
			OrderID:          aggregate.ID(),
			Status:           int(payment.Status()),
			Method:           string(payment.Method()),
			Amount:           payment.Amount().Amount(),
			TransactionCode:  payment.TransactionCode(),
			ProviderResponse: payment.ProviderResponse(),
		}
	}

	if shipment := aggregate.Shipment(); shipment != nil {
		dto.Shipment = &ShipmentDTO{
			OrderID:      aggregate.ID(),
			Status:       int(shipment.Status()),
			TrackingCode: shipment.TrackingCode(),
			ProviderName: shipment.ProviderName(),
			ShippedAt:    shipment.ShippedAt(),
			DeliveredAt:  shipment.DeliveredAt(),
		}
	}

	if ret := aggregate.Return(); ret != nil {
		dto.Return = &ReturnDTO{
			OrderID:         aggregate.ID(),
			Status:          int(ret.Status()),
			Reason:          ret.Reason(),
			ResolutionNotes: ret.ResolutionNotes(),
			CreatedAt:       ret.CreatedAt(),
			UpdatedAt:       ret.UpdatedAt(),
		}
	}

	return dto
}

// toDomain converts a database DTO back into an order aggregate using the
// Restore constructors, which skip creation-time checks but still enforce
// structural validity.
func toDomain(dto OrderDTO) (*order.Order, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}
	shipping, err := kernel.NewMoney(dto.ShippingFee)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.ProductVariantID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var payment *order.Payment
	if dto.Payment != nil {
		amount, amountErr := kernel.NewMoney(dto.Payment.Amount)
		if amountErr != nil {
			return nil, amountErr
		}
		payment, err = order.RestorePayment(
			order.PaymentStatus(dto.Payment.Status),
			order.PaymentMethod(dto.Payment.Method),
			amount,
			dto.Payment.TransactionCode,
			dto.Payment.ProviderResponse,
		)
		if err != nil {
			return nil, err
		}
	}

	var shipment *order.Shipment
	if dto.Shipment != nil {
		shipment, err = order.RestoreShipment(
			order.ShipmentStatus(dto.Shipment.Status),
			dto.Shipment.TrackingCode,
			dto.Shipment.ProviderName,
			dto.Shipment.ShippedAt,
			dto.Shipment.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}
	}

	var ret *order.Return
	if dto.Return != nil {
		ret, err = order.RestoreReturn(
			order.ReturnStatus(dto.Return.Status),
			dto.Return.Reason,
			dto.Return.ResolutionNotes,
			dto.Return.CreatedAt,
			dto.Return.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
	}

	var window *kernel.DeliveryWindow
	if dto.DeliveryFrom != nil && dto.DeliveryTo != nil {
		w, windowErr := kernel.NewDeliveryWindow(*dto.DeliveryFrom, *dto.DeliveryTo)
		if windowErr != nil {
			return nil, windowErr
		}
		window = &w
	}

	return order.RestoreOrder(
		dto.ID,
		order.Status(dto.Status),
		subtotal, discount, shipping,
		dto.Notes,
		window,
		items,
		payment,
		shipment,
		ret,
		dto.Version,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
