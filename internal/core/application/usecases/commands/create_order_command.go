package commands

import (
	"errors"
	"fmt"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must have at least one item")
)

// OrderItemInput is one checkout line before it becomes a domain Item.
type OrderItemInput struct {
	ProductVariantID int64
	Quantity         int
	UnitPrice        int64
}

// CreateOrderCommand represents a storefront checkout: the amounts, the
// lines and the chosen payment method.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        int64
	subtotal       kernel.Money
	discountAmount kernel.Money
	shippingFee    kernel.Money
	items          []order.Item
	paymentMethod  order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the checkout input and converts the raw
// amounts into domain values.
func NewCreateOrderCommand(
	orderID int64,
	subtotal int64,
	discountAmount int64,
	shippingFee int64,
	items []OrderItemInput,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	if orderID <= 0 {
		return CreateOrderCommand{}, ErrOrderIDIsInvalid
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, ErrOrderItemsAreRequired
	}
	if err := paymentMethod.Validate(); err != nil {
		return CreateOrderCommand{}, fmt.Errorf("payment method: %w", err)
	}

	subtotalMoney, err := kernel.NewMoney(subtotal)
	if err != nil {
		return CreateOrderCommand{}, fmt.Errorf("subtotal: %w", err)
	}
	discountMoney, err := kernel.NewMoney(discountAmount)
	if err != nil {
		return CreateOrderCommand{}, fmt.Errorf("discount amount: %w", err)
	}
	shippingMoney, err := kernel.NewMoney(shippingFee)
	if err != nil {
		return CreateOrderCommand{}, fmt.Errorf("shipping fee: %w", err)
	}

	domainItems := make([]order.Item, 0, len(items))
	for i, input := range items {
		unitPrice, priceErr := kernel.NewMoney(input.UnitPrice)
		if priceErr != nil {
			return CreateOrderCommand{}, fmt.Errorf("item %d unit price: %w", i, priceErr)
		}
		item, itemErr := order.NewItem(input.ProductVariantID, input.Quantity, unitPrice)
		if itemErr != nil {
			return CreateOrderCommand{}, fmt.Errorf("item %d: %w", i, itemErr)
		}
		domainItems = append(domainItems, item)
	}

	return CreateOrderCommand{
		orderID:        orderID,
		subtotal:       subtotalMoney,
		discountAmount: discountMoney,
		shippingFee:    shippingMoney,
		items:          domainItems,
		paymentMethod:  paymentMethod,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the new order's identifier.
func (c CreateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Subtotal returns the sum of item prices before adjustments.
func (c CreateOrderCommand) Subtotal() kernel.Money {
	return c.subtotal
}

// DiscountAmount returns the applied discount.
func (c CreateOrderCommand) DiscountAmount() kernel.Money {
	return c.discountAmount
}

// ShippingFee returns the delivery charge.
func (c CreateOrderCommand) ShippingFee() kernel.Money {
	return c.shippingFee
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}
