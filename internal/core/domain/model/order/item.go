package order

import (
	"fmt"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// Item is an order line: a product variant reference with a quantity and the
// unit price captured at checkout. Items are immutable once created.
type Item struct {
	productVariantID int64
	quantity         int
	unitPrice        kernel.Money
}

// NewItem creates a validated order line.
func NewItem(productVariantID int64, quantity int, unitPrice kernel.Money) (Item, error) {
	if productVariantID <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("productVariantID",
			fmt.Errorf("%d is not a valid product variant id", productVariantID))
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productVariantID: productVariantID,
		quantity:         quantity,
		unitPrice:        unitPrice,
	}, nil
}

func (i Item) ProductVariantID() int64 {
	return i.productVariantID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}
