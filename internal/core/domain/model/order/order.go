package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for the order lifecycle. It owns at most one
// Payment, at most one Shipment, zero-or-one Return and zero-or-more line
// items, and it is mutated as one consistency unit.
//
// Order maintains these invariants:
//   - TotalAmount is always subtotal − discount + shipping fee; there is no
//     setter and no stored total
//   - status moves only along TransitionRegistry edges, never to itself
//   - a shipment may only be attached from Processing onward
//   - a return may only be attached to a Delivered order
//   - the payment can only reach Refunded while a return exists and the order
//     is Delivered
//   - updatedAt is bumped on every mutation; createdAt and id never change
type Order struct {
	id             int64
	status         Status
	subtotal       kernel.Money
	discountAmount kernel.Money
	shippingFee    kernel.Money
	notes          string
	window         *kernel.DeliveryWindow
	items          []Item

	payment  *Payment
	shipment *Shipment
	ret      *Return

	version   int64
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
//
// The discount may not exceed subtotal plus shipping fee, so the computed
// total can never go negative.
func NewOrder(
	id int64,
	subtotal, discountAmount, shippingFee kernel.Money,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAmounts(subtotal, discountAmount, shippingFee),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.updatedAt = createdAt

	return o, nil
}

// RestoreOrder rehydrates an aggregate from persistence, including its
// sub-entities and optimistic-lock version. Repository use only.
func RestoreOrder(
	id int64,
	status Status,
	subtotal, discountAmount, shippingFee kernel.Money,
	notes string,
	window *kernel.DeliveryWindow,
	items []Item,
	payment *Payment,
	shipment *Shipment,
	ret *Return,
	version int64,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAmounts(subtotal, discountAmount, shippingFee),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.notes = notes
	o.window = window
	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.payment = payment
	o.shipment = shipment
	o.ret = ret
	o.version = version
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) DiscountAmount() kernel.Money {
	return o.discountAmount
}

func (o *Order) ShippingFee() kernel.Money {
	return o.shippingFee
}

// TotalAmount computes subtotal − discount + shipping fee. The constructor
// guarantees the result is non-negative, so the computation cannot fail.
func (o *Order) TotalAmount() kernel.Money {
	total, _ := o.subtotal.Add(o.shippingFee)
	total, _ = total.Sub(o.discountAmount)
	return total
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) DeliveryWindow() *kernel.DeliveryWindow {
	return o.window
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Payment returns the attached payment, nil if none.
func (o *Order) Payment() *Payment {
	return o.payment
}

// Shipment returns the attached shipment, nil if none.
func (o *Order) Shipment() *Shipment {
	return o.shipment
}

// Return returns the attached return request, nil if none.
func (o *Order) Return() *Return {
	return o.ret
}

func (o *Order) Version() int64 {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetNotes replaces the administrative notes on the order.
func (o *Order) SetNotes(notes string, at time.Time) {
	o.notes = notes
	o.touch(at)
}

// SetDeliveryWindow records the estimated delivery interval.
func (o *Order) SetDeliveryWindow(window kernel.DeliveryWindow, at time.Time) {
	w := window
	o.window = &w
	o.touch(at)
}

// ChangeStatus moves the order along a registry edge and applies the
// mandatory cascades. It returns the previous status so the coordinator can
// record what changed.
//
// Cascades:
//   - to Shipped: a shipment must exist and have left the warehouse, else
//     PreconditionError — shipment data is enforced here, not only by the
//     admin form
//   - to Cancelled: a completed payment is voided (Cancelled, never Refunded;
//     moving money back is the explicit refund operation)
//
// All checks run before any mutation, so a failed call leaves the aggregate
// untouched.
func (o *Order) ChangeStatus(to Status, registry *TransitionRegistry, at time.Time) (Status, error) {
	if !registry.CanTransition(o.status, to) {
		return Unknown, errs.NewInvalidTransitionError(o.status.String(), to.String())
	}

	if to == Shipped {
		if o.shipment == nil || !o.shipment.HasLeftWarehouse() {
			return Unknown, errs.NewPreconditionError(
				"order cannot be marked shipped without shipment data")
		}
	}

	prev := o.status
	o.status = to
	o.touch(at)

	if to == Cancelled && o.payment != nil && o.payment.Status() == PaymentCompleted {
		// Checked transitions above make this cancel legal.
		_ = o.payment.Cancel()
	}

	return prev, nil
}

// AttachPayment binds a payment to the order. At most one payment may exist,
// and its amount must equal the order total at the moment of attachment.
func (o *Order) AttachPayment(p *Payment, at time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if o.payment != nil {
		return errs.NewConflictError("payment")
	}
	if !p.Amount().IsEqual(o.TotalAmount()) {
		return errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("%s does not equal order total %s", p.Amount(), o.TotalAmount()))
	}

	o.payment = p
	o.touch(at)
	return nil
}

// AttachShipment binds a shipment to the order. Shipments are created once
// processing begins, so only Processing and Shipped orders accept one.
func (o *Order) AttachShipment(s *Shipment, at time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if o.shipment != nil {
		return errs.NewConflictError("shipment")
	}
	if o.status != Processing && o.status != Shipped {
		return errs.NewPreconditionError(
			fmt.Sprintf("shipment cannot be attached to an order in status %s", o.status))
	}

	o.shipment = s
	o.touch(at)
	return nil
}

// AttachReturn creates and binds a return request. Only a delivered order may
// acquire one, and at most one per order.
func (o *Order) AttachReturn(reason string, at time.Time) (*Return, error) {
	if o.status != Delivered {
		return nil, errs.NewPreconditionError(
			fmt.Sprintf("return cannot be requested for an order in status %s", o.status))
	}
	if o.ret != nil {
		return nil, errs.NewConflictError("return")
	}

	ret, err := NewReturn(reason, at)
	if err != nil {
		return nil, err
	}

	o.ret = ret
	o.touch(at)
	return ret, nil
}

// MarkShipmentShipped records the carrier pickup on the attached shipment.
func (o *Order) MarkShipmentShipped(trackingCode string, at time.Time) error {
	if o.shipment == nil {
		return errs.NewPreconditionError("order has no shipment")
	}
	if err := o.shipment.MarkShipped(trackingCode, at); err != nil {
		return err
	}
	o.touch(at)
	return nil
}

// MarkShipmentDelivered records the final delivery on the attached shipment.
func (o *Order) MarkShipmentDelivered(at time.Time) error {
	if o.shipment == nil {
		return errs.NewPreconditionError("order has no shipment")
	}
	if err := o.shipment.MarkDelivered(at); err != nil {
		return err
	}
	o.touch(at)
	return nil
}

// ApproveReturn authorizes the refund step for the attached return.
func (o *Order) ApproveReturn(notes string, at time.Time) error {
	if o.ret == nil {
		return errs.NewObjectNotFoundError("return", o.id)
	}
	if err := o.ret.Approve(notes, at); err != nil {
		return err
	}
	o.touch(at)
	return nil
}

// RejectReturn declines the attached return with a reason.
func (o *Order) RejectReturn(reason string, at time.Time) error {
	if o.ret == nil {
		return errs.NewObjectNotFoundError("return", o.id)
	}
	if err := o.ret.Reject(reason, at); err != nil {
		return err
	}
	o.touch(at)
	return nil
}

// ValidateRefundable checks whether the order is eligible for a refund
// without mutating anything. Callers use it to gate the gateway refund call
// before recording the outcome with ProcessRefund.
func (o *Order) ValidateRefundable() error {
	if o.ret == nil {
		return errs.NewObjectNotFoundError("return", o.id)
	}
	if o.status != Delivered {
		return errs.NewPreconditionError(
			fmt.Sprintf("refund is not allowed for an order in status %s", o.status))
	}
	if o.payment == nil {
		return errs.NewPreconditionError("order has no payment")
	}
	if o.payment.Status() == PaymentRefunded {
		return errs.NewPreconditionError("payment is already refunded")
	}
	if o.ret.Status() != ReturnApproved {
		return errs.NewPreconditionError(
			fmt.Sprintf("return in status %s is not approved for refund", o.ret.Status()))
	}
	return nil
}

// ProcessRefund marks the payment refunded and completes the return. The
// gateway refund instruction is assumed to have already succeeded; this only
// records the outcome.
//
// Preconditions: an approved return exists, the order is Delivered and the
// payment is Completed. A second refund attempt fails with a
// PreconditionError instead of silently succeeding.
func (o *Order) ProcessRefund(providerResponse string, at time.Time) error {
	if err := o.ValidateRefundable(); err != nil {
		return err
	}

	if err := o.payment.Refund(providerResponse); err != nil {
		return err
	}
	if err := o.ret.MarkRefunded(at); err != nil {
		return err
	}

	o.touch(at)
	return nil
}

func (o *Order) touch(at time.Time) {
	o.updatedAt = at
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid order id", id))
	}
	o.id = id
	return nil
}

func (o *Order) setAmounts(subtotal, discountAmount, shippingFee kernel.Money) error {
	gross, err := subtotal.Add(shippingFee)
	if err != nil {
		return err
	}
	if _, err = gross.Sub(discountAmount); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("discountAmount",
			fmt.Errorf("discount %s exceeds subtotal plus shipping %s", discountAmount, gross))
	}

	o.subtotal = subtotal
	o.discountAmount = discountAmount
	o.shippingFee = shippingFee
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
