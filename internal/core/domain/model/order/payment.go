package order

import (
	"errors"
	"fmt"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// PaymentStatus represents the state of an order's payment.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentCompleted
	PaymentFailed
	PaymentRefunded
	PaymentCancelled
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "Unknown",
		PaymentPending:   "PENDING",
		PaymentCompleted: "COMPLETED",
		PaymentFailed:    "FAILED",
		PaymentRefunded:  "REFUNDED",
		PaymentCancelled: "CANCELLED",
	}
}

// Validate checks that the value is one of the five defined payment states.
func (s PaymentStatus) Validate() error {
	if s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// PaymentMethod identifies how the customer pays.
type PaymentMethod string

const (
	MethodCOD   PaymentMethod = "COD"
	MethodVNPay PaymentMethod = "VNPAY"
)

// Validate checks the method is one of the supported values.
func (m PaymentMethod) Validate() error {
	if m != MethodCOD && m != MethodVNPay {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", string(m)))
	}
	return nil
}

// Payment is the payment sub-entity owned by an Order. An order has at most
// one, and its amount must equal the order's total at the moment it is
// attached. The transaction code is opaque, assigned by the gateway, and may
// be empty for cash-on-delivery payments.
type Payment struct {
	status           PaymentStatus
	method           PaymentMethod
	amount           kernel.Money
	transactionCode  string
	providerResponse string

	isConstructed bool
}

// NewPayment creates a pending payment for the given method and amount.
// transactionCode may be empty for COD.
func NewPayment(method PaymentMethod, amount kernel.Money, transactionCode string) (*Payment, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, errs.NewValueIsRequiredError("amount")
	}

	return &Payment{
		status:          PaymentPending,
		method:          method,
		amount:          amount,
		transactionCode: transactionCode,
		isConstructed:   true,
	}, nil
}

// RestorePayment rehydrates a payment from persistence without re-running the
// creation-time checks. Repository use only.
func RestorePayment(
	status PaymentStatus,
	method PaymentMethod,
	amount kernel.Money,
	transactionCode, providerResponse string,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		status:           status,
		method:           method,
		amount:           amount,
		transactionCode:  transactionCode,
		providerResponse: providerResponse,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) Status() PaymentStatus {
	return p.status
}

func (p *Payment) Method() PaymentMethod {
	return p.method
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) TransactionCode() string {
	return p.transactionCode
}

func (p *Payment) ProviderResponse() string {
	return p.providerResponse
}

// MarkCompleted records a successful capture reported by the gateway.
// Legal only while the payment is pending.
func (p *Payment) MarkCompleted(transactionCode, providerResponse string) error {
	if p.status != PaymentPending {
		return errs.NewPreconditionError(
			fmt.Sprintf("payment in status %s cannot be completed", p.status))
	}
	if transactionCode != "" {
		p.transactionCode = transactionCode
	}
	p.providerResponse = providerResponse
	p.status = PaymentCompleted
	return nil
}

// MarkFailed records a failed capture reported by the gateway.
func (p *Payment) MarkFailed(providerResponse string) error {
	if p.status != PaymentPending {
		return errs.NewPreconditionError(
			fmt.Sprintf("payment in status %s cannot fail", p.status))
	}
	p.providerResponse = providerResponse
	p.status = PaymentFailed
	return nil
}

// Cancel voids the payment when its order is cancelled. A completed payment
// becomes Cancelled, not Refunded: moving money back is a separate, explicit
// refund operation.
func (p *Payment) Cancel() error {
	if p.status != PaymentPending && p.status != PaymentCompleted {
		return errs.NewPreconditionError(
			fmt.Sprintf("payment in status %s cannot be cancelled", p.status))
	}
	p.status = PaymentCancelled
	return nil
}

// Refund moves a completed payment to Refunded. A payment that is already
// refunded is rejected so a double-refund attempt never passes silently.
func (p *Payment) Refund(providerResponse string) error {
	if p.status == PaymentRefunded {
		return errs.NewPreconditionError("payment is already refunded")
	}
	if p.status != PaymentCompleted {
		return errs.NewPreconditionError(
			fmt.Sprintf("payment in status %s cannot be refunded", p.status))
	}
	p.providerResponse = providerResponse
	p.status = PaymentRefunded
	return nil
}
