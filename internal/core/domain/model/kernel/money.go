package kernel

import (
	"fmt"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// Money is a value object representing a VND amount. Amounts are whole dong
// (the currency has no minor unit) and can never be negative.
//
// The zero value of Money is a valid zero amount, which keeps arithmetic on
// optional charges (discounts, shipping fees) simple.
//
// Example:
//
//	subtotal, _ := kernel.NewMoney(500000)
//	shipping, _ := kernel.NewMoney(30000)
//	total, _ := subtotal.Add(shipping)
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a zero VND amount.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the amount in whole dong.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.amount + other.amount)
}

// Sub returns the difference of two amounts.
// Fails when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount - other.amount)
}

// IsZero reports whether the amount is zero dong.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with the currency code, e.g. "530000 VND".
func (m Money) String() string {
	return fmt.Sprintf("%d VND", m.amount)
}
