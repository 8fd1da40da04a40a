// Package kernel contains shared value objects used across the domain model.
//
// Money represents non-negative VND amounts with safe arithmetic, and
// DeliveryWindow represents the estimated delivery interval attached to an
// order. Both are immutable value objects created through validated
// constructors; their zero values are either valid (Money) or rejected by
// Validate-style checks at the aggregate boundary (DeliveryWindow is always
// optional and carried behind a pointer).
package kernel
