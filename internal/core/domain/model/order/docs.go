// Package order contains the order aggregate and its lifecycle state machine.
//
// Order is the aggregate root; Payment, Shipment, Return and the line items
// are sub-entities whose lifetimes are bound to it. TransitionRegistry is the
// single source of truth for which order status may follow which, and
// StatusChange is the append-only history row recorded for every transition.
//
// All entities use guarded constructors: direct struct initialization yields
// a zero value that fails Validate, so every instance in the system has
// passed its creation-time checks. Aggregate methods run every check before
// the first mutation, which keeps a failed call free of observable partial
// state.
package order
