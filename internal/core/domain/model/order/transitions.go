package order

// TransitionRegistry holds the legal-transition table for order statuses.
// It is the single source of truth for transition legality: no other code may
// hard-code which status follows which.
//
// The registry is built once at startup and never mutated afterwards, so it is
// safe for concurrent use.
type TransitionRegistry struct {
	edges map[Status][]Status
}

// NewTransitionRegistry builds the registry with the canonical edge set:
//
//	Pending    -> Confirmed, Cancelled
//	Confirmed  -> Processing, Cancelled
//	Processing -> Shipped, Cancelled
//	Shipped    -> Delivered
//	Delivered  -> (terminal)
//	Cancelled  -> (terminal)
func NewTransitionRegistry() *TransitionRegistry {
	return &TransitionRegistry{
		edges: map[Status][]Status{
			Pending:    {Confirmed, Cancelled},
			Confirmed:  {Processing, Cancelled},
			Processing: {Shipped, Cancelled},
			Shipped:    {Delivered},
			Delivered:  {},
			Cancelled:  {},
		},
	}
}

// CanTransition reports whether `to` appears in the edge set of `from`.
// Self-transitions are never legal: a no-op update must be rejected, not
// silently accepted, to keep the history ledger free of duplicate entries.
func (r *TransitionRegistry) CanTransition(from, to Status) bool {
	for _, next := range r.edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns a copy of the edge set for the given status.
// Empty for terminal states and for invalid statuses.
func (r *TransitionRegistry) NextStatuses(from Status) []Status {
	next := make([]Status, len(r.edges[from]))
	copy(next, r.edges[from])
	return next
}

// IsTerminal reports whether the status is valid and has no outgoing edges.
func (r *TransitionRegistry) IsTerminal(s Status) bool {
	edges, ok := r.edges[s]
	return ok && len(edges) == 0
}
