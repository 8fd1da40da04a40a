package queries

import (
	"errors"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
	ErrQueryOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderHistoryQuery retrieves the status history ledger for one order.
// The ledger answers "who moved this order, when, and why" for support and
// audit screens.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	entries, err := handler.Handle(ctx, query)
//	for _, e := range entries {
//	    fmt.Printf("%s  %s  %s\n", e.OccurredAt, e.Status, e.Notes)
//	}
type GetOrderHistoryQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a validated history query.
func NewGetOrderHistoryQuery(orderID int64) (GetOrderHistoryQuery, error) {
	if orderID <= 0 {
		return GetOrderHistoryQuery{}, ErrQueryOrderIDIsInvalid
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q GetOrderHistoryQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderHistoryQueryResponse is one ledger row, ready for display: the
// status comes with its Vietnamese label and badge color alongside the wire
// name.
type GetOrderHistoryQueryResponse struct {
	OrderID     int64
	Status      string
	StatusLabel string
	StatusColor string
	Notes       string
	OccurredAt  time.Time
}
