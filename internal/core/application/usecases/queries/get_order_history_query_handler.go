package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// GetOrderHistoryQueryHandler reads the ledger straight from the database.
// Queries bypass the aggregate: they need no invariants, only rows.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the order's ledger in chronological order, earliest first.
// An order without rows yields an empty slice, not an error: callers decide
// whether a missing order matters.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			notes,
			occurred_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var status int
		var occurredAt time.Time

		err = rows.Scan(
			&entry.OrderID,
			&status,
			&entry.Notes,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		statusValue := order.Status(status)
		if err = statusValue.Validate(); err != nil {
			return nil, err
		}

		entry.Status = statusValue.String()
		entry.StatusLabel = statusValue.Label()
		entry.StatusColor = statusValue.Color()
		entry.OccurredAt = occurredAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
