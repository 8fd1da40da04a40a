package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler lists orders in one status from the database.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for work queue listings.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle returns the matching orders sorted by id for stable paging.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			subtotal + shipping_fee - discount_amount AS total_amount,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	status := query.Status()

	for rows.Next() {
		var resp GetOrdersByStatusQueryResponse
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&resp.ID,
			&resp.TotalAmount,
			&resp.Version,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = status.String()
		resp.StatusLabel = status.Label()
		resp.StatusColor = status.Color()
		resp.CreatedAt = createdAt
		resp.UpdatedAt = updatedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
