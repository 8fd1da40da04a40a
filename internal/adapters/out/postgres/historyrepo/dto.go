// Package historyrepo persists the order status history ledger. The ledger
// is append-only: rows are written once and never updated or deleted.
package historyrepo

import (
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// StatusChangeDTO is one ledger row.
type StatusChangeDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"index"`
	Status     int
	Notes      string
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger rows.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(change order.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		OrderID:    change.OrderID(),
		Status:     int(change.Status()),
		Notes:      change.Notes(),
		OccurredAt: change.OccurredAt(),
	}
}

func toDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	return order.NewStatusChange(dto.OrderID, order.Status(dto.Status), dto.Notes, dto.OccurredAt)
}
