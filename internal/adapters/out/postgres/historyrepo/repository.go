package historyrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append writes one ledger row.
func (r *GormHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	dto := fromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder returns the order's ledger in chronological order, earliest
// first. The row id breaks ties between entries written in the same instant.
func (r *GormHistoryRepository) ListByOrder(ctx context.Context, orderID int64) ([]order.StatusChange, error) {
	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	changes := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, changeErr := toDomain(dto)
		if changeErr != nil {
			return nil, changeErr
		}
		changes = append(changes, change)
	}

	return changes, nil
}
