package ports

import (
	"context"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
)

// HistoryRepository is the append-only status history ledger. Entries are
// never updated or deleted.
type HistoryRepository interface {
	// Append records one status change. Rows are written in the same
	// transaction as the aggregate mutation they describe.
	Append(ctx context.Context, change order.StatusChange) error

	// ListByOrder returns the ledger for one order in chronological order,
	// earliest first.
	ListByOrder(ctx context.Context, orderID int64) ([]order.StatusChange, error)
}
