package ports

import (
	"context"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
)

// PaymentGateway is the outbound contract to the payment provider. The
// lifecycle core never retries gateway calls; a capture or refund outcome is
// an input to the state machine, not something it orchestrates.
type PaymentGateway interface {
	// Capture charges the amount and returns the provider's opaque
	// transaction code.
	Capture(ctx context.Context, amount kernel.Money) (string, error)

	// Refund instructs the provider to return the captured amount and
	// returns the provider's response log line.
	Refund(ctx context.Context, transactionCode string, amount kernel.Money) (string, error)
}
