package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/commands"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// paymentTimeoutReason lands in the history ledger for auto-cancelled orders.
const paymentTimeoutReason = "hủy tự động: quá hạn thanh toán"

// PaymentTimeoutJob cancels Pending orders whose payment never arrived.
// Orders whose payment completed at checkout are left alone; the timeout
// only applies while money is still outstanding.
type PaymentTimeoutJob struct {
	uowFactory commands.OrderUoWFactory
	canceller  commands.CancelOrderCommandHandler
	timeout    time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPaymentTimeoutJob creates a job that sweeps for lapsed orders once a
// minute. The timeout is how long an order may sit Pending and unpaid.
func NewPaymentTimeoutJob(
	uowFactory commands.OrderUoWFactory,
	canceller commands.CancelOrderCommandHandler,
	timeout time.Duration,
	logger *slog.Logger,
) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		uowFactory: uowFactory,
		canceller:  canceller,
		timeout:    timeout,
		cron:       cron.New(),
		logger:     logger.With("component", "payment_timeout_job"),
	}
}

// Start begins the sweep, running at the top of every minute.
func (j *PaymentTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment timeout job started (running every minute)")
	return nil
}

// Stop stops the payment timeout job.
func (j *PaymentTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment timeout job stopped")
}

// sweep finds lapsed Pending orders and cancels them one at a time. One
// order failing does not abort the sweep.
func (j *PaymentTimeoutJob) sweep(ctx context.Context) error {
	cutoff := time.Now().Add(-j.timeout)

	uow := j.uowFactory.Create()
	lapsed, err := uow.OrderRepository().GetPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, lapsedOrder := range lapsed {
		if payment := lapsedOrder.Payment(); payment != nil && payment.Status() == order.PaymentCompleted {
			continue
		}

		if err := j.cancel(ctx, lapsedOrder.ID()); err != nil {
			// A concurrent admin action may have moved the order already.
			if errors.Is(err, errs.ErrConcurrentModification) || errors.Is(err, errs.ErrPreconditionFailed) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to cancel lapsed order",
				"order_id", lapsedOrder.ID(), "error", err)
		}
	}

	return nil
}

func (j *PaymentTimeoutJob) cancel(ctx context.Context, orderID int64) error {
	cmd, err := commands.NewCancelOrderCommand(orderID, paymentTimeoutReason)
	if err != nil {
		return err
	}

	_, err = j.canceller.Handle(ctx, cmd)
	if err == nil {
		j.logger.InfoContext(ctx, "Cancelled lapsed order", "order_id", orderID)
	}
	return err
}
