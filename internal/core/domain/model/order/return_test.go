package order_test

import (
	"testing"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturn(t *testing.T) {
	at := time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC)

	r, err := order.NewReturn("sản phẩm bị lỗi", at)
	require.NoError(t, err)
	assert.Equal(t, order.ReturnPending, r.Status())
	assert.Equal(t, "sản phẩm bị lỗi", r.Reason())
	assert.Equal(t, at, r.CreatedAt())

	_, err = order.NewReturn("", at)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestReturn_ApproveRejectRefund(t *testing.T) {
	at := time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC)

	t.Run("approve then refund", func(t *testing.T) {
		r, _ := order.NewReturn("sản phẩm bị lỗi", at)
		require.NoError(t, r.Approve("đồng ý", at.Add(time.Hour)))
		assert.Equal(t, order.ReturnApproved, r.Status())
		assert.Equal(t, "đồng ý", r.ResolutionNotes())
		assert.Equal(t, at.Add(time.Hour), r.UpdatedAt())

		require.NoError(t, r.MarkRefunded(at.Add(2*time.Hour)))
		assert.Equal(t, order.ReturnRefunded, r.Status())
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		r, _ := order.NewReturn("sản phẩm bị lỗi", at)
		require.NoError(t, r.Approve("", at))
		require.ErrorIs(t, r.Approve("", at), errs.ErrPreconditionFailed)
	})

	t.Run("refund requires approval", func(t *testing.T) {
		r, _ := order.NewReturn("sản phẩm bị lỗi", at)
		require.ErrorIs(t, r.MarkRefunded(at), errs.ErrPreconditionFailed)
	})

	t.Run("reject keeps the return attached", func(t *testing.T) {
		r, _ := order.NewReturn("sản phẩm bị lỗi", at)
		require.NoError(t, r.Reject("đã qua thời hạn đổi trả", at))
		assert.Equal(t, order.ReturnRejected, r.Status())
		assert.Equal(t, "đã qua thời hạn đổi trả", r.ResolutionNotes())

		require.ErrorIs(t, r.MarkRefunded(at), errs.ErrPreconditionFailed)
		require.ErrorIs(t, r.Reject("again", at), errs.ErrAlreadyApplied)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		r, _ := order.NewReturn("sản phẩm bị lỗi", at)
		require.ErrorIs(t, r.Reject("", at), errs.ErrValueIsRequired)
	})

	t.Run("refunded return cannot be rejected", func(t *testing.T) {
		r, _ := order.NewReturn("sản phẩm bị lỗi", at)
		require.NoError(t, r.Approve("", at))
		require.NoError(t, r.MarkRefunded(at))
		require.ErrorIs(t, r.Reject("late", at), errs.ErrPreconditionFailed)
	})
}
