package commands_test

import (
	"testing"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/commands"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(7, order.Confirmed, "ghi chú")
		require.NoError(t, err)
		assert.Equal(t, int64(7), cmd.OrderID())
		assert.Equal(t, order.Confirmed, cmd.NewStatus())
		assert.Equal(t, "ghi chú", cmd.Notes())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(0, order.Confirmed, "")
		require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(7, order.Status(42), "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand(7, "khách đổi ý")
		require.NoError(t, err)
		assert.Equal(t, int64(7), cmd.OrderID())
		assert.Equal(t, "khách đổi ý", cmd.Reason())
	})

	t.Run("reason is optional", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(7, "")
		require.NoError(t, err)
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(0, "x")
		require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	})
}
