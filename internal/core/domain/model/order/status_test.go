package order_test

import (
	"testing"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending, order.Confirmed, order.Processing,
		order.Shipped, order.Delivered, order.Cancelled,
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		require.NoError(t, s.Validate())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "CONFIRMED", order.Confirmed.String())
	assert.Equal(t, "PROCESSING", order.Processing.String())
	assert.Equal(t, "SHIPPED", order.Shipped.String())
	assert.Equal(t, "DELIVERED", order.Delivered.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	for _, s := range allStatuses() {
		parsed, err := order.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.StatusFromString("SHIPPING")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_LabelAndColor(t *testing.T) {
	assert.Equal(t, "Chờ xác nhận", order.Pending.Label())
	assert.Equal(t, "gold", order.Pending.Color())
	assert.Equal(t, "red", order.Cancelled.Color())
	assert.Equal(t, "default", order.Status(99).Color())
}

func TestTransitionRegistry_TableClosure(t *testing.T) {
	registry := order.NewTransitionRegistry()

	legal := map[order.Status][]order.Status{
		order.Pending:    {order.Confirmed, order.Cancelled},
		order.Confirmed:  {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {},
		order.Cancelled:  {},
	}

	// Every pair is checked in both directions: edges in the table are legal,
	// everything else (including self-transitions) is not.
	for _, from := range allStatuses() {
		allowed := map[order.Status]bool{}
		for _, to := range legal[from] {
			allowed[to] = true
		}
		for _, to := range allStatuses() {
			assert.Equal(t, allowed[to], registry.CanTransition(from, to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestTransitionRegistry_SelfTransitionsAreIllegal(t *testing.T) {
	registry := order.NewTransitionRegistry()
	for _, s := range allStatuses() {
		assert.False(t, registry.CanTransition(s, s), "self transition %s", s)
	}
}

func TestTransitionRegistry_NextStatuses(t *testing.T) {
	registry := order.NewTransitionRegistry()

	assert.ElementsMatch(t,
		[]order.Status{order.Confirmed, order.Cancelled},
		registry.NextStatuses(order.Pending))
	assert.Empty(t, registry.NextStatuses(order.Delivered))
	assert.Empty(t, registry.NextStatuses(order.Cancelled))
	assert.Empty(t, registry.NextStatuses(order.Unknown))
}

func TestTransitionRegistry_NextStatusesReturnsCopy(t *testing.T) {
	registry := order.NewTransitionRegistry()

	next := registry.NextStatuses(order.Pending)
	next[0] = order.Delivered

	assert.ElementsMatch(t,
		[]order.Status{order.Confirmed, order.Cancelled},
		registry.NextStatuses(order.Pending))
}

func TestTransitionRegistry_IsTerminal(t *testing.T) {
	registry := order.NewTransitionRegistry()

	assert.True(t, registry.IsTerminal(order.Delivered))
	assert.True(t, registry.IsTerminal(order.Cancelled))
	assert.False(t, registry.IsTerminal(order.Pending))
	assert.False(t, registry.IsTerminal(order.Shipped))
	assert.False(t, registry.IsTerminal(order.Unknown))
}
