package commands_test

import (
	"errors"
	"testing"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/commands"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func approvedReturnOrder(t *testing.T) *order.Order {
	t.Helper()

	stored := deliveredOrderWithReturn(t)
	require.NoError(t, stored.ApproveReturn("", testClock))
	return stored
}

func TestProcessRefundCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := approvedReturnOrder(t)

	cmd, err := commands.NewProcessRefundCommand(1)
	require.NoError(t, err)

	mockFactory, mockHistory := expectMutatingFlow(t, stored)
	mockGateway := new(MockPaymentGateway)
	mockGateway.On("Refund", ctx, "TX-1", stored.TotalAmount()).
		Return("refund accepted", nil).Once()

	handler := commands.NewProcessRefundCommandHandler(mockFactory, mockGateway)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.PaymentRefunded, updated.Payment().Status())
	assert.Equal(t, order.ReturnRefunded, updated.Return().Status())
	assert.Equal(t, "refund accepted", updated.Payment().ProviderResponse())

	change := mockHistory.Calls[0].Arguments.Get(1).(order.StatusChange)
	assert.Equal(t, "refund processed", change.Notes())

	mockGateway.AssertExpectations(t)
}

func TestProcessRefundCommandHandler_Handle_UnapprovedReturn(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := deliveredOrderWithReturn(t) // return still pending review

	cmd, err := commands.NewProcessRefundCommand(1)
	require.NoError(t, err)

	mockFactory := expectRejectedFlow(t, stored)
	mockGateway := new(MockPaymentGateway)

	handler := commands.NewProcessRefundCommandHandler(mockFactory, mockGateway)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	// An ineligible order never reaches the provider.
	mockGateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessRefundCommandHandler_Handle_SecondRefund(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := approvedReturnOrder(t)
	require.NoError(t, stored.ProcessRefund("already done", testClock))

	cmd, err := commands.NewProcessRefundCommand(1)
	require.NoError(t, err)

	mockFactory := expectRejectedFlow(t, stored)
	mockGateway := new(MockPaymentGateway)

	handler := commands.NewProcessRefundCommandHandler(mockFactory, mockGateway)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	mockGateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessRefundCommandHandler_Handle_GatewayError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := approvedReturnOrder(t)

	cmd, err := commands.NewProcessRefundCommand(1)
	require.NoError(t, err)

	gatewayErr := errors.New("provider unavailable")

	mockFactory := expectRejectedFlow(t, stored)
	mockGateway := new(MockPaymentGateway)
	mockGateway.On("Refund", ctx, "TX-1", stored.TotalAmount()).
		Return("", gatewayErr).Once()

	handler := commands.NewProcessRefundCommandHandler(mockFactory, mockGateway)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, gatewayErr)
	// The aggregate is untouched when the provider refuses.
	assert.Equal(t, order.PaymentCompleted, stored.Payment().Status())
	assert.Equal(t, order.ReturnApproved, stored.Return().Status())
}
