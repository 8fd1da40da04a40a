package commands_test

import (
	"errors"
	"testing"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/commands"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutItems() []commands.OrderItemInput {
	return []commands.OrderItemInput{
		{ProductVariantID: 11, Quantity: 2, UnitPrice: 250000},
	}
}

func expectAddFlow(t *testing.T) (*MockOrderUoWFactory, *MockOrderRepository, *MockHistoryRepository) {
	t.Helper()

	mockRepo := new(MockOrderRepository)
	mockHistory := new(MockHistoryRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", mock.Anything).Return(nil).Once(),
		mockRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		mockHistory.On("Append", mock.Anything, mock.AnythingOfType("order.StatusChange")).Return(nil).Once(),
		mockUoW.On("Commit", mock.Anything).Return(nil).Once(),
		mockUoW.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	mockUoW.On("OrderRepository").Return(mockRepo)
	mockUoW.On("HistoryRepository").Return(mockHistory)
	mockFactory.On("Create").Return(mockUoW).Once()

	return mockFactory, mockRepo, mockHistory
}

func TestCreateOrderCommandHandler_Handle_VNPay(t *testing.T) {
	// Arrange
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(1, 500000, 0, 30000, checkoutItems(), order.MethodVNPay)
	require.NoError(t, err)

	mockFactory, _, mockHistory := expectAddFlow(t)
	mockGateway := new(MockPaymentGateway)
	mockGateway.On("Capture", ctx, mustMoney(t, 530000)).Return("VNP-001", nil).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, mockGateway)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, mustMoney(t, 530000), created.TotalAmount())

	// Online payment is captured at checkout.
	require.NotNil(t, created.Payment())
	assert.Equal(t, order.PaymentCompleted, created.Payment().Status())
	assert.Equal(t, "VNP-001", created.Payment().TransactionCode())

	// The ledger opens with the Pending row.
	change := mockHistory.Calls[0].Arguments.Get(1).(order.StatusChange)
	assert.Equal(t, order.Pending, change.Status())
	assert.Equal(t, "order placed", change.Notes())

	mockGateway.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_COD(t *testing.T) {
	// Arrange
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(1, 500000, 20000, 30000, checkoutItems(), order.MethodCOD)
	require.NoError(t, err)

	mockFactory, _, _ := expectAddFlow(t)
	mockGateway := new(MockPaymentGateway)

	handler := commands.NewCreateOrderCommandHandler(mockFactory, mockGateway)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, mustMoney(t, 510000), created.TotalAmount())

	// COD stays pending until the courier collects.
	require.NotNil(t, created.Payment())
	assert.Equal(t, order.PaymentPending, created.Payment().Status())

	mockGateway.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CaptureFails(t *testing.T) {
	// Arrange
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(1, 500000, 0, 30000, checkoutItems(), order.MethodVNPay)
	require.NoError(t, err)

	captureErr := errors.New("provider declined")

	mockFactory := new(MockOrderUoWFactory)
	mockGateway := new(MockPaymentGateway)
	mockGateway.On("Capture", ctx, mustMoney(t, 530000)).Return("", captureErr).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, mockGateway)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, captureErr)
	// No transaction is opened when the capture is declined.
	mockFactory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(1, 500000, 0, 30000, nil, order.MethodCOD)
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("negative subtotal", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(1, -1, 0, 30000, checkoutItems(), order.MethodCOD)
		require.Error(t, err)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(1, 500000, 0, 30000, checkoutItems(), order.PaymentMethod("PAYPAL"))
		require.Error(t, err)
	})

	t.Run("zero quantity item", func(t *testing.T) {
		items := []commands.OrderItemInput{{ProductVariantID: 11, Quantity: 0, UnitPrice: 250000}}
		_, err := commands.NewCreateOrderCommand(1, 500000, 0, 30000, items, order.MethodCOD)
		require.Error(t, err)
	})
}
