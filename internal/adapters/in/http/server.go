// Package http exposes the order lifecycle over REST using echo. The adapter
// translates between JSON payloads and commands/queries; every business rule
// stays behind the handlers it calls.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/commands"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/application/usecases/queries"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/order"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	recordShipmentEventHandler commands.RecordShipmentEventCommandHandler
	requestReturnHandler       commands.RequestReturnCommandHandler
	approveReturnHandler       commands.ApproveReturnCommandHandler
	rejectReturnHandler        commands.RejectReturnCommandHandler
	processRefundHandler       commands.ProcessRefundCommandHandler
	bulkUpdateHandler          commands.BulkUpdateOrderStatusCommandHandler

	getOrderHistoryHandler   queries.GetOrderHistoryQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates the HTTP server with all command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordShipmentEventHandler commands.RecordShipmentEventCommandHandler,
	requestReturnHandler commands.RequestReturnCommandHandler,
	approveReturnHandler commands.ApproveReturnCommandHandler,
	rejectReturnHandler commands.RejectReturnCommandHandler,
	processRefundHandler commands.ProcessRefundCommandHandler,
	bulkUpdateHandler commands.BulkUpdateOrderStatusCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		recordShipmentEventHandler: recordShipmentEventHandler,
		requestReturnHandler:       requestReturnHandler,
		approveReturnHandler:       approveReturnHandler,
		rejectReturnHandler:        rejectReturnHandler,
		processRefundHandler:       processRefundHandler,
		bulkUpdateHandler:          bulkUpdateHandler,
		getOrderHistoryHandler:     getOrderHistoryHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
	}
}

// RegisterRoutes wires all order lifecycle routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrdersByStatus)
	v1.PUT("/orders/bulk-status", s.BulkUpdateOrderStatus)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.PUT("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/shipment/events", s.RecordShipmentEvent)
	v1.POST("/orders/:id/return", s.RequestReturn)
	v1.POST("/orders/:id/return/approve", s.ApproveReturn)
	v1.POST("/orders/:id/return/reject", s.RejectReturn)
	v1.POST("/orders/:id/return/refund", s.ProcessRefund)
	v1.GET("/orders/:id/history", s.GetOrderHistory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.OrderID,
		req.Subtotal,
		req.DiscountAmount,
		req.ShippingFee,
		items,
		order.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(cancelled))
}

// RecordShipmentEvent handles POST /api/v1/orders/:id/shipment/events.
func (s *Server) RecordShipmentEvent(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ShipmentEventRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordShipmentEventCommand(
		orderID,
		commands.ShipmentEvent(req.Event),
		req.ProviderName,
		req.TrackingCode,
		timeOrZero(req.EstimatedDeliveryFrom),
		timeOrZero(req.EstimatedDeliveryTo),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.recordShipmentEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// RequestReturn handles POST /api/v1/orders/:id/return.
func (s *Server) RequestReturn(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestReturnCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.requestReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(updated))
}

// ApproveReturn handles POST /api/v1/orders/:id/return/approve.
func (s *Server) ApproveReturn(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ReviewReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApproveReturnCommand(orderID, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.approveReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// RejectReturn handles POST /api/v1/orders/:id/return/reject.
func (s *Server) RejectReturn(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ReviewReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectReturnCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.rejectReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ProcessRefund handles POST /api/v1/orders/:id/return/refund.
func (s *Server) ProcessRefund(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewProcessRefundCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.processRefundHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// BulkUpdateOrderStatus handles PUT /api/v1/orders/bulk-status.
func (s *Server) BulkUpdateOrderStatus(ctx echo.Context) error {
	var req BulkUpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewBulkUpdateOrderStatusCommand(req.OrderIDs, status, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.bulkUpdateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkResponse(result))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			OrderID:     entry.OrderID,
			Status:      entry.Status,
			StatusLabel: entry.StatusLabel,
			StatusColor: entry.StatusColor,
			Notes:       entry.Notes,
			OccurredAt:  entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Unknown status: "+ctx.QueryParam("status"))
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderListItemResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderListItemResponse{
			ID:          row.ID,
			Status:      row.Status,
			StatusLabel: row.StatusLabel,
			StatusColor: row.StatusColor,
			TotalAmount: row.TotalAmount,
			Version:     row.Version,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes. Rejected transitions
// additionally serialize the from/to pair so clients can render the reason.
func writeError(ctx echo.Context, err error) error {
	var transitionErr *errs.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, TransitionErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: transitionErr.Error(),
			From:    transitionErr.From,
			To:      transitionErr.To,
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrAlreadyApplied):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func toBulkResponse(result commands.BulkResult) BulkUpdateStatusResponse {
	response := BulkUpdateStatusResponse{
		Succeeded: result.Succeeded,
		Failed:    make([]BulkFailureResponse, 0, len(result.Failed)),
	}

	for _, failure := range result.Failed {
		response.Failed = append(response.Failed, BulkFailureResponse{
			OrderID: failure.OrderID,
			Error:   failure.Err.Error(),
		})
	}

	return response
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	response := OrderResponse{
		ID:          aggregate.ID(),
		Status:      aggregate.Status().String(),
		StatusLabel: aggregate.Status().Label(),
		StatusColor: aggregate.Status().Color(),
		Subtotal:    aggregate.Subtotal().Amount(),
		Discount:    aggregate.DiscountAmount().Amount(),
		ShippingFee: aggregate.ShippingFee().Amount(),
		TotalAmount: aggregate.TotalAmount().Amount(),
		Notes:       aggregate.Notes(),
		Version:     aggregate.Version(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}

	if window := aggregate.DeliveryWindow(); window != nil {
		from, to := window.From(), window.To()
		response.DeliveryFrom = &from
		response.DeliveryTo = &to
	}

	for _, item := range aggregate.Items() {
		response.Items = append(response.Items, OrderItemResponse{
			ProductVariantID: item.ProductVariantID(),
			Quantity:         item.Quantity(),
			UnitPrice:        item.UnitPrice().Amount(),
		})
	}

	if payment := aggregate.Payment(); payment != nil {
		response.Payment = &PaymentResponse{
			Status:          payment.Status().String(),
			Method:          string(payment.Method()),
			Amount:          payment.Amount().Amount(),
			TransactionCode: payment.TransactionCode(),
		}
	}

	if shipment := aggregate.Shipment(); shipment != nil {
		response.Shipment = &ShipmentResponse{
			Status:       shipment.Status().String(),
			TrackingCode: shipment.TrackingCode(),
			ProviderName: shipment.ProviderName(),
			ShippedAt:    shipment.ShippedAt(),
			DeliveredAt:  shipment.DeliveredAt(),
		}
	}

	if ret := aggregate.Return(); ret != nil {
		response.Return = &ReturnResponse{
			Status:          ret.Status().String(),
			Reason:          ret.Reason(),
			ResolutionNotes: ret.ResolutionNotes(),
		}
	}

	return response
}

// Request payloads.
type (
	CreateOrderRequest struct {
		OrderID        int64                    `json:"orderId"`
		Subtotal       int64                    `json:"subtotal"`
		DiscountAmount int64                    `json:"discountAmount"`
		ShippingFee    int64                    `json:"shippingFee"`
		PaymentMethod  string                   `json:"paymentMethod"`
		Items          []CreateOrderItemRequest `json:"items"`
	}

	CreateOrderItemRequest struct {
		ProductVariantID int64 `json:"productVariantId"`
		Quantity         int   `json:"quantity"`
		UnitPrice        int64 `json:"unitPrice"`
	}

	UpdateStatusRequest struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}

	CancelOrderRequest struct {
		Reason string `json:"reason"`
	}

	ShipmentEventRequest struct {
		Event                 string     `json:"event"`
		ProviderName          string     `json:"providerName"`
		TrackingCode          string     `json:"trackingCode"`
		EstimatedDeliveryFrom *time.Time `json:"estimatedDeliveryFrom"`
		EstimatedDeliveryTo   *time.Time `json:"estimatedDeliveryTo"`
	}

	ReturnRequest struct {
		Reason string `json:"reason"`
	}

	ReviewReturnRequest struct {
		Notes  string `json:"notes"`
		Reason string `json:"reason"`
	}

	BulkUpdateStatusRequest struct {
		OrderIDs []int64 `json:"orderIds"`
		Status   string  `json:"status"`
		Notes    string  `json:"notes"`
	}
)

// Response payloads.
type (
	ErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	TransitionErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		From    string `json:"from"`
		To      string `json:"to"`
	}

	OrderResponse struct {
		ID           int64               `json:"id"`
		Status       string              `json:"status"`
		StatusLabel  string              `json:"statusLabel"`
		StatusColor  string              `json:"statusColor"`
		Subtotal     int64               `json:"subtotal"`
		Discount     int64               `json:"discountAmount"`
		ShippingFee  int64               `json:"shippingFee"`
		TotalAmount  int64               `json:"totalAmount"`
		Notes        string              `json:"notes,omitempty"`
		DeliveryFrom *time.Time          `json:"deliveryFrom,omitempty"`
		DeliveryTo   *time.Time          `json:"deliveryTo,omitempty"`
		Items        []OrderItemResponse `json:"items,omitempty"`
		Payment      *PaymentResponse    `json:"payment,omitempty"`
		Shipment     *ShipmentResponse   `json:"shipment,omitempty"`
		Return       *ReturnResponse     `json:"return,omitempty"`
		Version      int64               `json:"version"`
		CreatedAt    time.Time           `json:"createdAt"`
		UpdatedAt    time.Time           `json:"updatedAt"`
	}

	OrderItemResponse struct {
		ProductVariantID int64 `json:"productVariantId"`
		Quantity         int   `json:"quantity"`
		UnitPrice        int64 `json:"unitPrice"`
	}

	PaymentResponse struct {
		Status          string `json:"status"`
		Method          string `json:"method"`
		Amount          int64  `json:"amount"`
		TransactionCode string `json:"transactionCode,omitempty"`
	}

	ShipmentResponse struct {
		Status       string     `json:"status"`
		TrackingCode string     `json:"trackingCode,omitempty"`
		ProviderName string     `json:"providerName"`
		ShippedAt    *time.Time `json:"shippedAt,omitempty"`
		DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
	}

	ReturnResponse struct {
		Status          string `json:"status"`
		Reason          string `json:"reason"`
		ResolutionNotes string `json:"resolutionNotes,omitempty"`
	}

	HistoryEntryResponse struct {
		OrderID     int64     `json:"orderId"`
		Status      string    `json:"status"`
		StatusLabel string    `json:"statusLabel"`
		StatusColor string    `json:"statusColor"`
		Notes       string    `json:"notes,omitempty"`
		OccurredAt  time.Time `json:"occurredAt"`
	}

	OrderListItemResponse struct {
		ID          int64     `json:"id"`
		Status      string    `json:"status"`
		StatusLabel string    `json:"statusLabel"`
		StatusColor string    `json:"statusColor"`
		TotalAmount int64     `json:"totalAmount"`
		Version     int64     `json:"version"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	BulkUpdateStatusResponse struct {
		Succeeded []int64               `json:"succeeded"`
		Failed    []BulkFailureResponse `json:"failed"`
	}

	BulkFailureResponse struct {
		OrderID int64  `json:"orderId"`
		Error   string `json:"error"`
	}
)
