package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/station"
	"laundry/internal/core/domain/services"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	startVerificationHandler       commands.StartVerificationCommandHandler
	requestBypassHandler           commands.RequestBypassCommandHandler
	resolveBypassHandler           commands.ResolveBypassCommandHandler
	completeProcessHandler         commands.CompleteProcessCommandHandler
	completeBypassedProcessHandler commands.CompleteBypassedProcessCommandHandler

	// Query handlers
	getOrderHandler                 queries.GetOrderQueryHandler
	getStationQueueHandler          queries.GetStationQueueQueryHandler
	getPendingBypassRequestsHandler queries.GetPendingBypassRequestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	startVerificationHandler commands.StartVerificationCommandHandler,
	requestBypassHandler commands.RequestBypassCommandHandler,
	resolveBypassHandler commands.ResolveBypassCommandHandler,
	completeProcessHandler commands.CompleteProcessCommandHandler,
	completeBypassedProcessHandler commands.CompleteBypassedProcessCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStationQueueHandler queries.GetStationQueueQueryHandler,
	getPendingBypassRequestsHandler queries.GetPendingBypassRequestsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		startVerificationHandler:        startVerificationHandler,
		requestBypassHandler:            requestBypassHandler,
		resolveBypassHandler:            resolveBypassHandler,
		completeProcessHandler:          completeProcessHandler,
		completeBypassedProcessHandler:  completeBypassedProcessHandler,
		getOrderHandler:                 getOrderHandler,
		getStationQueueHandler:          getStationQueueHandler,
		getPendingBypassRequestsHandler: getPendingBypassRequestsHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new laundry order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return validationError(ctx, "Invalid request body")
	}

	items := make([]order.OrderItem, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		unitPrice, err := kernel.NewMoney(line.UnitPrice)
		if err != nil {
			return validationError(ctx, "Invalid order data: "+err.Error())
		}

		item, err := order.NewOrderItem(line.LaundryItemId, line.Name, line.Quantity, unitPrice)
		if err != nil {
			return validationError(ctx, "Invalid order data: "+err.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.CustomerName, items)
	if err != nil {
		return validationError(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return internalError(ctx, "Failed to load created order")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to load created order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		OrderId:     orderID.Bytes(),
		OrderNumber: view.OrderNumber,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves the full order view.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return validationError(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return validationError(ctx, "Invalid order ID")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(view))
}

// StartWorkProcess handles POST /api/v1/orders/{orderId}/work-processes -
// submits the verification sheet and opens the station pass.
func (s *Server) StartWorkProcess(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.NewWorkProcess
	if err := ctx.Bind(&body); err != nil {
		return validationError(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return validationError(ctx, "Invalid order ID")
	}

	employeeID, err := kernel.UUIDFromBytes(body.EmployeeId[:])
	if err != nil {
		return validationError(ctx, "Invalid employee ID")
	}

	st, err := station.ParseStation(string(body.Station))
	if err != nil {
		return validationError(ctx, "Invalid station")
	}

	cmd, err := commands.NewStartVerificationCommand(orderID, employeeID, st, rowsFromRequest(body.Rows))
	if err != nil {
		return validationError(ctx, "Invalid verification data: "+err.Error())
	}

	if handleErr := s.startVerificationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RequestBypass handles POST /api/v1/orders/{orderId}/bypass-requests -
// escalates a verification mismatch for admin approval.
func (s *Server) RequestBypass(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.NewBypassRequest
	if err := ctx.Bind(&body); err != nil {
		return validationError(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return validationError(ctx, "Invalid order ID")
	}

	employeeID, err := kernel.UUIDFromBytes(body.EmployeeId[:])
	if err != nil {
		return validationError(ctx, "Invalid employee ID")
	}

	st, err := station.ParseStation(string(body.Station))
	if err != nil {
		return validationError(ctx, "Invalid station")
	}

	cmd, err := commands.NewRequestBypassCommand(orderID, employeeID, st, body.Reason, rowsFromRequest(body.Rows))
	if err != nil {
		return validationError(ctx, "Invalid bypass data: "+err.Error())
	}

	if handleErr := s.requestBypassHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveBypassRequest handles POST /api/v1/bypass-requests/{bypassRequestId}/resolution -
// approves or rejects a pending bypass request.
func (s *Server) ResolveBypassRequest(ctx echo.Context, bypassRequestId openapi_types.UUID) error {
	var body servers.BypassResolution
	if err := ctx.Bind(&body); err != nil {
		return validationError(ctx, "Invalid request body")
	}

	bypassRequestID, err := kernel.UUIDFromBytes(bypassRequestId[:])
	if err != nil {
		return validationError(ctx, "Invalid bypass request ID")
	}

	adminNote := ""
	if body.AdminNote != nil {
		adminNote = *body.AdminNote
	}

	cmd, err := commands.NewResolveBypassCommand(bypassRequestID, body.Approve, adminNote)
	if err != nil {
		return validationError(ctx, "Invalid resolution data: "+err.Error())
	}

	if handleErr := s.resolveBypassHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteWorkProcess handles POST /api/v1/orders/{orderId}/work-processes/completion -
// completes the station pass.
func (s *Server) CompleteWorkProcess(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.Completion
	if err := ctx.Bind(&body); err != nil {
		return validationError(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return validationError(ctx, "Invalid order ID")
	}

	st, err := station.ParseStation(string(body.Station))
	if err != nil {
		return validationError(ctx, "Invalid station")
	}

	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewCompleteProcessCommand(orderID, st, notes)
	if err != nil {
		return validationError(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeProcessHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteBypassedWorkProcess handles POST /api/v1/orders/{orderId}/work-processes/bypassed-completion -
// completes the station pass through an approved bypass.
func (s *Server) CompleteBypassedWorkProcess(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.BypassedCompletion
	if err := ctx.Bind(&body); err != nil {
		return validationError(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return validationError(ctx, "Invalid order ID")
	}

	bypassRequestID, err := kernel.UUIDFromBytes(body.BypassRequestId[:])
	if err != nil {
		return validationError(ctx, "Invalid bypass request ID")
	}

	st, err := station.ParseStation(string(body.Station))
	if err != nil {
		return validationError(ctx, "Invalid station")
	}

	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewCompleteBypassedProcessCommand(orderID, st, bypassRequestID, notes, rowsFromRequest(body.Rows))
	if err != nil {
		return validationError(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeBypassedProcessHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStationQueue handles GET /api/v1/stations/{station}/queue -
// lists orders a station still has work on.
func (s *Server) GetStationQueue(ctx echo.Context, stationName servers.GetStationQueueParamsStation) error {
	st, err := station.ParseStation(string(stationName))
	if err != nil {
		return validationError(ctx, "Invalid station")
	}

	query, err := queries.NewGetStationQueueQuery(st)
	if err != nil {
		return validationError(ctx, "Invalid station")
	}

	entries, err := s.getStationQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve station queue")
	}

	response := make([]servers.QueueEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.QueueEntry{
			OrderId:      entry.ID.Bytes(),
			OrderNumber:  entry.OrderNumber,
			CustomerName: entry.CustomerName,
			CreatedAt:    entry.CreatedAt,
			State:        servers.StationState(entry.State.String()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingBypassRequests handles GET /api/v1/bypass-requests/pending -
// lists bypass requests awaiting an admin decision.
func (s *Server) GetPendingBypassRequests(ctx echo.Context) error {
	query := queries.NewGetPendingBypassRequestsQuery()

	pending, err := s.getPendingBypassRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending bypass requests")
	}

	response := make([]servers.PendingBypassRequest, len(pending))
	for i, request := range pending {
		response[i] = servers.PendingBypassRequest{
			Id:           request.ID.Bytes(),
			OrderId:      request.OrderID.Bytes(),
			OrderNumber:  request.OrderNumber,
			CustomerName: request.CustomerName,
			Station:      request.Station.QueryValue(),
			Reason:       request.Reason,
			RequestedAt:  request.RequestedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderToResponse(view *queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.NewOrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.NewOrderItem{
			LaundryItemId: item.LaundryItemID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
		}
	}

	workProcesses := make([]servers.WorkProcess, len(view.WorkProcesses))
	for i, wp := range view.WorkProcesses {
		recorded := make([]servers.RecordedItem, len(wp.RecordedItems))
		for j, item := range wp.RecordedItems {
			recorded[j] = servers.RecordedItem{
				LaundryItemId: item.LaundryItemID,
				Quantity:      item.Quantity,
			}
		}

		workProcesses[i] = servers.WorkProcess{
			Id:            wp.ID.Bytes(),
			Station:       wp.Station.QueryValue(),
			EmployeeId:    wp.EmployeeID.Bytes(),
			StartedAt:     wp.StartedAt,
			CompletedAt:   wp.CompletedAt,
			Notes:         wp.Notes,
			RecordedItems: recorded,
			BypassRequest: bypassToResponse(wp.Bypass),
		}
	}

	states := make(map[string]servers.StationState, len(view.States))
	for st, state := range view.States {
		states[st.QueryValue()] = servers.StationState(state.String())
	}

	paymentStatus := servers.OrderPaymentStatusPending
	if view.PaymentStatus == order.PaymentPaid {
		paymentStatus = servers.OrderPaymentStatusPaid
	}

	return servers.Order{
		Id:            view.ID.Bytes(),
		OrderNumber:   view.OrderNumber,
		CustomerName:  view.CustomerName,
		PaymentStatus: paymentStatus,
		CreatedAt:     view.CreatedAt,
		Items:         items,
		WorkProcesses: workProcesses,
		States:        states,
	}
}

func bypassToResponse(bypass *queries.BypassRequestResponse) *servers.BypassRequest {
	if bypass == nil {
		return nil
	}

	status := servers.BypassRequestStatusPending
	switch bypass.Status {
	case order.BypassStatusApproved:
		status = servers.BypassRequestStatusApproved
	case order.BypassStatusRejected:
		status = servers.BypassRequestStatusRejected
	}

	return &servers.BypassRequest{
		Id:          bypass.ID.Bytes(),
		Reason:      bypass.Reason,
		Status:      status,
		AdminNote:   bypass.AdminNote,
		RequestedAt: bypass.RequestedAt,
	}
}

func rowsFromRequest(rows []servers.VerificationRow) []services.VerificationRow {
	converted := make([]services.VerificationRow, len(rows))
	for i, row := range rows {
		converted[i] = services.VerificationRow{
			Label:    row.Label,
			Quantity: row.Quantity,
		}
	}
	return converted
}

// domainError translates use case failures into the API error taxonomy.
// Unrecognized errors fall through to internal_error so domain details never
// leak into responses.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, order.ErrBypassRequestNotFound):
		return errorJSON(ctx, http.StatusNotFound, servers.NotFound, err.Error())

	case errors.Is(err, services.ErrQuantityMismatch):
		return errorJSON(ctx, http.StatusConflict, servers.QuantityMismatch, err.Error())

	case errors.Is(err, order.ErrVerificationNotAllowed),
		errors.Is(err, order.ErrBypassNotAllowed),
		errors.Is(err, order.ErrCompletionNotAllowed),
		errors.Is(err, order.ErrBypassCompletionRequired),
		errors.Is(err, order.ErrBypassNotApproved),
		errors.Is(err, order.ErrBypassRequestMismatch),
		errors.Is(err, order.ErrWorkProcessAlreadyCompleted),
		errors.Is(err, order.ErrWorkProcessBypassPending),
		errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusConflict, servers.InvalidState, err.Error())

	default:
		return errorJSON(ctx, http.StatusInternalServerError, servers.InternalError, "Request failed")
	}
}

func validationError(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, servers.ValidationError, message)
}

func internalError(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusInternalServerError, servers.InternalError, message)
}

func errorJSON(ctx echo.Context, status int, code servers.ErrorCode, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    code,
		Message: message,
	})
}
