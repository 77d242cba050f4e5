// Package http adapts the settlement use cases to an Echo JSON API.
package http

import (
	"net/http"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/payout"
	"workorders/internal/notifications"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server exposes.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	TransitionOrder       commands.TransitionOrderCommandHandler
	RecordOrderCompletion commands.RecordOrderCompletionCommandHandler
	PlaceBid              commands.PlaceBidCommandHandler
	AcceptBid             commands.AcceptBidCommandHandler
	RejectBid             commands.RejectBidCommandHandler
	RequestPayout         commands.RequestPayoutCommandHandler
	ApprovePayout         commands.ApprovePayoutCommandHandler
	RejectPayout          commands.RejectPayoutCommandHandler
	ProcessPayout         commands.ProcessPayoutCommandHandler
	RecalculateBalance    commands.RecalculateBalanceCommandHandler

	GetOpenOrders      queries.GetOpenOrdersQueryHandler
	GetOrderBids       queries.GetOrderBidsQueryHandler
	GetWorkerSummary   queries.GetWorkerSummaryQueryHandler
	GetPayoutsByStatus queries.GetPayoutsByStatusQueryHandler
}

// EventRegistry is the notification bus surface the event-stream endpoint
// needs: attach and detach live connections.
type EventRegistry interface {
	Register(userID kernel.UUID, nonce string, push notifications.PushFunc)
	Unregister(userID kernel.UUID, nonce string)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	events   EventRegistry
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, events EventRegistry) *Server {
	return &Server{
		handlers: handlers,
		events:   events,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.POST("/orders/:orderId/transition", s.TransitionOrder)
	api.POST("/orders/:orderId/settlement", s.RecordOrderCompletion)
	api.GET("/orders/:orderId/bids", s.GetOrderBids)
	api.POST("/orders/:orderId/bids", s.PlaceBid)

	api.POST("/bids/:bidId/accept", s.AcceptBid)
	api.POST("/bids/:bidId/reject", s.RejectBid)

	api.GET("/workers/:workerId/summary", s.GetWorkerSummary)
	api.POST("/workers/:workerId/recalculate", s.RecalculateBalance)

	api.POST("/payouts", s.RequestPayout)
	api.GET("/payouts", s.GetPayoutsByStatus)
	api.POST("/payouts/:payoutId/approve", s.ApprovePayout)
	api.POST("/payouts/:payoutId/reject", s.RejectPayout)
	api.POST("/payouts/:payoutId/process", s.ProcessPayout)

	api.GET("/events", s.StreamEvents)
}

type newOrderRequest struct {
	ClientID    string `json:"client_id"`
	AmountCents int64  `json:"amount_cents"`
	Pages       int    `json:"pages"`
	Slides      int    `json:"slides"`
	WorkType    string `json:"work_type"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders - places a new work order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req newOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client_id: "+err.Error())
	}
	amount, err := kernel.NewMoneyFromCents(req.AmountCents)
	if err != nil {
		return errorResponse(ctx, err)
	}
	workType, err := order.WorkTypeFromString(req.WorkType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, clientID, amount, req.Pages, req.Slides, workType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOpenOrders handles GET /api/v1/orders/open - lists orders open for bidding.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.handlers.GetOpenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	type openOrder struct {
		ID          string `json:"id"`
		ClientID    string `json:"client_id"`
		AmountCents int64  `json:"amount_cents"`
		Pages       int    `json:"pages"`
		Slides      int    `json:"slides"`
		WorkType    string `json:"work_type"`
		CreatedAt   string `json:"created_at"`
	}

	response := make([]openOrder, len(orders))
	for i, o := range orders {
		response[i] = openOrder{
			ID:          o.ID.String(),
			ClientID:    o.ClientID.String(),
			AmountCents: o.Amount.Cents(),
			Pages:       o.Pages,
			Slides:      o.Slides,
			WorkType:    o.WorkType,
			CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type transitionRequest struct {
	Status         string `json:"status"`
	ActorID        string `json:"actor_id"`
	DeliverableRef string `json:"deliverable_ref"`
}

// TransitionOrder handles POST /api/v1/orders/:orderId/transition - moves an
// order through its lifecycle.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req transitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actorID, req.DeliverableRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordOrderCompletion handles POST /api/v1/orders/:orderId/settlement -
// credits the worker's earnings for a completed order.
func (s *Server) RecordOrderCompletion(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRecordOrderCompletionCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.RecordOrderCompletion.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderBids handles GET /api/v1/orders/:orderId/bids - lists an order's bids.
func (s *Server) GetOrderBids(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderBidsQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	bids, err := s.handlers.GetOrderBids.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	type orderBid struct {
		ID          string `json:"id"`
		WorkerID    string `json:"worker_id"`
		AmountCents int64  `json:"amount_cents"`
		Message     string `json:"message,omitempty"`
		Status      string `json:"status"`
	}

	response := make([]orderBid, len(bids))
	for i, b := range bids {
		response[i] = orderBid{
			ID:          b.ID.String(),
			WorkerID:    b.WorkerID.String(),
			AmountCents: b.Amount.Cents(),
			Message:     b.Message,
			Status:      b.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type newBidRequest struct {
	WorkerID    string `json:"worker_id"`
	AmountCents int64  `json:"amount_cents"`
	Message     string `json:"message"`
}

// PlaceBid handles POST /api/v1/orders/:orderId/bids - a worker bids on an order.
func (s *Server) PlaceBid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req newBidRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID, err := kernel.UUIDFromString(req.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker_id: "+err.Error())
	}
	amount, err := kernel.NewMoneyFromCents(req.AmountCents)
	if err != nil {
		return errorResponse(ctx, err)
	}

	bidID := kernel.NewUUID()
	cmd, err := commands.NewPlaceBidCommand(bidID, orderID, workerID, amount, req.Message)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.PlaceBid.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: bidID.String()})
}

type bidDecisionRequest struct {
	ClientID string `json:"client_id"`
}

// AcceptBid handles POST /api/v1/bids/:bidId/accept - the client picks a winner.
func (s *Server) AcceptBid(ctx echo.Context) error {
	bidID, err := kernel.UUIDFromString(ctx.Param("bidId"))
	if err != nil {
		return badRequest(ctx, "Invalid bid id: "+err.Error())
	}

	var req bidDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client_id: "+err.Error())
	}

	cmd, err := commands.NewAcceptBidCommand(bidID, clientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.AcceptBid.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectBid handles POST /api/v1/bids/:bidId/reject - the client declines a bid.
func (s *Server) RejectBid(ctx echo.Context) error {
	bidID, err := kernel.UUIDFromString(ctx.Param("bidId"))
	if err != nil {
		return badRequest(ctx, "Invalid bid id: "+err.Error())
	}

	var req bidDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client_id: "+err.Error())
	}

	cmd, err := commands.NewRejectBidCommand(bidID, clientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.RejectBid.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkerSummary handles GET /api/v1/workers/:workerId/summary.
func (s *Server) GetWorkerSummary(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("workerId"))
	if err != nil {
		return badRequest(ctx, "Invalid worker id: "+err.Error())
	}

	query, err := queries.NewGetWorkerSummaryQuery(workerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	summary, err := s.handlers.GetWorkerSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"worker_id":          summary.WorkerID.String(),
		"approval":           summary.Approval,
		"level":              summary.Level,
		"tier_label":         summary.TierLabel,
		"lifetime_completed": summary.LifetimeCompleted,
		"completed_in_tier":  summary.CompletedInTier,
		"balance_cents":      summary.Balance.Cents(),
	})
}

// RecalculateBalance handles POST /api/v1/workers/:workerId/recalculate -
// rebuilds the worker's balance from the ledgers.
func (s *Server) RecalculateBalance(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("workerId"))
	if err != nil {
		return badRequest(ctx, "Invalid worker id: "+err.Error())
	}

	cmd, err := commands.NewRecalculateBalanceCommand(workerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.RecalculateBalance.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type newPayoutRequest struct {
	WorkerID    string `json:"worker_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	Target      string `json:"target"`
}

// RequestPayout handles POST /api/v1/payouts - a worker requests a withdrawal.
func (s *Server) RequestPayout(ctx echo.Context) error {
	var req newPayoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID, err := kernel.UUIDFromString(req.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker_id: "+err.Error())
	}
	amount, err := kernel.NewMoneyFromCents(req.AmountCents)
	if err != nil {
		return errorResponse(ctx, err)
	}
	method, err := payout.MethodFromString(req.Method)
	if err != nil {
		return errorResponse(ctx, err)
	}

	payoutID := kernel.NewUUID()
	cmd, err := commands.NewRequestPayoutCommand(payoutID, workerID, amount, method, req.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.RequestPayout.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: payoutID.String()})
}

// GetPayoutsByStatus handles GET /api/v1/payouts?status=pending.
func (s *Server) GetPayoutsByStatus(ctx echo.Context) error {
	status, err := payout.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPayoutsByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	payouts, err := s.handlers.GetPayoutsByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	type payoutItem struct {
		ID          string `json:"id"`
		WorkerID    string `json:"worker_id"`
		AmountCents int64  `json:"amount_cents"`
		Method      string `json:"method"`
		Target      string `json:"target"`
		CreatedAt   string `json:"created_at"`
	}

	response := make([]payoutItem, len(payouts))
	for i, p := range payouts {
		response[i] = payoutItem{
			ID:          p.ID.String(),
			WorkerID:    p.WorkerID.String(),
			AmountCents: p.Amount.Cents(),
			Method:      p.Method,
			Target:      p.Target,
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type payoutReviewRequest struct {
	AdminID string `json:"admin_id"`
	Reason  string `json:"reason"`
}

// ApprovePayout handles POST /api/v1/payouts/:payoutId/approve.
func (s *Server) ApprovePayout(ctx echo.Context) error {
	payoutID, err := kernel.UUIDFromString(ctx.Param("payoutId"))
	if err != nil {
		return badRequest(ctx, "Invalid payout id: "+err.Error())
	}

	var req payoutReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adminID, err := kernel.UUIDFromString(req.AdminID)
	if err != nil {
		return badRequest(ctx, "Invalid admin_id: "+err.Error())
	}

	cmd, err := commands.NewApprovePayoutCommand(payoutID, adminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.ApprovePayout.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectPayout handles POST /api/v1/payouts/:payoutId/reject.
func (s *Server) RejectPayout(ctx echo.Context) error {
	payoutID, err := kernel.UUIDFromString(ctx.Param("payoutId"))
	if err != nil {
		return badRequest(ctx, "Invalid payout id: "+err.Error())
	}

	var req payoutReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adminID, err := kernel.UUIDFromString(req.AdminID)
	if err != nil {
		return badRequest(ctx, "Invalid admin_id: "+err.Error())
	}

	cmd, err := commands.NewRejectPayoutCommand(payoutID, adminID, req.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.RejectPayout.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessPayout handles POST /api/v1/payouts/:payoutId/process - pushes an
// approved payout through the payment processor immediately instead of
// waiting for the queue job.
func (s *Server) ProcessPayout(ctx echo.Context) error {
	payoutID, err := kernel.UUIDFromString(ctx.Param("payoutId"))
	if err != nil {
		return badRequest(ctx, "Invalid payout id: "+err.Error())
	}

	cmd, err := commands.NewProcessPayoutCommand(payoutID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.ProcessPayout.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
