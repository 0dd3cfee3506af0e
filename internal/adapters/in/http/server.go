// Package http exposes the production tracking use cases as a JSON API.
// Authentication is external; the acting user arrives in the X-User-Id header
// and is resolved against the workspace by the command and query handlers.
package http

import (
	"errors"
	"net/http"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	AdvanceStatus        commands.AdvanceStatusCommandHandler
	AssignUser           commands.AssignUserCommandHandler
	SetNetworkPaths      commands.SetNetworkPathsCommandHandler
	SetArchived          commands.SetArchivedCommandHandler
	DeleteOrders         commands.DeleteOrdersCommandHandler
	CreateAlert          commands.CreateAlertCommandHandler
	RequestPasswordReset commands.RequestPasswordResetCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler

	GetBoard          queries.GetBoardQueryHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler
	GetNotifications  queries.GetNotificationsQueryHandler
	GetUsers          queries.GetUsersQueryHandler
	GetAuditLog       queries.GetAuditLogQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/delete", s.DeleteOrders)
	api.POST("/orders/:id/status", s.AdvanceStatus)
	api.POST("/orders/:id/assignee", s.AssignUser)
	api.PUT("/orders/:id/paths", s.SetNetworkPaths)
	api.PUT("/orders/:id/archived", s.SetArchived)

	api.GET("/board", s.GetBoard)
	api.GET("/dashboard/stats", s.GetDashboardStats)
	api.GET("/users", s.GetUsers)
	api.GET("/audit-logs", s.GetAuditLog)

	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/read", s.MarkNotificationRead)
	api.POST("/alerts", s.CreateAlert)
	api.POST("/password-reset", s.RequestPasswordReset)
}

// actorID extracts the acting user from the X-User-Id header.
// Command constructors reject an empty actor, so no check happens here.
func actorID(ctx echo.Context) string {
	return ctx.Request().Header.Get("X-User-Id")
}

// fail maps domain errors onto HTTP status codes.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	}
	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// CreateOrder handles POST /api/v1/orders - registers a new work order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req struct {
		OR          string `json:"or"`
		NumeroItem  string `json:"numeroItem"`
		Cliente     string `json:"cliente"`
		Vendedor    string `json:"vendedor"`
		Item        string `json:"item"`
		DataEntrega string `json:"dataEntrega"`
		Prioridade  string `json:"prioridade"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority := order.PriorityUnknown
	if req.Prioridade != "" {
		parsed, err := order.PriorityFromName(req.Prioridade)
		if err != nil {
			return fail(ctx, err)
		}
		priority = parsed
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.OR, req.NumeroItem, req.Cliente, req.Vendedor, req.Item,
		req.DataEntrega, priority, actorID(ctx),
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.OrderID().String()})
}

// GetOrders handles GET /api/v1/orders - lists orders for the table views.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery(
		queries.Tab(ctx.QueryParam("tab")),
		ctx.QueryParam("search"),
		queries.DashboardFilter(ctx.QueryParam("filter")),
	)

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AdvanceStatus handles POST /api/v1/orders/:id/status - sets a step's status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	var req struct {
		Step   string `json:"step"`
		Status string `json:"status"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}
	step, err := order.StepFromKey(req.Step)
	if err != nil {
		return fail(ctx, err)
	}
	next, err := order.StatusFromName(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceStatusCommand(orderID, step, next, actorID(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AdvanceStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignUser handles POST /api/v1/orders/:id/assignee - (un)assigns a step.
func (s *Server) AssignUser(ctx echo.Context) error {
	var req struct {
		Step   string `json:"step"`
		UserID string `json:"userId"`
		Note   string `json:"note"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}
	step, err := order.StepFromKey(req.Step)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAssignUserCommand(orderID, step, req.UserID, req.Note, actorID(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AssignUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetNetworkPaths handles PUT /api/v1/orders/:id/paths - replaces artwork paths.
func (s *Server) SetNetworkPaths(ctx echo.Context) error {
	var req struct {
		FilePaths []struct {
			Name string `json:"name"`
			Path string `json:"path"`
		} `json:"filePaths"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	paths := make([]order.NetworkPath, 0, len(req.FilePaths))
	for _, p := range req.FilePaths {
		path, pathErr := order.NewNetworkPath(p.Name, p.Path)
		if pathErr != nil {
			return fail(ctx, pathErr)
		}
		paths = append(paths, path)
	}

	cmd, err := commands.NewSetNetworkPathsCommand(orderID, paths, actorID(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SetNetworkPaths.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetArchived handles PUT /api/v1/orders/:id/archived - archives or reactivates.
func (s *Server) SetArchived(ctx echo.Context) error {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSetArchivedCommand(orderID, req.Archived, actorID(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SetArchived.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrders handles POST /api/v1/orders/delete - bulk deletion with audit.
func (s *Server) DeleteOrders(ctx echo.Context) error {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewDeleteOrdersCommand(ids, actorID(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.DeleteOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBoard handles GET /api/v1/board - the projected board for one view mode.
func (s *Server) GetBoard(ctx echo.Context) error {
	viewMode := services.ViewStageBoard
	switch ctx.QueryParam("view") {
	case "", "stage":
	case "my-tasks":
		viewMode = services.ViewMyTasks
	case "team":
		viewMode = services.ViewTeam
	default:
		return badRequest(ctx, "Unknown board view")
	}

	priority := order.PriorityUnknown
	if raw := ctx.QueryParam("priority"); raw != "" {
		parsed, err := order.PriorityFromName(raw)
		if err != nil {
			return fail(ctx, err)
		}
		priority = parsed
	}

	query, err := queries.NewGetBoardQuery(
		actorID(ctx), viewMode, ctx.QueryParam("sector"), ctx.QueryParam("search"), priority,
	)
	if err != nil {
		return fail(ctx, err)
	}

	columns, err := s.handlers.GetBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBoardResponse(columns))
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.handlers.GetDashboardStats.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboardStatsResponse{
		Total:       stats.Total,
		EmAndamento: stats.EmAndamento,
		Atrasadas:   stats.Atrasadas,
	})
}

// GetUsers handles GET /api/v1/users - the team roster.
func (s *Server) GetUsers(ctx echo.Context) error {
	members, err := s.handlers.GetUsers.Handle(ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]userResponse, 0, len(members))
	for _, m := range members {
		response = append(response, toUserResponse(m))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications - the actor's feed.
func (s *Server) GetNotifications(ctx echo.Context) error {
	query, err := queries.NewGetNotificationsQuery(actorID(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	feed, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	notifications := make([]notificationResponse, 0, len(feed.Notifications))
	for _, n := range feed.Notifications {
		notifications = append(notifications, toNotificationResponse(n))
	}
	return ctx.JSON(http.StatusOK, notificationsResponse{
		Notifications: notifications,
		UnreadCount:   feed.UnreadCount,
	})
}

// MarkNotificationRead handles POST /api/v1/notifications/read.
// An empty notificationId dismisses the actor's whole feed.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	var req struct {
		NotificationID string `json:"notificationId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(req.NotificationID, actorID(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateAlert handles POST /api/v1/alerts - publishes a manual alert.
func (s *Server) CreateAlert(ctx echo.Context) error {
	var req struct {
		Title         string `json:"title"`
		Message       string `json:"message"`
		Severity      string `json:"severity"`
		TargetUserID  string `json:"targetUserId"`
		ReferenceDate string `json:"referenceDate"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	severity, err := notification.SeverityFromName(req.Severity)
	if err != nil {
		return fail(ctx, err)
	}

	target := req.TargetUserID
	if target == "" {
		target = notification.TargetAll
	}

	cmd, err := commands.NewCreateAlertCommand(
		req.Title, req.Message, severity, target, req.ReferenceDate, actorID(ctx),
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CreateAlert.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RequestPasswordReset handles POST /api/v1/password-reset.
// Always answers 204 so the endpoint cannot be used to probe for accounts.
func (s *Server) RequestPasswordReset(ctx echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RequestPasswordReset.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAuditLog handles GET /api/v1/audit-logs - deletion trail, newest first.
func (s *Server) GetAuditLog(ctx echo.Context) error {
	entries, err := s.handlers.GetAuditLog.Handle(ctx.Request().Context(), queries.NewGetAuditLogQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAuditEntryResponses(entries))
}
