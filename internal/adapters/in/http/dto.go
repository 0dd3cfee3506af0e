package http

import (
	"time"

	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"
	"printflow/internal/core/domain/services"
)

// Wire shapes of the JSON API. The field names follow the UI's vocabulary
// (Portuguese domain terms, camelCase keys).

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderResponse struct {
	ID           string                        `json:"id"`
	OR           string                        `json:"or"`
	NumeroItem   string                        `json:"numeroItem"`
	Cliente      string                        `json:"cliente"`
	Vendedor     string                        `json:"vendedor"`
	Item         string                        `json:"item"`
	DataEntrega  string                        `json:"dataEntrega"`
	Prioridade   string                        `json:"prioridade"`
	Statuses     map[string]string             `json:"statuses"`
	Assignments  map[string]assignmentResponse `json:"assignments"`
	History      []historyResponse             `json:"history"`
	FilePaths    []filePathResponse            `json:"filePaths"`
	CurrentStage string                        `json:"currentStage"`
	IsArchived   bool                          `json:"isArchived"`
	ArchivedAt   *time.Time                    `json:"archivedAt,omitempty"`
	CreatedAt    time.Time                     `json:"createdAt"`
	CreatedBy    string                        `json:"createdBy"`
}

type assignmentResponse struct {
	UserID      string     `json:"userId"`
	UserName    string     `json:"userName"`
	AssignedBy  string     `json:"assignedBy"`
	AssignedAt  time.Time  `json:"assignedAt"`
	Note        string     `json:"note,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type historyResponse struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Sector    string    `json:"sector"`
}

type filePathResponse struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type userResponse struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Cargo        string `json:"cargo,omitempty"`
	Role         string `json:"role"`
	Departamento string `json:"departamento"`
	IsLeader     bool   `json:"isLeader"`
}

type notificationResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Message       string            `json:"message"`
	Severity      string            `json:"severity"`
	CreatedAt     time.Time         `json:"createdAt"`
	TargetUserID  string            `json:"targetUserId"`
	TargetSector  string            `json:"targetSector"`
	ActionLabel   string            `json:"actionLabel,omitempty"`
	SenderName    string            `json:"senderName,omitempty"`
	ReferenceDate string            `json:"referenceDate,omitempty"`
	Metadata      *metadataResponse `json:"metadata,omitempty"`
}

type metadataResponse struct {
	Kind            string `json:"kind"`
	OrderID         string `json:"orderId,omitempty"`
	TargetUserLogin string `json:"targetUserLogin,omitempty"`
}

type notificationsResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

type boardColumnResponse struct {
	ID     string               `json:"id"`
	Label  string               `json:"label"`
	Groups []boardGroupResponse `json:"groups"`
}

type boardGroupResponse struct {
	OrderNumber string              `json:"orderNumber"`
	Client      string              `json:"client"`
	Items       []boardItemResponse `json:"items"`
}

type boardItemResponse struct {
	Order orderResponse `json:"order"`
	Step  string        `json:"step"`
}

type dashboardStatsResponse struct {
	Total       int `json:"total"`
	EmAndamento int `json:"emAndamento"`
	Atrasadas   int `json:"atrasadas"`
}

type auditEntryResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Timestamp  time.Time `json:"timestamp"`
	ActionType string    `json:"actionType"`
	TargetInfo string    `json:"targetInfo"`
}

func toOrderResponse(o *order.Order) orderResponse {
	statuses := make(map[string]string, len(o.Statuses()))
	for step, status := range o.Statuses() {
		statuses[step.Key()] = status.String()
	}

	assignments := make(map[string]assignmentResponse, len(o.Assignments()))
	for step, a := range o.Assignments() {
		assignments[step.Key()] = assignmentResponse{
			UserID:      a.UserID(),
			UserName:    a.UserName(),
			AssignedBy:  a.AssignedBy(),
			AssignedAt:  a.AssignedAt(),
			Note:        a.Note(),
			StartedAt:   a.StartedAt(),
			CompletedAt: a.CompletedAt(),
		}
	}

	history := make([]historyResponse, 0, len(o.History()))
	for _, h := range o.History() {
		history = append(history, historyResponse{
			UserID:    h.UserID(),
			UserName:  h.UserName(),
			Timestamp: h.Timestamp(),
			Status:    h.Status().String(),
			Sector:    h.Sector(),
		})
	}

	filePaths := make([]filePathResponse, 0, len(o.FilePaths()))
	for _, p := range o.FilePaths() {
		filePaths = append(filePaths, filePathResponse{Name: p.Name(), Path: p.Path()})
	}

	currentStage := "done"
	if step, ok := o.CurrentStage(); ok {
		currentStage = step.Key()
	}

	return orderResponse{
		ID:           o.ID().String(),
		OR:           o.OR(),
		NumeroItem:   o.NumeroItem(),
		Cliente:      o.Cliente(),
		Vendedor:     o.Vendedor(),
		Item:         o.Item(),
		DataEntrega:  o.DataEntrega(),
		Prioridade:   o.Priority().String(),
		Statuses:     statuses,
		Assignments:  assignments,
		History:      history,
		FilePaths:    filePaths,
		CurrentStage: currentStage,
		IsArchived:   o.IsArchived(),
		ArchivedAt:   o.ArchivedAt(),
		CreatedAt:    o.CreatedAt(),
		CreatedBy:    o.CreatedBy(),
	}
}

func toOrderResponses(orders []*order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toUserResponse(m staff.Member) userResponse {
	return userResponse{
		ID:           m.ID(),
		Nome:         m.Nome(),
		Email:        m.Email(),
		Cargo:        m.Cargo(),
		Role:         m.Role().String(),
		Departamento: m.Departamento(),
		IsLeader:     m.IsLeader(),
	}
}

func toNotificationResponse(n *notification.Notification) notificationResponse {
	resp := notificationResponse{
		ID:            n.ID(),
		Title:         n.Title(),
		Message:       n.Message(),
		Severity:      n.Severity().String(),
		CreatedAt:     n.CreatedAt(),
		TargetUserID:  n.TargetUserID(),
		TargetSector:  n.TargetSector(),
		ActionLabel:   n.ActionLabel(),
		SenderName:    n.SenderName(),
		ReferenceDate: n.ReferenceDate(),
	}
	if meta := n.Metadata(); meta != nil {
		resp.Metadata = &metadataResponse{
			Kind:            string(meta.Kind),
			OrderID:         meta.OrderID,
			TargetUserLogin: meta.TargetUserLogin,
		}
	}
	return resp
}

func toBoardResponse(columns []services.Column) []boardColumnResponse {
	out := make([]boardColumnResponse, 0, len(columns))
	for _, col := range columns {
		groups := make([]boardGroupResponse, 0, len(col.Groups))
		for _, g := range col.Groups {
			items := make([]boardItemResponse, 0, len(g.Items))
			for _, item := range g.Items {
				items = append(items, boardItemResponse{
					Order: toOrderResponse(item.Order),
					Step:  item.Step.Key(),
				})
			}
			groups = append(groups, boardGroupResponse{
				OrderNumber: g.OrderNumber,
				Client:      g.Client,
				Items:       items,
			})
		}
		out = append(out, boardColumnResponse{ID: col.ID, Label: col.Label, Groups: groups})
	}
	return out
}

func toAuditEntryResponses(entries []queries.GetAuditLogQueryResponse) []auditEntryResponse {
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			UserName:   e.UserName,
			Timestamp:  e.Timestamp,
			ActionType: e.ActionType,
			TargetInfo: e.TargetInfo,
		})
	}
	return out
}
