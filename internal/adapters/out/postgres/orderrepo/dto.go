// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The per-step statuses, assignments, history trail and file paths are
// document-shaped and stored as JSONB columns; the scalar columns carry the
// fields the list views filter and sort on.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OR          string    `gorm:"column:or_number;index"`
	NumeroItem  string
	Cliente     string
	Vendedor    string
	Item        string
	DataEntrega string `gorm:"index"`
	Priority    string
	Statuses    json.RawMessage `gorm:"type:jsonb"`
	Assignments json.RawMessage `gorm:"type:jsonb"`
	History     json.RawMessage `gorm:"type:jsonb"`
	FilePaths   json.RawMessage `gorm:"type:jsonb"`
	IsArchived  bool            `gorm:"index"`
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	CreatedBy   string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// assignmentDoc is the JSONB shape of one step assignment.
type assignmentDoc struct {
	UserID      string     `json:"userId"`
	UserName    string     `json:"userName"`
	AssignedBy  string     `json:"assignedBy"`
	AssignedAt  time.Time  `json:"assignedAt"`
	Note        string     `json:"note,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// historyDoc is the JSONB shape of one history entry.
type historyDoc struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Sector    string    `json:"sector"`
}

// filePathDoc is the JSONB shape of one artwork path.
type filePathDoc struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	statuses := make(map[string]string, len(order.Steps()))
	for step, status := range aggregate.Statuses() {
		statuses[step.Key()] = status.String()
	}

	assignments := make(map[string]assignmentDoc)
	for step, a := range aggregate.Assignments() {
		assignments[step.Key()] = assignmentDoc{
			UserID:      a.UserID(),
			UserName:    a.UserName(),
			AssignedBy:  a.AssignedBy(),
			AssignedAt:  a.AssignedAt(),
			Note:        a.Note(),
			StartedAt:   a.StartedAt(),
			CompletedAt: a.CompletedAt(),
		}
	}

	history := make([]historyDoc, 0, len(aggregate.History()))
	for _, h := range aggregate.History() {
		history = append(history, historyDoc{
			UserID:    h.UserID(),
			UserName:  h.UserName(),
			Timestamp: h.Timestamp(),
			Status:    h.Status().String(),
			Sector:    h.Sector(),
		})
	}

	filePaths := make([]filePathDoc, 0, len(aggregate.FilePaths()))
	for _, p := range aggregate.FilePaths() {
		filePaths = append(filePaths, filePathDoc{Name: p.Name(), Path: p.Path()})
	}

	statusesJSON, err := json.Marshal(statuses)
	if err != nil {
		return OrderDTO{}, err
	}
	assignmentsJSON, err := json.Marshal(assignments)
	if err != nil {
		return OrderDTO{}, err
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return OrderDTO{}, err
	}
	filePathsJSON, err := json.Marshal(filePaths)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OR:          aggregate.OR(),
		NumeroItem:  aggregate.NumeroItem(),
		Cliente:     aggregate.Cliente(),
		Vendedor:    aggregate.Vendedor(),
		Item:        aggregate.Item(),
		DataEntrega: aggregate.DataEntrega(),
		Priority:    aggregate.Priority().String(),
		Statuses:    statusesJSON,
		Assignments: assignmentsJSON,
		History:     historyJSON,
		FilePaths:   filePathsJSON,
		IsArchived:  aggregate.IsArchived(),
		ArchivedAt:  aggregate.ArchivedAt(),
		CreatedAt:   aggregate.CreatedAt(),
		CreatedBy:   aggregate.CreatedBy(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromName(dto.Priority)
	if err != nil {
		return nil, err
	}

	var statusDocs map[string]string
	if len(dto.Statuses) > 0 {
		if err = json.Unmarshal(dto.Statuses, &statusDocs); err != nil {
			return nil, err
		}
	}
	statuses := make(map[order.Step]order.Status, len(statusDocs))
	for key, name := range statusDocs {
		step, stepErr := order.StepFromKey(key)
		if stepErr != nil {
			return nil, stepErr
		}
		status, statusErr := order.StatusFromName(name)
		if statusErr != nil {
			return nil, statusErr
		}
		statuses[step] = status
	}

	var assignmentDocs map[string]assignmentDoc
	if len(dto.Assignments) > 0 {
		if err = json.Unmarshal(dto.Assignments, &assignmentDocs); err != nil {
			return nil, err
		}
	}
	assignments := make(map[order.Step]order.Assignment, len(assignmentDocs))
	for key, doc := range assignmentDocs {
		step, stepErr := order.StepFromKey(key)
		if stepErr != nil {
			return nil, stepErr
		}
		assignment, aErr := order.RestoreAssignment(
			doc.UserID, doc.UserName, doc.AssignedBy, doc.AssignedAt, doc.Note, doc.StartedAt, doc.CompletedAt,
		)
		if aErr != nil {
			return nil, aErr
		}
		assignments[step] = assignment
	}

	var historyDocs []historyDoc
	if len(dto.History) > 0 {
		if err = json.Unmarshal(dto.History, &historyDocs); err != nil {
			return nil, err
		}
	}
	history := make([]order.HistoryEntry, 0, len(historyDocs))
	for _, doc := range historyDocs {
		status, statusErr := order.StatusFromName(doc.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		entry, hErr := order.NewHistoryEntry(doc.UserID, doc.UserName, doc.Timestamp, status, doc.Sector)
		if hErr != nil {
			return nil, hErr
		}
		history = append(history, entry)
	}

	var filePathDocs []filePathDoc
	if len(dto.FilePaths) > 0 {
		if err = json.Unmarshal(dto.FilePaths, &filePathDocs); err != nil {
			return nil, err
		}
	}
	filePaths := make([]order.NetworkPath, 0, len(filePathDocs))
	for _, doc := range filePathDocs {
		path, pErr := order.NewNetworkPath(doc.Name, doc.Path)
		if pErr != nil {
			return nil, pErr
		}
		filePaths = append(filePaths, path)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:          id,
		OR:          dto.OR,
		NumeroItem:  dto.NumeroItem,
		Cliente:     dto.Cliente,
		Vendedor:    dto.Vendedor,
		Item:        dto.Item,
		DataEntrega: dto.DataEntrega,
		Priority:    priority,
		Statuses:    statuses,
		Assignments: assignments,
		History:     history,
		FilePaths:   filePaths,
		IsArchived:  dto.IsArchived,
		ArchivedAt:  dto.ArchivedAt,
		CreatedAt:   dto.CreatedAt,
		CreatedBy:   dto.CreatedBy,
	})
}
