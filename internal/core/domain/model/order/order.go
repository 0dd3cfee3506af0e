package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// DateLayout is the wire and storage format of delivery dates.
// ISO dates compare correctly as strings, which the due-date logic relies on.
const DateLayout = "2006-01-02"

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the production pipeline. It owns the five
// per-step statuses, the per-step assignment ledger, the append-only history
// trail, the artwork file paths and the archival state.
//
// Order enforces these invariants:
//   - every production step always has a valid status
//   - at most one assignment per step
//   - history is append-only, oldest-first
//   - every status or assignment change appends exactly one history entry
//   - completing the expedition step archives the order
//
// All mutation goes through the aggregate's methods; the struct uses private
// fields to keep outside code from bypassing the bookkeeping.
type Order struct {
	id          kernel.UUID
	or          string
	numeroItem  string
	cliente     string
	vendedor    string
	item        string
	dataEntrega string
	priority    Priority

	statuses    map[Step]Status
	assignments map[Step]Assignment
	history     []HistoryEntry
	filePaths   []NetworkPath

	isArchived bool
	archivedAt *time.Time

	createdAt time.Time
	createdBy string

	isConstructed bool
}

// StatusChange describes the side effects of an AdvanceStatus call that the
// caller has to act on: notification retraction when work starts and the
// automatic archival when the expedition step completes.
type StatusChange struct {
	// Step is the production step whose status changed.
	Step Step

	// Status is the new status of the step.
	Status Status

	// StartedAssigneeID is the assignee whose startedAt was just stamped,
	// or empty. The pending assignment notification of this user should be
	// retracted.
	StartedAssigneeID string

	// Archived reports whether this change archived the order.
	Archived bool
}

// AssignmentChange describes the outcome of an Assign call.
type AssignmentChange struct {
	// Step is the production step whose assignment changed.
	Step Step

	// AssigneeID is the new assignee, or empty when the assignment was
	// removed.
	AssigneeID string

	// Removed reports whether an existing assignment was removed.
	Removed bool

	// PreviousAssigneeID is the assignee that was replaced or removed, or
	// empty. The pending assignment notification of this user should be
	// retracted on removal.
	PreviousAssigneeID string
}

// NewOrder creates a new Order with every step Pendente and an initial
// history entry in the Geral sector.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - or: the O.R. number shared by all items of a sales order (required)
//   - numeroItem: item number within the O.R. (may be empty for single items)
//   - cliente: customer name (required)
//   - vendedor: salesperson name (required)
//   - item: description of the piece to produce (required)
//   - dataEntrega: delivery date in DateLayout format (required)
//   - priority: urgency; pass DefaultPriority() when the caller has none
//   - actorID, actorName: the user creating the order (required)
//   - createdAt: creation instant
func NewOrder(
	id kernel.UUID,
	or, numeroItem, cliente, vendedor, item, dataEntrega string,
	priority Priority,
	actorID, actorName string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		numeroItem:    numeroItem,
		statuses:      make(map[Step]Status, len(Steps())),
		assignments:   make(map[Step]Assignment),
		createdAt:     createdAt,
		createdBy:     actorName,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOR(or),
		o.setCliente(cliente),
		o.setVendedor(vendedor),
		o.setItem(item),
		o.setDataEntrega(dataEntrega),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	for _, step := range Steps() {
		o.statuses[step] = StatusPendente
	}

	entry, err := NewHistoryEntry(actorID, actorName, createdAt, StatusPendente, SectorGeral)
	if err != nil {
		return nil, err
	}
	o.history = append(o.history, entry)

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID          kernel.UUID
	OR          string
	NumeroItem  string
	Cliente     string
	Vendedor    string
	Item        string
	DataEntrega string
	Priority    Priority
	Statuses    map[Step]Status
	Assignments map[Step]Assignment
	History     []HistoryEntry
	FilePaths   []NetworkPath
	IsArchived  bool
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	CreatedBy   string
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it does not seed statuses or history; missing step statuses
// default to Pendente so that orders written before a pipeline change stay
// loadable.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		numeroItem:    params.NumeroItem,
		statuses:      make(map[Step]Status, len(Steps())),
		assignments:   make(map[Step]Assignment, len(params.Assignments)),
		history:       make([]HistoryEntry, len(params.History)),
		filePaths:     make([]NetworkPath, len(params.FilePaths)),
		isArchived:    params.IsArchived,
		archivedAt:    params.ArchivedAt,
		createdAt:     params.CreatedAt,
		createdBy:     params.CreatedBy,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setOR(params.OR),
		o.setCliente(params.Cliente),
		o.setVendedor(params.Vendedor),
		o.setItem(params.Item),
		o.setDataEntrega(params.DataEntrega),
		o.setPriority(params.Priority),
	); err != nil {
		return nil, err
	}

	for _, step := range Steps() {
		status, ok := params.Statuses[step]
		if !ok {
			status = StatusPendente
		}
		if err := status.Validate(); err != nil {
			return nil, err
		}
		o.statuses[step] = status
	}

	for step, assignment := range params.Assignments {
		if err := errors.Join(step.Validate(), assignment.Validate()); err != nil {
			return nil, err
		}
		o.assignments[step] = assignment
	}

	copy(o.history, params.History)
	copy(o.filePaths, params.FilePaths)

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OR returns the O.R. number shared by all items of a sales order.
func (o *Order) OR() string {
	return o.or
}

// NumeroItem returns the item number within the O.R., possibly empty.
func (o *Order) NumeroItem() string {
	return o.numeroItem
}

// Cliente returns the customer name.
func (o *Order) Cliente() string {
	return o.cliente
}

// Vendedor returns the salesperson name.
func (o *Order) Vendedor() string {
	return o.vendedor
}

// Item returns the description of the piece to produce.
func (o *Order) Item() string {
	return o.item
}

// DataEntrega returns the delivery date in DateLayout format.
func (o *Order) DataEntrega() string {
	return o.dataEntrega
}

// Priority returns the urgency of the order.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the status of the given production step.
func (o *Order) Status(step Step) Status {
	return o.statuses[step]
}

// Statuses returns a copy of the per-step status map.
func (o *Order) Statuses() map[Step]Status {
	statuses := make(map[Step]Status, len(o.statuses))
	for step, status := range o.statuses {
		statuses[step] = status
	}
	return statuses
}

// Assignment returns the assignment of the given step, if any.
func (o *Order) Assignment(step Step) (Assignment, bool) {
	a, ok := o.assignments[step]
	return a, ok
}

// Assignments returns a copy of the per-step assignment map.
func (o *Order) Assignments() map[Step]Assignment {
	assignments := make(map[Step]Assignment, len(o.assignments))
	for step, a := range o.assignments {
		assignments[step] = a
	}
	return assignments
}

// History returns a copy of the audit trail, oldest entry first.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// FilePaths returns a copy of the artwork file paths.
func (o *Order) FilePaths() []NetworkPath {
	paths := make([]NetworkPath, len(o.filePaths))
	copy(paths, o.filePaths)
	return paths
}

// Clone returns a deep copy of the order. The workspace hands out clones so
// that a command mutating its copy never races with a concurrent projection
// or scan reading another.
func (o *Order) Clone() *Order {
	clone := *o

	clone.statuses = make(map[Step]Status, len(o.statuses))
	for step, status := range o.statuses {
		clone.statuses[step] = status
	}
	clone.assignments = make(map[Step]Assignment, len(o.assignments))
	for step, a := range o.assignments {
		clone.assignments[step] = a
	}
	clone.history = append([]HistoryEntry(nil), o.history...)
	clone.filePaths = append([]NetworkPath(nil), o.filePaths...)
	if o.archivedAt != nil {
		archivedAt := *o.archivedAt
		clone.archivedAt = &archivedAt
	}

	return &clone
}

// IsArchived reports whether the order left the operational board.
func (o *Order) IsArchived() bool {
	return o.isArchived
}

// ArchivedAt returns when the order was archived, or nil.
func (o *Order) ArchivedAt() *time.Time {
	return o.archivedAt
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CreatedBy returns the display name of the user who created the order.
func (o *Order) CreatedBy() string {
	return o.createdBy
}

// CurrentStage returns the first step in pipeline order that is not yet
// Concluído. The second return value is true when every step is Concluído,
// in which case the returned step is StepUnknown.
func (o *Order) CurrentStage() (Step, bool) {
	for _, step := range Steps() {
		if o.statuses[step] != StatusConcluido {
			return step, false
		}
	}
	return StepUnknown, true
}

// InProduction reports whether any step is currently Em Produção.
func (o *Order) InProduction() bool {
	for _, status := range o.statuses {
		if status == StatusEmProducao {
			return true
		}
	}
	return false
}

// IsDueToday reports whether an active order is due on the given day.
// today must be in DateLayout format.
func (o *Order) IsDueToday(today string) bool {
	return !o.isArchived && o.dataEntrega == today
}

// IsLate reports whether an active order's delivery date has passed.
// today must be in DateLayout format.
func (o *Order) IsLate(today string) bool {
	return !o.isArchived && o.dataEntrega < today
}

// AdvanceStatus moves one production step to a new status.
//
// Transitions are permissive: any step may move to any valid status in any
// direction, so operators can correct mistakes. The method:
//   - appends exactly one history entry for the change
//   - stamps the step assignment's startedAt once when entering Em Produção
//   - stamps the step assignment's completedAt once when entering Concluído
//   - archives the order when the expedition step completes
//
// The returned StatusChange tells the caller whether work just started (so
// the pending assignment notification can be retracted) and whether the
// order was archived.
func (o *Order) AdvanceStatus(step Step, next Status, actorID, actorName string, now time.Time) (StatusChange, error) {
	if err := o.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := errors.Join(step.Validate(), next.Validate()); err != nil {
		return StatusChange{}, err
	}

	change := StatusChange{Step: step, Status: next}

	o.statuses[step] = next

	if assignment, ok := o.assignments[step]; ok {
		switch {
		case next == StatusEmProducao && !assignment.IsStarted():
			o.assignments[step] = assignment.MarkStarted(now)
			change.StartedAssigneeID = assignment.UserID()
		case next == StatusConcluido:
			o.assignments[step] = assignment.MarkCompleted(now)
		}
	}

	entry, err := NewHistoryEntry(actorID, actorName, now, next, step.Key())
	if err != nil {
		return StatusChange{}, err
	}
	o.history = append(o.history, entry)

	if step == StepExpedicao && next == StatusConcluido && !o.isArchived {
		o.isArchived = true
		o.archivedAt = &now
		change.Archived = true
	}

	return change, nil
}

// Assign sets, replaces or removes the assignment of one production step.
//
// An empty userID removes the step's assignment entirely; removing from a
// step that has no assignment is tolerated as a no-op and appends nothing.
// Re-assigning the same user (e.g. to edit the note) carries the existing
// work timestamps over; assigning a different user starts from a clean
// ledger entry. Every call that changes the ledger appends exactly one
// history entry recording the step's current status.
//
// Parameters:
//   - step: the production step to (un)assign
//   - userID, userName: the assignee; both empty to remove
//   - assignedBy: display name of the assigner (recorded on the assignment
//     and as the history entry's user name)
//   - note: optional instructions for the assignee
//   - actorID: identifier of the assigner for the history entry
//   - now: assignment instant
func (o *Order) Assign(step Step, userID, userName, assignedBy, note, actorID string, now time.Time) (AssignmentChange, error) {
	if err := o.Validate(); err != nil {
		return AssignmentChange{}, err
	}
	if err := step.Validate(); err != nil {
		return AssignmentChange{}, err
	}

	change := AssignmentChange{Step: step, AssigneeID: userID}

	previous, hadPrevious := o.assignments[step]
	if hadPrevious {
		change.PreviousAssigneeID = previous.UserID()
	}

	if userID == "" {
		if !hadPrevious {
			// nothing to remove, nothing to record
			return change, nil
		}
		delete(o.assignments, step)
		change.Removed = true
	} else {
		assignment, err := NewAssignment(userID, userName, assignedBy, now, note)
		if err != nil {
			return AssignmentChange{}, err
		}
		if hadPrevious && previous.UserID() == userID {
			assignment = assignment.CarryTimestampsFrom(previous)
		}
		o.assignments[step] = assignment
	}

	entry, err := NewHistoryEntry(actorID, assignedBy, now, o.statuses[step], step.Key())
	if err != nil {
		return AssignmentChange{}, err
	}
	o.history = append(o.history, entry)

	return change, nil
}

// SetNetworkPaths replaces the artwork file paths as a whole set.
// No history entry is appended; path edits are not part of the audit trail.
func (o *Order) SetNetworkPaths(paths []NetworkPath) error {
	if err := o.Validate(); err != nil {
		return err
	}
	for _, path := range paths {
		if err := path.Validate(); err != nil {
			return err
		}
	}
	o.filePaths = make([]NetworkPath, len(paths))
	copy(o.filePaths, paths)
	return nil
}

// SetArchived toggles the archival state explicitly. Archiving stamps
// archivedAt; reactivating clears it. A no-op when the state already
// matches.
func (o *Order) SetArchived(archived bool, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.isArchived == archived {
		return nil
	}
	o.isArchived = archived
	if archived {
		o.archivedAt = &now
	} else {
		o.archivedAt = nil
	}
	return nil
}

// MatchesSearch reports whether the order matches a free-text search term.
// The match is case-insensitive over customer, O.R. number, salesperson,
// item description, item number and the delivery date formatted as
// dd/mm/yyyy. An empty term matches everything.
func (o *Order) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(o.cliente), term) ||
		strings.Contains(strings.ToLower(o.or), term) ||
		strings.Contains(strings.ToLower(o.vendedor), term) ||
		strings.Contains(strings.ToLower(o.item), term) ||
		(o.numeroItem != "" && strings.Contains(strings.ToLower(o.numeroItem), term)) ||
		strings.Contains(formatDateBR(o.dataEntrega), term)
}

// formatDateBR converts an ISO date to the dd/mm/yyyy form operators type
// into the search box.
func formatDateBR(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOR validates and sets the O.R. number.
// This is a private method used only during construction.
func (o *Order) setOR(or string) error {
	if or == "" {
		return errs.NewValueIsRequiredError("or")
	}
	o.or = or
	return nil
}

// setCliente validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCliente(cliente string) error {
	if cliente == "" {
		return errs.NewValueIsRequiredError("cliente")
	}
	o.cliente = cliente
	return nil
}

// setVendedor validates and sets the salesperson name.
// This is a private method used only during construction.
func (o *Order) setVendedor(vendedor string) error {
	if vendedor == "" {
		return errs.NewValueIsRequiredError("vendedor")
	}
	o.vendedor = vendedor
	return nil
}

// setItem validates and sets the item description.
// This is a private method used only during construction.
func (o *Order) setItem(item string) error {
	if item == "" {
		return errs.NewValueIsRequiredError("item")
	}
	o.item = item
	return nil
}

// setDataEntrega validates and sets the delivery date.
// This is a private method used only during construction.
func (o *Order) setDataEntrega(dataEntrega string) error {
	if dataEntrega == "" {
		return errs.NewValueIsRequiredError("dataEntrega")
	}
	if _, err := time.Parse(DateLayout, dataEntrega); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dataEntrega", fmt.Errorf("%q is not a date in %s format", dataEntrega, DateLayout))
	}
	o.dataEntrega = dataEntrega
	return nil
}

// setPriority validates and sets the priority.
// This is a private method used only during construction.
func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}
