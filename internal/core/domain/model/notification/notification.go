package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// TargetAll addresses a notification to every team member.
const TargetAll = "ALL"

// ErrNotificationIsNotConstructed is returned when validating a Notification
// that was not created through one of the constructors.
var ErrNotificationIsNotConstructed = errs.NewValueIsRequiredError("Notification must be created via its constructors")

// Severity orders notifications in the feed: urgent entries surface first,
// informational ones last. The numeric values double as the sort weight.
type Severity int

const (
	// SeverityInfo is a routine notice.
	SeverityInfo Severity = iota

	// SeveritySuccess confirms something finished well.
	SeveritySuccess

	// SeverityWarning asks for attention today.
	SeverityWarning

	// SeverityUrgent demands immediate action.
	SeverityUrgent
)

// getSeverityNames returns a map of Severity values to their wire names.
func getSeverityNames() map[Severity]string {
	return map[Severity]string{
		SeverityInfo:    "info",
		SeveritySuccess: "success",
		SeverityWarning: "warning",
		SeverityUrgent:  "urgent",
	}
}

// SeverityFromName parses a Severity from its wire name.
func SeverityFromName(name string) (Severity, error) {
	for severity, n := range getSeverityNames() {
		if n == name {
			return severity, nil
		}
	}
	return SeverityInfo, errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%q is not a valid severity", name))
}

// String returns the wire name of the severity.
func (s Severity) String() string {
	if str, ok := getSeverityNames()[s]; ok {
		return str
	}
	return "info"
}

// Validate checks if the Severity value is valid.
func (s Severity) Validate() error {
	if _, ok := getSeverityNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%d is not a valid severity", s))
	}
	return nil
}

// MetadataKind classifies actionable notifications.
type MetadataKind string

const (
	// MetadataAssignment marks a task-assignment notification. It carries
	// the order ID so the notification can be retracted once work starts.
	MetadataAssignment MetadataKind = "ASSIGNMENT"

	// MetadataResetPassword marks a password-reset request. It carries the
	// login of the user asking for the reset.
	MetadataResetPassword MetadataKind = "RESET_PASSWORD"
)

// Metadata carries the actionable payload of a notification, if any.
type Metadata struct {
	Kind            MetadataKind
	OrderID         string
	TargetUserLogin string
}

// Notification is one entry of the in-app feed. It is addressed either to a
// single member or to everyone (TargetAll), and tracks per-user read state so
// a broadcast disappears only for the members who dismissed it.
type Notification struct {
	id            string
	title         string
	message       string
	severity      Severity
	createdAt     time.Time
	targetUserID  string
	targetSector  string
	actionLabel   string
	senderName    string
	referenceDate string
	metadata      *Metadata
	readBy        []string

	guard guard.ConstructorGuard
}

// New creates a notification. Most callers should prefer the purpose-built
// factories (NewAssignmentNotification, NewDueTodayAlert, ...) which fix the
// title, message and severity for their event.
func New(
	id, title, message string,
	severity Severity,
	targetUserID, targetSector, actionLabel string,
	metadata *Metadata,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		actionLabel: actionLabel,
		metadata:    metadata,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setTitle(title),
		n.setMessage(message),
		n.setSeverity(severity),
		n.setTarget(targetUserID, targetSector),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// NewAssignmentNotification tells a member they were assigned a production
// step. Retractable via Feed.RetractAssignment until the member starts the
// work.
func NewAssignmentNotification(id, orderID, orNumber, assignerName, targetUserID, sector string, createdAt time.Time) (*Notification, error) {
	return New(
		id,
		"NOVA TAREFA DESIGNADA",
		fmt.Sprintf("Você foi designado para a O.R #%s por %s.", orNumber, assignerName),
		SeverityInfo,
		targetUserID,
		sector,
		"VER MEUS TRABALHOS",
		&Metadata{Kind: MetadataAssignment, OrderID: orderID},
		createdAt,
	)
}

// NewOrderCreatedNotification announces a freshly created order to everyone.
func NewOrderCreatedNotification(id, orNumber, cliente string, createdAt time.Time) (*Notification, error) {
	return New(
		id,
		"NOVA ORDEM CRIADA",
		fmt.Sprintf("O.R #%s - %s", orNumber, cliente),
		SeverityInfo,
		TargetAll,
		"preImpressao",
		"VER DETALHES",
		nil,
		createdAt,
	)
}

// NewPasswordResetNotification broadcasts a password-reset request so an
// administrator can act on it.
func NewPasswordResetNotification(id, userName, login string, createdAt time.Time) (*Notification, error) {
	return New(
		id,
		"SOLICITAÇÃO DE RESET DE SENHA",
		fmt.Sprintf("O usuário %s solicitou reset de senha.", userName),
		SeverityUrgent,
		TargetAll,
		"Geral",
		"RESETAR AGORA",
		&Metadata{Kind: MetadataResetPassword, TargetUserLogin: login},
		createdAt,
	)
}

// DueTodayAlertID builds the deterministic identifier of a due-today alert.
// One alert exists per order per day, no matter how often the scan runs.
func DueTodayAlertID(orderID, date string) string {
	return fmt.Sprintf("today-%s-%s", orderID, date)
}

// OverdueAlertID builds the deterministic identifier of an overdue alert.
func OverdueAlertID(orderID, date string) string {
	return fmt.Sprintf("delay-%s-%s", orderID, date)
}

// NewDueTodayAlert warns everyone that an order's delivery date is today.
// date is the scan day, used to key the alert.
func NewDueTodayAlert(orderID, orNumber, referenceDate, date string, createdAt time.Time) (*Notification, error) {
	n, err := New(
		DueTodayAlertID(orderID, date),
		"📅 ATENÇÃO: PRAZO HOJE",
		fmt.Sprintf("O.R #%s vence hoje. Prioridade máxima.", orNumber),
		SeverityWarning,
		TargetAll,
		"Geral",
		"",
		nil,
		createdAt,
	)
	if err != nil {
		return nil, err
	}
	n.referenceDate = referenceDate
	return n, nil
}

// NewOverdueAlert warns everyone that an order's delivery date has passed.
func NewOverdueAlert(orderID, orNumber, referenceDate, date string, createdAt time.Time) (*Notification, error) {
	n, err := New(
		OverdueAlertID(orderID, date),
		"🚨 URGENTE: ATRASADO",
		fmt.Sprintf("O.R #%s está atrasada!", orNumber),
		SeverityUrgent,
		TargetAll,
		"Geral",
		"",
		nil,
		createdAt,
	)
	if err != nil {
		return nil, err
	}
	n.referenceDate = referenceDate
	return n, nil
}

// NewManualAlert creates an operator-written alert. The title is uppercased
// for consistency with system notifications. referenceDate is optional.
func NewManualAlert(
	id, title, message string,
	severity Severity,
	targetUserID, senderName, referenceDate string,
	createdAt time.Time,
) (*Notification, error) {
	n, err := New(id, strings.ToUpper(title), message, severity, targetUserID, "Geral", "", nil, createdAt)
	if err != nil {
		return nil, err
	}
	n.senderName = senderName
	n.referenceDate = referenceDate
	return n, nil
}

// ID returns the notification identifier. Scan alerts use deterministic IDs;
// direct notifications use random UUIDs.
func (n *Notification) ID() string {
	return n.id
}

// Title returns the headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the body text.
func (n *Notification) Message() string {
	return n.message
}

// Severity returns the urgency of the notification.
func (n *Notification) Severity() Severity {
	return n.severity
}

// CreatedAt returns when the notification was emitted.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// TargetUserID returns the addressee: a member ID or TargetAll.
func (n *Notification) TargetUserID() string {
	return n.targetUserID
}

// TargetSector returns the sector the notification relates to.
func (n *Notification) TargetSector() string {
	return n.targetSector
}

// ActionLabel returns the label of the notification's action button, or
// empty when the notification is purely informational.
func (n *Notification) ActionLabel() string {
	return n.actionLabel
}

// SenderName returns who sent a manual alert, or empty.
func (n *Notification) SenderName() string {
	return n.senderName
}

// ReferenceDate returns the date the notice refers to, or empty.
func (n *Notification) ReferenceDate() string {
	return n.referenceDate
}

// Metadata returns the actionable payload, or nil.
func (n *Notification) Metadata() *Metadata {
	return n.metadata
}

// ReadBy returns the IDs of the members who dismissed the notification.
func (n *Notification) ReadBy() []string {
	readBy := make([]string, len(n.readBy))
	copy(readBy, n.readBy)
	return readBy
}

// IsReadBy reports whether the given member dismissed the notification.
func (n *Notification) IsReadBy(userID string) bool {
	for _, id := range n.readBy {
		if id == userID {
			return true
		}
	}
	return false
}

// IsTargetedTo reports whether the notification is addressed to the member,
// directly or via broadcast.
func (n *Notification) IsTargetedTo(userID string) bool {
	return n.targetUserID == TargetAll || n.targetUserID == userID
}

// IsVisibleTo reports whether the member should still see the notification:
// addressed to them and not yet dismissed.
func (n *Notification) IsVisibleTo(userID string) bool {
	return n.IsTargetedTo(userID) && !n.IsReadBy(userID)
}

// Validate ensures the Notification was created via its constructors.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// markReadBy records that the member dismissed the notification.
// Idempotent. Called by the Feed under its lock.
func (n *Notification) markReadBy(userID string) {
	if !n.IsReadBy(userID) {
		n.readBy = append(n.readBy, userID)
	}
}

// clone returns a copy safe to hand out of the Feed.
func (n *Notification) clone() *Notification {
	c := *n
	c.readBy = make([]string, len(n.readBy))
	copy(c.readBy, n.readBy)
	if n.metadata != nil {
		m := *n.metadata
		c.metadata = &m
	}
	return &c
}

// setID validates and sets the identifier.
// This is a private method used only during construction.
func (n *Notification) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	n.id = id
	return nil
}

// setTitle validates and sets the headline.
// This is a private method used only during construction.
func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

// setMessage validates and sets the body text.
// This is a private method used only during construction.
func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

// setSeverity validates and sets the urgency.
// This is a private method used only during construction.
func (n *Notification) setSeverity(severity Severity) error {
	if err := severity.Validate(); err != nil {
		return err
	}
	n.severity = severity
	return nil
}

// setTarget validates and sets the addressee and sector.
// This is a private method used only during construction.
func (n *Notification) setTarget(targetUserID, targetSector string) error {
	if targetUserID == "" {
		return errs.NewValueIsRequiredError("targetUserID")
	}
	n.targetUserID = targetUserID
	if targetSector == "" {
		targetSector = "Geral"
	}
	n.targetSector = targetSector
	return nil
}
