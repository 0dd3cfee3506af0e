package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/audit"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"
	"printflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Add(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditLogRepository) GetAll(_ context.Context) ([]audit.Entry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// fixedClock pins command handlers to testNow.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) Today() string  { return c.now.Format(order.DateLayout) }

// recordingPublisher captures real-time fan-out without a transport.
type recordingPublisher struct {
	toasts  []ports.Toast
	topics  []string
	toastTo []string
}

func (p *recordingPublisher) PublishToast(_ context.Context, userID string, toast ports.Toast) {
	p.toastTo = append(p.toastTo, userID)
	p.toasts = append(p.toasts, toast)
}

func (p *recordingPublisher) PublishRefresh(_ context.Context, topic string) {
	p.topics = append(p.topics, topic)
}

func (p *recordingPublisher) refreshed(topic string) bool {
	for _, t := range p.topics {
		if t == topic {
			return true
		}
	}
	return false
}

// newTestWorkspace seeds a workspace with a leader (boss), an operator (ana)
// and an admin (zara).
func newTestWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	boss, err := staff.NewMember("boss", "Chefe", "chefe@shop.com", staff.RoleOperador, "impressao", "Líder", true)
	require.NoError(t, err)
	ana, err := staff.NewMember("ana", "Ana", "Ana@Shop.com", staff.RoleOperador, "impressao", "", false)
	require.NoError(t, err)
	zara, err := staff.NewMember("zara", "Zara", "zara@shop.com", staff.RoleAdmin, "Geral", "", false)
	require.NoError(t, err)

	ws := workspace.New()
	ws.Refresh(nil, []staff.Member{boss, ana, zara})
	return ws
}

func newStoredOrder(t *testing.T, ws *workspace.Workspace, or string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), or, "1", "ACME Ltda", "Paulo", "Banner", "2025-03-20",
		order.DefaultPriority(), "boss", "Chefe", testNow)
	require.NoError(t, err)
	ws.Put(o)
	return o
}

// kernelAssignmentNotification builds the task notification an assignment
// would have produced, for pre-seeding the feed.
func kernelAssignmentNotification(o *order.Order, userID string) (*notification.Notification, error) {
	return notification.NewAssignmentNotification(
		kernel.NewUUID().String(), o.ID().String(), o.OR(), "Chefe", userID, "Impressão Digital", testNow,
	)
}

// expectOrderUpdate wires the usual Begin/Update/Commit/Rollback sequence.
func expectOrderUpdate(uow *MockOrderUoW, repo *MockOrderRepository) {
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
}
