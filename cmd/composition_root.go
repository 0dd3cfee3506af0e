package cmd

import (
	"log/slog"
	"time"

	"printflow/internal/adapters/in/ws"
	"printflow/internal/adapters/out/postgres"
	"printflow/internal/adapters/out/postgres/staffrepo"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
	"printflow/internal/jobs"

	"gorm.io/gorm"
)

// systemClock implements ports.Clock on the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() string {
	return time.Now().UTC().Format(order.DateLayout)
}

// CompositionRoot wires every adapter and use case handler together.
// It owns the singletons: the workspace snapshot, the websocket hub and the
// unit of work factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	workspace  *workspace.Workspace
	hub        *ws.Hub
	clock      ports.Clock
	projector  services.BoardProjector
	scanner    services.DueDateScanner
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		workspace:  workspace.New(),
		hub:        ws.NewHub(logger),
		clock:      systemClock{},
		projector:  services.NewBoardProjector(),
		scanner:    services.NewDueDateScanner(),
		logger:     logger,
	}
}

// Workspace exposes the shared in-memory snapshot.
func (c *CompositionRoot) Workspace() *workspace.Workspace {
	return c.workspace
}

// Hub exposes the websocket hub for route registration.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// CreateSnapshotLoader builds the loader used at startup and by the refresh job.
func (c *CompositionRoot) CreateSnapshotLoader() *postgres.SnapshotLoader {
	uow := c.uowFactory.Create()
	return postgres.NewSnapshotLoader(uow.OrderRepository(), staffrepo.NewGormStaffRepository(c.gormDB))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.workspace, c.clock, c.hub)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.orderUoWFactory(), c.workspace, c.clock, c.hub)
}

func (c *CompositionRoot) CreateAssignUserCommandHandler() commands.AssignUserCommandHandler {
	return commands.NewAssignUserCommandHandler(c.orderUoWFactory(), c.workspace, c.clock, c.hub)
}

func (c *CompositionRoot) CreateSetNetworkPathsCommandHandler() commands.SetNetworkPathsCommandHandler {
	return commands.NewSetNetworkPathsCommandHandler(c.orderUoWFactory(), c.workspace, c.hub)
}

func (c *CompositionRoot) CreateSetArchivedCommandHandler() commands.SetArchivedCommandHandler {
	return commands.NewSetArchivedCommandHandler(c.orderUoWFactory(), c.workspace, c.clock, c.hub)
}

func (c *CompositionRoot) CreateDeleteOrdersCommandHandler() commands.DeleteOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrdersCommandHandler(f, c.workspace, c.clock, c.hub)
}

func (c *CompositionRoot) CreateCreateAlertCommandHandler() commands.CreateAlertCommandHandler {
	return commands.NewCreateAlertCommandHandler(c.workspace, c.clock, c.hub)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	return commands.NewRequestPasswordResetCommandHandler(c.workspace, c.clock, c.hub)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.workspace, c.hub)
}

func (c *CompositionRoot) CreateScanDueDatesCommandHandler() commands.ScanDueDatesCommandHandler {
	return commands.NewScanDueDatesCommandHandler(c.workspace, c.scanner, c.clock, c.hub)
}

func (c *CompositionRoot) CreateGetBoardQueryHandler() queries.GetBoardQueryHandler {
	return queries.NewGetBoardQueryHandler(c.workspace, c.projector)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.workspace, c.clock)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.workspace, c.clock)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.workspace)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.workspace)
}

func (c *CompositionRoot) CreateGetAuditLogQueryHandler() queries.GetAuditLogQueryHandler {
	return queries.NewGetAuditLogQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateScanDueDatesCommandHandler(),
		c.CreateSnapshotLoader(),
		c.workspace,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
