package queries_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/adapters/out/postgres/auditlogrepo"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/audit"
	"printflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAuditLogQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAuditLogQueryHandler
}

func (suite *GetAuditLogQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&auditlogrepo.EntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAuditLogQueryHandler(db)
}

func (suite *GetAuditLogQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAuditLogQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE audit_logs").Error
	suite.Require().NoError(err)
}

func (suite *GetAuditLogQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAuditLogQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAuditLogQueryHandlerTestSuite) TestHandle_WithEntries_ReturnsNewestFirst() {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.saveEntry("boss", "Chefe", base, audit.ActionDeleteOrder, "O.R 1040 (item 1) - ACME Ltda")
	suite.saveEntry("boss", "Chefe", base.Add(2*time.Hour), audit.ActionDeleteOrder, "O.R 1042 (item 1) - ACME Ltda")
	suite.saveEntry("admin", "Admin", base.Add(time.Hour), audit.ActionDeleteUser, "Pedro (pedro@shop.com)")

	query := queries.NewGetAuditLogQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("O.R 1042 (item 1) - ACME Ltda", result[0].TargetInfo)
	suite.Equal("DELETE_ORDER", result[0].ActionType)
	suite.Equal("boss", result[0].UserID)
	suite.Equal("Chefe", result[0].UserName)

	suite.Equal("Pedro (pedro@shop.com)", result[1].TargetInfo)
	suite.Equal("DELETE_USER", result[1].ActionType)

	suite.Equal("O.R 1040 (item 1) - ACME Ltda", result[2].TargetInfo)
	suite.True(result[0].Timestamp.After(result[1].Timestamp))
	suite.True(result[1].Timestamp.After(result[2].Timestamp))
}

func (suite *GetAuditLogQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAuditLogQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAuditLogQuery constructor")
}

func (suite *GetAuditLogQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := range 50 {
		suite.saveEntry("boss", "Chefe", base.Add(time.Duration(i)*time.Minute),
			audit.ActionDeleteOrder, "O.R 1042 (item 1) - ACME Ltda")
	}

	query := queries.NewGetAuditLogQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetAuditLogQueryHandlerTestSuite) saveEntry(
	userID, userName string,
	timestamp time.Time,
	actionType audit.ActionType,
	targetInfo string,
) {
	entry, err := audit.NewEntry(kernel.NewUUID().String(), userID, userName, timestamp, actionType, targetInfo)
	suite.Require().NoError(err)

	repo := auditlogrepo.NewGormAuditLogRepository(suite.db)
	err = repo.Add(context.Background(), entry)
	suite.Require().NoError(err)
}

func TestGetAuditLogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAuditLogQueryHandlerTestSuite))
}
