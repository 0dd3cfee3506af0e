package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"printflow/cmd"
	httpin "printflow/internal/adapters/in/http"
	"printflow/internal/adapters/out/postgres/auditlogrepo"
	"printflow/internal/adapters/out/postgres/orderrepo"
	"printflow/internal/adapters/out/postgres/staffrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	// Prime the workspace before serving traffic.
	loader := app.CreateSnapshotLoader()
	orders, members, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load initial snapshot: %v", err)
	}
	app.Workspace().Refresh(orders, members)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&staffrepo.MemberDTO{},
		&auditlogrepo.EntryDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/ws", app.Hub().Handle)

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:          app.CreateCreateOrderCommandHandler(),
		AdvanceStatus:        app.CreateAdvanceStatusCommandHandler(),
		AssignUser:           app.CreateAssignUserCommandHandler(),
		SetNetworkPaths:      app.CreateSetNetworkPathsCommandHandler(),
		SetArchived:          app.CreateSetArchivedCommandHandler(),
		DeleteOrders:         app.CreateDeleteOrdersCommandHandler(),
		CreateAlert:          app.CreateCreateAlertCommandHandler(),
		RequestPasswordReset: app.CreateRequestPasswordResetCommandHandler(),
		MarkNotificationRead: app.CreateMarkNotificationReadCommandHandler(),
		GetBoard:             app.CreateGetBoardQueryHandler(),
		GetOrders:            app.CreateGetOrdersQueryHandler(),
		GetDashboardStats:    app.CreateGetDashboardStatsQueryHandler(),
		GetNotifications:     app.CreateGetNotificationsQueryHandler(),
		GetUsers:             app.CreateGetUsersQueryHandler(),
		GetAuditLog:          app.CreateGetAuditLogQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
