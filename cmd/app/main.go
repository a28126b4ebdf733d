package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pos/cmd"
	httpin "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/postgres/bulkoprepo"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/templaterepo"
	"pos/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateProcessRecurringOrdersCommandHandler(),
		app.CreateMarkInstallmentsOverdueCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderNumberCounterDTO{},
		&templaterepo.TemplateDTO{},
		&bulkoprepo.OperationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:             app.CreateCreateOrderCommandHandler(),
		UpdateOrder:             app.CreateUpdateOrderCommandHandler(),
		ChangeOrderStatus:       app.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:             app.CreateDeleteOrderCommandHandler(),
		RecordPayment:           app.CreateRecordPaymentCommandHandler(),
		ApproveOrder:            app.CreateApproveOrderCommandHandler(),
		RejectOrder:             app.CreateRejectOrderCommandHandler(),
		CreateTemplate:          app.CreateCreateOrderTemplateCommandHandler(),
		DeleteTemplate:          app.CreateDeleteOrderTemplateCommandHandler(),
		CreateOrderFromTemplate: app.CreateCreateOrderFromTemplateCommandHandler(),
		ExecuteBulkOperation:    app.CreateExecuteBulkOperationCommandHandler(),

		GetOrder:           app.CreateGetOrderQueryHandler(),
		GetOrderByNumber:   app.CreateGetOrderByNumberQueryHandler(),
		ListOrders:         app.CreateListOrdersQueryHandler(),
		GetOrderMetrics:    app.CreateGetOrderMetricsQueryHandler(),
		GetOverdueOrders:   app.CreateGetOverdueOrdersQueryHandler(),
		GetOrdersDueToday:  app.CreateGetOrdersDueTodayQueryHandler(),
		GetPendingApproval: app.CreateGetPendingApprovalOrdersQueryHandler(),
		ListTemplates:      app.CreateListTemplatesQueryHandler(),
		GetBulkOperation:   app.CreateGetBulkOperationQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
