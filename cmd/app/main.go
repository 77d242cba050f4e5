package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"workorders/cmd"
	"workorders/internal/adapters/out/postgres/bidrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/adapters/out/postgres/payoutrepo"
	"workorders/internal/adapters/out/postgres/tierrepo"
	"workorders/internal/adapters/out/postgres/workerrepo"
	"workorders/internal/core/domain/model/worker"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	bus := app.NotificationBus()
	bus.Start()
	defer bus.Stop()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		PaymentAPIURL:          goDotEnvVariable("PAYMENT_API_URL"),
		PaymentAPIKey:          goDotEnvVariable("PAYMENT_API_KEY"),
		ReconciliationSchedule: goDotEnvVariable("RECONCILIATION_SCHEDULE"),
		PayoutSchedule:         goDotEnvVariable("PAYOUT_SCHEDULE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&bidrepo.BidDTO{},
		&workerrepo.WorkerDTO{},
		&payoutrepo.PayoutDTO{},
		&tierrepo.TierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	schedule, err := worker.DefaultSchedule()
	if err != nil {
		log.Fatalf("Failed to build default tier schedule: %v", err)
	}
	if err = tierrepo.NewGormTierRepository(gormDB).Seed(context.Background(), schedule); err != nil {
		log.Fatalf("Failed to seed tier schedule: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
