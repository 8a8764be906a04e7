package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"foodmarket/cmd"
	httpin "foodmarket/internal/adapters/in/http"
	"foodmarket/internal/adapters/out/postgres/orderrepo"
	"foodmarket/internal/adapters/out/postgres/riderrepo"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	feeConfig := buildFeeConfig(configs)
	orderMaxAge := parseDuration(configs.OrderMaxAge)

	app := cmd.NewCompositionRoot(feeConfig, gormDB)

	jobManager := startJobs(&app, orderMaxAge)
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
		BaseServiceFeeMinor:    goDotEnvVariable("BASE_SERVICE_FEE_MINOR"),
		PerItemServiceFeeMinor: goDotEnvVariable("PER_ITEM_SERVICE_FEE_MINOR"),
		ServiceFeeCapMinor:     goDotEnvVariable("SERVICE_FEE_CAP_MINOR"),
		DeliveryFeeMinor:       goDotEnvVariable("DELIVERY_FEE_MINOR"),
		VATRate:                goDotEnvVariable("VAT_RATE"),
		OrderMaxAge:            goDotEnvVariable("ORDER_MAX_AGE"),
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
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&riderrepo.RiderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func buildFeeConfig(configs cmd.Config) services.FeeConfig {
	vatRate, err := decimal.NewFromString(configs.VATRate)
	if err != nil {
		log.Fatalf("Invalid VAT_RATE: %v", err)
	}

	feeConfig, err := services.NewFeeConfig(
		parseMoney("BASE_SERVICE_FEE_MINOR", configs.BaseServiceFeeMinor),
		parseMoney("PER_ITEM_SERVICE_FEE_MINOR", configs.PerItemServiceFeeMinor),
		parseMoney("SERVICE_FEE_CAP_MINOR", configs.ServiceFeeCapMinor),
		parseMoney("DELIVERY_FEE_MINOR", configs.DeliveryFeeMinor),
		vatRate,
	)
	if err != nil {
		log.Fatalf("Invalid fee configuration: %v", err)
	}

	return feeConfig
}

func parseMoney(key, value string) kernel.Money {
	amount, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}

	money, err := kernel.NewMoney(amount)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}

	return money
}

func parseDuration(value string) time.Duration {
	maxAge, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid ORDER_MAX_AGE: %v", err)
	}
	return maxAge
}

func startJobs(app *cmd.CompositionRoot, orderMaxAge time.Duration) *jobs.JobManager {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateDispatchRiderCommandHandler(),
		app.CreateCancelStaleOrdersCommandHandler(),
		orderMaxAge,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCheckoutCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateCreateRiderCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAvailableRidersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
