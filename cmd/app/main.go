package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"medmarket/cmd"
	"medmarket/internal/adapters/out/postgres/buyerrepo"
	"medmarket/internal/adapters/out/postgres/orderrepo"
	"medmarket/internal/adapters/out/postgres/sellerrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:          envOr("HTTP_PORT", "8080"),
		DBHost:            mustEnv("DB_HOST"),
		DBPort:            mustEnv("DB_PORT"),
		DBUser:            mustEnv("DB_USER"),
		DBPassword:        mustEnv("DB_PASSWORD"),
		DBName:            mustEnv("DB_NAME"),
		DBSslMode:         envOr("DB_SSLMODE", "disable"),
		JwtSecret:         mustEnv("JWT_SECRET"),
		JwtTTL:            durationEnv("JWT_TTL", cmd.DefaultJwtTTL),
		AssignRadiusM:     floatEnv("ASSIGN_RADIUS_M", cmd.DefaultAssignRadiusM),
		SellerListRadiusM: floatEnv("SELLER_LIST_RADIUS_M", cmd.DefaultSellerListRadiusM),
		MetricsCronSpec:   envOr("METRICS_CRON_SPEC", cmd.DefaultMetricsCronSpec),
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&buyerrepo.BuyerDTO{},
		&sellerrepo.SellerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateServer()
	server.RegisterRoutes(e, app.AccessGate())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
