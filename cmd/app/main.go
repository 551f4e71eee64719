package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/reportrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/adapters/out/postgres/triprepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	mustPrepareSchema(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	monitorJob := jobs.NewFleetMonitorJob(
		root.CreateGetFreeDriversQueryHandler(),
		root.CreateGetFreeVehiclesQueryHandler(),
		logger,
	)
	if err := monitorJob.Start(); err != nil {
		log.Fatalf("Failed to start fleet monitor job: %v", err)
	}
	defer monitorJob.Stop()

	startWebServer(root, configs.HTTPPort)
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustPrepareSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&routerepo.RouteDTO{},
		&triprepo.TripDTO{},
		&triprepo.TripEventDTO{},
		&reportrepo.TripReportDTO{},
		&reportrepo.TripReportEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	if err = seedFleet(gormDB); err != nil {
		log.Fatalf("Failed to seed fleet data: %v", err)
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		root.CreatePlanTripCommandHandler(),
		root.CreateProcessEventCommandHandler(),
		root.CreateGetTripReportQueryHandler(),
		root.CreateGetFreeDriversQueryHandler(),
		root.CreateGetFreeVehiclesQueryHandler(),
		root.CreateGetRoutesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
