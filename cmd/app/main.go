package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/shipmentrepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)
	seedCourierTypes(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if configs.AssignJobEnabled {
		jobManager := jobs.NewJobManager(
			app.CreateAssignOrdersCommandHandler(),
			app.CreateGetAllCouriersQueryHandler(),
			logger,
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		AssignJobEnabled: goDotEnvVariable("ASSIGN_JOB_ENABLED") == "true",
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

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&courierrepo.CourierTypeDTO{},
		&courierrepo.RegionDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.CourierRegionDTO{},
		&courierrepo.CourierShiftDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderIntervalDTO{},
		&shipmentrepo.ShipmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedCourierTypes ensures the transport type reference data exists.
// Capacities are in kilograms.
func seedCourierTypes(db *gorm.DB) {
	types := []courierrepo.CourierTypeDTO{
		{Code: "foot", Capacity: decimal.NewFromInt(10)},
		{Code: "bike", Capacity: decimal.NewFromInt(15)},
		{Code: "car", Capacity: decimal.NewFromInt(50)},
	}
	for _, courierType := range types {
		err := db.Where(courierrepo.CourierTypeDTO{Code: courierType.Code}).
			FirstOrCreate(&courierType).Error
		if err != nil {
			log.Fatalf("Failed to seed courier types: %v", err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateCourier: app.CreateCreateCourierCommandHandler(),
			EditCourier:   app.CreateEditCourierCommandHandler(),
			CreateOrder:   app.CreateCreateOrderCommandHandler(),
			AssignOrders:  app.CreateAssignOrdersCommandHandler(),
			CompleteOrder: app.CreateCompleteOrderCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetAllCouriers:      app.CreateGetAllCouriersQueryHandler(),
			GetCourier:          app.CreateGetCourierQueryHandler(),
			GetOrder:            app.CreateGetOrderQueryHandler(),
			GetUnassignedOrders: app.CreateGetUnassignedOrdersQueryHandler(),
			CourierRating:       app.CreateCourierRatingQueryHandler(),
			CourierEarnings:     app.CreateCourierEarningsQueryHandler(),
		},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
