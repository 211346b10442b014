package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"ridehail/cmd"
	ridehailhttp "ridehail/internal/adapters/in/http"
	"ridehail/internal/adapters/out/postgres/reviewrepo"
	"ridehail/internal/adapters/out/postgres/riderepo"
	"ridehail/internal/adapters/out/postgres/userrepo"
	"ridehail/internal/adapters/out/queue"
	"ridehail/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDatabase(configs)

	queueConn, err := queue.Connect(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer queueConn.Close()

	publisher := queue.NewRideEventPublisher(queueConn.Channel(), logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleRidesCommandHandler(),
		staleRideMaxAge(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:     goDotEnvVariable("RABBITMQ_URL"),
		StaleRideMaxAge: goDotEnvVariable("STALE_RIDE_MAX_AGE"),
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

func connectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&riderepo.RideDTO{},
		&userrepo.DriverDTO{},
		&userrepo.DriverCompletedRideDTO{},
		&userrepo.PassengerDTO{},
		&userrepo.PassengerRideDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func staleRideMaxAge(configs cmd.Config) time.Duration {
	maxAge, err := time.ParseDuration(configs.StaleRideMaxAge)
	if err != nil {
		log.Fatalf("Error parsing STALE_RIDE_MAX_AGE: %v", err)
	}
	return maxAge
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := ridehailhttp.NewServer(ridehailhttp.Handlers{
		CreatePassenger:          app.CreateCreatePassengerCommandHandler(),
		CreateDriver:             app.CreateCreateDriverCommandHandler(),
		CreateRide:               app.CreateCreateRideCommandHandler(),
		AcceptRide:               app.CreateAcceptRideCommandHandler(),
		RejectRide:               app.CreateRejectRideCommandHandler(),
		MarkDriverArriving:       app.CreateMarkDriverArrivingCommandHandler(),
		StartRide:                app.CreateStartRideCommandHandler(),
		CompleteRide:             app.CreateCompleteRideCommandHandler(),
		CancelRide:               app.CreateCancelRideCommandHandler(),
		UpdateDriverAvailability: app.CreateUpdateDriverAvailabilityCommandHandler(),
		CreateReview:             app.CreateCreateReviewCommandHandler(),
		GetAvailableDrivers:      app.CreateGetAvailableDriversQueryHandler(),
		GetAvailableRides:        app.CreateGetAvailableRidesQueryHandler(),
		GetUserByID:              app.CreateGetUserByIDQueryHandler(),
		GetRideByID:              app.CreateGetRideByIDQueryHandler(),
		GetPassengerRides:        app.CreateGetPassengerRidesQueryHandler(),
		GetDriverReviews:         app.CreateGetDriverReviewsQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
