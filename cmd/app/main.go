package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"freight/cmd"
	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/objectstorage"
	"freight/internal/adapters/out/postgres/customerrepo"
	"freight/internal/adapters/out/postgres/mediarepo"
	"freight/internal/adapters/out/postgres/notificationrepo"
	"freight/internal/adapters/out/postgres/parcelrepo"
	"freight/internal/adapters/out/postgres/rates"
	"freight/internal/adapters/out/postgres/refcode"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/supplyorderrepo"
	"freight/internal/adapters/out/postgres/warehouserepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	photoStorage, err := objectstorage.NewMinioPhotoStorage(context.Background(), objectstorage.Config{
		Endpoint:  configs.MinioEndpoint,
		AccessKey: configs.MinioAccessKey,
		SecretKey: configs.MinioSecretKey,
		Bucket:    configs.MinioBucket,
		UseSSL:    configs.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, photoStorage)

	jobManager := app.CreateJobManager(configs)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		MinioEndpoint:        goDotEnvVariable("MINIO_ENDPOINT"),
		MinioAccessKey:       goDotEnvVariable("MINIO_ACCESS_KEY"),
		MinioSecretKey:       goDotEnvVariable("MINIO_SECRET_KEY"),
		MinioBucket:          goDotEnvVariable("MINIO_BUCKET"),
		MinioUseSSL:          goDotEnvBool("MINIO_USE_SSL"),
		WhatsAppAPIURL:       goDotEnvVariable("WHATSAPP_API_URL"),
		WhatsAppPhoneID:      goDotEnvVariable("WHATSAPP_PHONE_NUMBER_ID"),
		WhatsAppAccessToken:  goDotEnvVariable("WHATSAPP_ACCESS_TOKEN"),
		TrackingAPIURL:       goDotEnvVariable("TRACKING_API_URL"),
		TrackingAPIKey:       goDotEnvVariable("TRACKING_API_KEY"),
		TrackingSyncSchedule: goDotEnvVariable("TRACKING_SYNC_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&warehouserepo.WarehouseDTO{},
		&customerrepo.CustomerDTO{},
		&supplyorderrepo.SupplyOrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ItemDTO{},
		&parcelrepo.OverrideDTO{},
		&mediarepo.MediaDTO{},
		&notificationrepo.CampaignDTO{},
		&notificationrepo.DeliveryLogDTO{},
		&refcode.CounterDTO{},
		&rates.PricingConfigDTO{},
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

	server := httpin.NewServer(app.CreateHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
