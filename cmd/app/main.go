package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"shop/cmd"
	shop_http "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres/factrepo"
	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db)

	jobManager := startJobs(&app, configs)
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
		AbandonedCartThreshold: goDotEnvVariable("ABANDONED_CART_THRESHOLD"),
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.CartItemDTO{},
		&factrepo.FactDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	threshold, err := time.ParseDuration(configs.AbandonedCartThreshold)
	if err != nil {
		log.Fatalf("Invalid ABANDONED_CART_THRESHOLD: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetAbandonedCartOrdersQueryHandler(),
		app.CreateNotifyAbandonedCartCommandHandler(),
		threshold,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := shop_http.NewServer(shop_http.ServerHandlers{
		CreateItem:            app.CreateCreateItemCommandHandler(),
		DeleteItem:            app.CreateDeleteItemCommandHandler(),
		RenameItem:            app.CreateRenameItemCommandHandler(),
		ChangeItemDescription: app.CreateChangeItemDescriptionCommandHandler(),
		ChangeItemPrice:       app.CreateChangeItemPriceCommandHandler(),
		ChangeItemStock:       app.CreateChangeItemStockCommandHandler(),
		CreateOrder:           app.CreateCreateOrderCommandHandler(),
		DeleteOrder:           app.CreateDeleteOrderCommandHandler(),
		AddItemToCart:         app.CreateAddItemToCartCommandHandler(),
		RemoveItemFromCart:    app.CreateRemoveItemFromCartCommandHandler(),
		SetCartQuantity:       app.CreateSetCartQuantityCommandHandler(),
		ChangeOrderStatus:     app.CreateChangeOrderStatusCommandHandler(),
		AssignDeliverySlot:    app.CreateAssignDeliverySlotCommandHandler(),
		GetItems:              app.CreateGetItemsQueryHandler(),
		GetUncompletedOrders:  app.CreateGetUncompletedOrdersQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
