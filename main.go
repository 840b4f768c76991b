package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mountainstore/internal/handlers"
	"mountainstore/internal/middleware"
	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
	"mountainstore/internal/services"
	"mountainstore/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Database ---
	// PostgreSQL when a DSN is configured, a local SQLite file otherwise.
	var dialector gorm.Dialector
	if databaseDSN != "" {
		dialector = postgres.Open(databaseDSN)
	} else {
		dialector = sqlite.Open("mountainstore.db")
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Admin{},
		&models.Order{},
		&models.DeliveryAddress{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, order event publishing disabled")
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	adminRepo := repositories.NewGORMAdminRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	addressRepo := repositories.NewGORMDeliveryAddressRepository(db)

	// --- Services ---
	authService := services.NewAuthService(adminRepo)
	catalogService := services.NewCatalogService(categoryRepo, productRepo)
	deliveryService := services.NewDeliveryService(addressRepo)
	orderService := services.NewOrderService(orderRepo, deliveryService, mqClient)
	bootstrapService := services.NewBootstrapService(categoryRepo, addressRepo, authService)

	// Startup bootstrap: only the default admin. The full seed (categories,
	// zones) stays behind the explicit init-data endpoint.
	if err := authService.BootstrapDefaultAdmin(); err != nil {
		log.Fatalf("Failed to bootstrap default admin: %v", err)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)
	bootstrapHandler := handlers.NewBootstrapHandler(bootstrapService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Mountain Convenience Store API",
		})
	})

	adminOnly := middleware.AdminRequired(authService)

	authHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api, adminOnly)
	orderHandler.RegisterRoutes(api, adminOnly)
	deliveryHandler.RegisterRoutes(api, adminOnly)
	bootstrapHandler.RegisterRoutes(api)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
