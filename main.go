package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/max25782/server/internal/handlers"
	"github.com/max25782/server/internal/middleware"
	"github.com/max25782/server/internal/models"
	"github.com/max25782/server/internal/repositories"
	"github.com/max25782/server/internal/services"
	"github.com/max25782/server/pkg/payment"
	"github.com/max25782/server/pkg/pdf"
	"github.com/max25782/server/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "shop.db")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("LOGO_PATH", "public/logo.png")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	stripeKey := viper.GetString("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_SECRET_KEY environment variable is not set")
	}

	// --- Database ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, order events disabled")
	}

	// --- Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Collaborators ---
	paymentProvider := payment.NewStripeProvider(stripeKey)
	renderer := pdf.NewRenderer(viper.GetString("LOGO_PATH"))

	// --- Services ---
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo)
	userService := services.NewUserService(userRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, paymentProvider, mqClient)
	statsService := services.NewStatsService(orderRepo)
	invoiceService := services.NewInvoiceService(orderRepo, renderer)
	adminService := services.NewAdminService(userRepo, orderRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService, invoiceService)
	adminHandler := handlers.NewAdminHandler(adminService, statsService, invoiceService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	auth := middleware.AuthRequired(authService)
	admin := middleware.AdminRequired()

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api, auth, admin)
	productHandler.RegisterRoutes(api, auth, admin)
	userHandler.RegisterRoutes(api, auth)
	orderHandler.RegisterRoutes(api, auth, admin)
	adminHandler.RegisterRoutes(api, auth, admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				// Downstream processing (fulfilment, mail) hooks in here.
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

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

// openDatabase opens the configured driver with error translation enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}
