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

	"artistconnect/internal/handlers"
	"artistconnect/internal/middleware"
	"artistconnect/internal/models"
	"artistconnect/internal/repositories"
	"artistconnect/internal/services"
	"artistconnect/internal/views"
	"artistconnect/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("SESSION_SECRET", "dev-secret")
	viper.SetDefault("DATABASE_PATH", "artistconnect.db")
	viper.SetDefault("DATABASE_URL", "") // optional postgres DSN
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("STATIC_DIR", "./static")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	sessionSecret := viper.GetString("SESSION_SECRET")

	// --- Database ---
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.ArtistProfile{},
		&models.OrganizerProfile{},
		&models.BookingRequest{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	// --- Optional RabbitMQ client for booking lifecycle events ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sessionSecret)
	profileService := services.NewProfileService(profileRepo, userRepo)
	bookingService := services.NewBookingService(bookingRepo, userRepo, mqClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		Views: views.NewEngine(),
	})

	// --- Middleware ---
	app.Use(logger.New())                      // Request logger
	app.Use(middleware.LoadActor(authService)) // Resolve the session actor on every request

	// --- Routes ---
	app.Static("/static", viper.GetString("STATIC_DIR")) // Profile images under static/uploads
	authHandler.RegisterRoutes(app)
	profileHandler.RegisterRoutes(app)
	bookingHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Only for local observation of booking events; side processes would
	// normally run their own consumer.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for booking events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Booking Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeBookingEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
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

// openDatabase connects to postgres when DATABASE_URL is set and falls back
// to the local sqlite file otherwise. The schema is migrated by the caller.
func openDatabase() (*gorm.DB, error) {
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(viper.GetString("DATABASE_PATH")), &gorm.Config{})
}
