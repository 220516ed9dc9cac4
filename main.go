package main

import (
	"log"

	"craftopia/config"
	classController "craftopia/controllers/class"
	paymentController "craftopia/controllers/payment"
	selectionController "craftopia/controllers/selection"
	userController "craftopia/controllers/user"
	"craftopia/database"
	"craftopia/gateway"
	"craftopia/repository"
	"craftopia/routers/authRoutes"
	"craftopia/routers/classRoutes"
	"craftopia/routers/paymentRoutes"
	"craftopia/routers/selectionRoutes"
	"craftopia/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	// Repositories are constructed once and handed to the controllers; no
	// package-level store handles.
	users := repository.NewUserRepository(db)
	classes := repository.NewClassRepository(db)
	selections := repository.NewSelectionRepository(db)
	payments := repository.NewPaymentRepository(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Craftopia server is running")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app, userController.NewUserController(users), users)
	classRoutes.SetupClassRoutes(app, classController.NewClassController(classes), users)
	selectionRoutes.SetupSelectionRoutes(app, selectionController.NewSelectionController(selections))
	paymentRoutes.SetupPaymentRoutes(app, paymentController.NewPaymentController(
		payments, selections, classes, gateway.NewStripe(config.AppConfig.StripeSecretKey),
	))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
