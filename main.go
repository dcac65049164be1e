package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/contact"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/dashboard"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/events"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/expenses"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/fees"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/results"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/students"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/teachers"
	"github.com/HussainIjaz209/OKS-sub001/app/services"
)

// errorHandler keeps every error response in the API's JSON envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load configuration and connect to the database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	synth := ledger.NewSynthesizer(config.AppConfig.MonthlyRentAmount)

	// Start background scheduler
	services.StartScheduler(config.GetDB(), synth)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Oakside Schools",
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	fees.SetupFeesRoutes(app)
	expenses.SetupExpensesRoutes(app, config.GetDB(), config.AppConfig.MonthlyRentAmount)
	events.SetupEventsRoutes(app)
	results.SetupResultsRoutes(app)
	contact.SetupContactRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Printf("Server starting on :%s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
