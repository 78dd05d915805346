package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/ahmed1mohammd/Attendee-system/app/config"
	"github.com/ahmed1mohammd/Attendee-system/app/database"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/attendance"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/dashboard"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/exams"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/groups"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/payments"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/students"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/users"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// errorHandler keeps unhandled errors JSON-shaped for API clients.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	var st store.Store
	switch cfg.StoreDriver {
	case "memory":
		log.Println("Using in-memory store, data will not survive restarts")
		st = store.NewMemory()
	default:
		db, err := config.OpenDB(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := database.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		st = database.New(db)
	}

	attendanceSvc := services.NewAttendance(st)
	checkinSvc := services.NewCheckIn(st)
	billingSvc := services.NewBilling(st)
	gradingSvc := services.NewGrading(st)

	// Start background scheduler
	services.StartScheduler(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app, st)
	dashboard.SetupDashboardRoutes(app, st, billingSvc)
	students.SetupStudentRoutes(app, st)
	groups.SetupGroupRoutes(app, st, billingSvc)
	attendance.SetupAttendanceRoutes(app, st, attendanceSvc, checkinSvc)
	payments.SetupPaymentRoutes(app, st, billingSvc)
	exams.SetupExamRoutes(app, st, gradingSvc)
	users.SetupUserRoutes(app, st)

	log.Printf("Server starting on port %s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
