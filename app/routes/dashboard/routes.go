package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupDashboardRoutes(app *fiber.App, st store.Store, billing *services.Billing) {
	api := app.Group("/api/dashboard", auth.Middleware(st))

	api.Get("/stats", Stats(st, billing))
}
