package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupPaymentRoutes(app *fiber.App, st store.Store, billing *services.Billing) {
	api := app.Group("/api/payments", auth.Middleware(st))

	api.Get("/", ListPayments(billing))
	api.Post("/", RecordPayment(billing))
	api.Get("/summary", Summary(billing))
}
