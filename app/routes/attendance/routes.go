package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupAttendanceRoutes(app *fiber.App, st store.Store, svc *services.Attendance, checkin *services.CheckIn) {
	api := app.Group("/api/attendance", auth.Middleware(st))
	api.Get("/group/:groupId/date/:date", GetPresence(svc))
	api.Post("/toggle", ToggleStatus(svc))

	ci := app.Group("/api/checkin", auth.Middleware(st))
	ci.Get("/lookup", Lookup(checkin))
	ci.Post("/confirm", Confirm(checkin))
}
