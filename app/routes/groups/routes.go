package groups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupGroupRoutes(app *fiber.App, st store.Store, billing *services.Billing) {
	api := app.Group("/api/groups", auth.Middleware(st))

	api.Get("/", ListGroups(st))
	api.Post("/", CreateGroup(st))
	api.Get("/finance", GroupFinance(billing))
	api.Get("/:id", GetGroup(st))
	api.Put("/:id", UpdateGroup(st))
	api.Delete("/:id", DeleteGroup(st))
	api.Get("/:id/students", GroupStudents(st))
}
