package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupStudentRoutes(app *fiber.App, st store.Store) {
	api := app.Group("/api/students", auth.Middleware(st))

	api.Get("/", ListStudents(st))
	api.Post("/", CreateStudent(st))
	api.Get("/search", SearchStudents(st))
	api.Get("/:id", GetStudent(st))
	api.Put("/:id", UpdateStudent(st))
	api.Delete("/:id", DeleteStudent(st))
	api.Get("/:id/qr", StudentQR(st))
}
