package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupUserRoutes(app *fiber.App, st store.Store) {
	api := app.Group("/api/users", auth.Middleware(st), auth.RequireAdmin())

	api.Get("/", ListUsers(st))
	api.Post("/", CreateUser(st))
	api.Get("/:id", GetUser(st))
	api.Put("/:id", UpdateUser(st))
	api.Delete("/:id", DeleteUser(st))
}
