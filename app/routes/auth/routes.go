package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupAuthRoutes(app *fiber.App, st store.Store) {
	api := app.Group("/api/auth")

	api.Post("/login", Login(st))
	api.Post("/logout", Logout())
	api.Get("/me", Middleware(st), Me())
	api.Put("/password", Middleware(st), ChangePassword(st))
}
