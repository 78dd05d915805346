package exams

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func SetupExamRoutes(app *fiber.App, st store.Store, grading *services.Grading) {
	api := app.Group("/api/exams", auth.Middleware(st))

	api.Get("/", ListExams(st))
	api.Post("/", CreateExam(st))
	api.Get("/:id", GetExam(st))
	api.Put("/:id", UpdateExam(st))
	api.Delete("/:id", DeleteExam(st))
	api.Put("/:id/scores/:studentId", SetScore(grading))
	api.Get("/:id/stats", Stats(grading))
}
