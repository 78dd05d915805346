package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// ErrorResponse maps engine errors to HTTP responses.
func ErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, services.ErrAlreadyRecorded):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		return c.Status(409).JSON(fiber.Map{"error": "Conflict with an existing record"})
	case errors.Is(err, services.ErrNoGroup),
		errors.Is(err, services.ErrScoreOutOfRange),
		errors.Is(err, services.ErrInvalidAmount):
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNoScores):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrUnknownPeriod):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("Unhandled error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
