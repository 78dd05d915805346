package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

type ToggleRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	GroupID   string `json:"group_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
}

type ConfirmRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

// GetPresence returns the present/absent partition of a group for one date.
func GetPresence(svc *services.Attendance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := time.Parse(models.DateLayout, c.Params("date"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}

		sheet, err := svc.ResolvePresence(c.Params("groupId"), date)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(sheet)
	}
}

// ToggleStatus flips a student's presence for a date without billing.
func ToggleStatus(svc *services.Attendance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ToggleRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		date, err := time.Parse(models.DateLayout, req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}

		record, err := svc.ToggleStatus(req.StudentID, req.GroupID, date)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(record)
	}
}

// Lookup resolves a raw check-in query (phone, id or QR token) to a student.
func Lookup(checkin *services.CheckIn) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Query parameter q is required"})
		}

		student, err := checkin.LookupStudent(query)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(student)
	}
}

// Confirm marks the student present today and bills one session.
func Confirm(checkin *services.CheckIn) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ConfirmRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		record, txn, err := checkin.ConfirmAttendance(req.StudentID)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.Status(201).JSON(fiber.Map{
			"attendance":  record,
			"transaction": txn,
		})
	}
}
