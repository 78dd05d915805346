package groups

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

type GroupRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	MeetingDays  []string `json:"meeting_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	MeetingTime  string   `json:"meeting_time" validate:"required"`
	SessionPrice float64  `json:"session_price" validate:"gte=0"`
}

func ListGroups(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := st.ListGroups()
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if groups == nil {
			groups = []*models.Group{}
		}
		return c.JSON(groups)
	}
}

func GetGroup(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		group, err := st.GetGroup(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(group)
	}
}

func CreateGroup(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req GroupRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		group := &models.Group{
			Name:         req.Name,
			MeetingDays:  req.MeetingDays,
			MeetingTime:  req.MeetingTime,
			SessionPrice: req.SessionPrice,
		}
		if err := st.CreateGroup(group); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.Status(201).JSON(group)
	}
}

func UpdateGroup(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		group, err := st.GetGroup(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}

		var req GroupRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		group.Name = req.Name
		group.MeetingDays = req.MeetingDays
		group.MeetingTime = req.MeetingTime
		group.SessionPrice = req.SessionPrice
		if err := st.UpdateGroup(group); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(group)
	}
}

// DeleteGroup refuses to delete a group that still has students assigned.
func DeleteGroup(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteGroup(c.Params("id")); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.Status(409).JSON(fiber.Map{"error": "Group still has students assigned"})
			}
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(fiber.Map{"message": "Group deleted"})
	}
}

func GroupStudents(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := st.GetGroup(id); err != nil {
			return utils.ErrorResponse(c, err)
		}
		students, err := st.ListStudents(store.StudentFilters{GroupID: id})
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if students == nil {
			students = []*models.Student{}
		}
		return c.JSON(students)
	}
}

// GroupFinance reports the all-time collected total and payment count per group.
func GroupFinance(billing *services.Billing) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries, err := billing.GroupSummaries()
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(summaries)
	}
}
