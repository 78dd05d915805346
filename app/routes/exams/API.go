package exams

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

type ExamRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	GroupID  string  `json:"group_id" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	MaxScore float64 `json:"max_score" validate:"gt=0"`
}

type ScoreRequest struct {
	Score float64 `json:"score"`
}

func ListExams(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exams, err := st.ListExams(c.Query("group_id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if exams == nil {
			exams = []*models.Exam{}
		}
		return c.JSON(exams)
	}
}

func GetExam(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exam, err := st.GetExam(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(exam)
	}
}

func CreateExam(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ExamRequest
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
		if _, err := st.GetGroup(req.GroupID); err != nil {
			return utils.ErrorResponse(c, err)
		}

		exam := &models.Exam{
			Name:     req.Name,
			GroupID:  req.GroupID,
			Date:     date,
			MaxScore: req.MaxScore,
		}
		if err := st.CreateExam(exam); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.Status(201).JSON(exam)
	}
}

func UpdateExam(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exam, err := st.GetExam(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}

		var req ExamRequest
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
		if _, err := st.GetGroup(req.GroupID); err != nil {
			return utils.ErrorResponse(c, err)
		}

		exam.Name = req.Name
		exam.GroupID = req.GroupID
		exam.Date = date
		exam.MaxScore = req.MaxScore
		if err := st.UpdateExam(exam); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(exam)
	}
}

func DeleteExam(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteExam(c.Params("id")); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(fiber.Map{"message": "Exam deleted"})
	}
}

// SetScore records a student's score, bounded to [0, max_score].
func SetScore(grading *services.Grading) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ScoreRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}

		exam, err := grading.SetScore(c.Params("id"), c.Params("studentId"), req.Score)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(exam)
	}
}

// Stats aggregates mean, max and min over the recorded scores.
func Stats(grading *services.Grading) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := grading.Stats(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(stats)
	}
}
