package students

import (
	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

type CreateStudentRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Phone   string  `json:"phone" validate:"required,min=5,max=20"`
	GroupID *string `json:"group_id"`
}

type UpdateStudentRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Phone   string  `json:"phone" validate:"required,min=5,max=20"`
	GroupID *string `json:"group_id"`
}

func ListStudents(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := store.StudentFilters{
			Search:  c.Query("search"),
			GroupID: c.Query("group_id"),
		}
		students, err := st.ListStudents(filters)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if students == nil {
			students = []*models.Student{}
		}
		return c.JSON(students)
	}
}

// SearchStudents matches the query against student names and phone numbers.
func SearchStudents(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Query parameter q is required"})
		}
		students, err := st.ListStudents(store.StudentFilters{Search: query})
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if students == nil {
			students = []*models.Student{}
		}
		return c.JSON(students)
	}
}

func GetStudent(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := st.GetStudent(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if student.GroupID != nil {
			if group, err := st.GetGroup(*student.GroupID); err == nil {
				student.Group = group
			}
		}
		return c.JSON(student)
	}
}

func CreateStudent(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateStudentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if req.GroupID != nil {
			if _, err := st.GetGroup(*req.GroupID); err != nil {
				return utils.ErrorResponse(c, err)
			}
		}

		student := &models.Student{
			Name:    req.Name,
			Phone:   req.Phone,
			GroupID: req.GroupID,
			QRToken: NewQRToken(),
		}
		if err := st.CreateStudent(student); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.Status(201).JSON(student)
	}
}

func UpdateStudent(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := st.GetStudent(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}

		var req UpdateStudentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if req.GroupID != nil {
			if _, err := st.GetGroup(*req.GroupID); err != nil {
				return utils.ErrorResponse(c, err)
			}
		}

		student.Name = req.Name
		student.Phone = req.Phone
		student.GroupID = req.GroupID
		if err := st.UpdateStudent(student); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(student)
	}
}

func DeleteStudent(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteStudent(c.Params("id")); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(fiber.Map{"message": "Student deleted"})
	}
}

// StudentQR renders the student's check-in token as a QR code PNG.
func StudentQR(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := st.GetStudent(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		png, err := qrcode.Encode(student.QRToken, qrcode.Medium, 256)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate QR code"})
		}
		c.Set("Content-Type", "image/png")
		return c.Send(png)
	}
}
