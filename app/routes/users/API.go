package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,min=5,max=20"`
	Role     string `json:"role" validate:"required,oneof=admin manager"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,min=5,max=20"`
	Role     string `json:"role" validate:"required,oneof=admin manager"`
	IsActive *bool  `json:"is_active"`
}

func ListUsers(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := st.ListUsers()
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if users == nil {
			users = []*models.User{}
		}
		return c.JSON(users)
	}
}

func GetUser(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := st.GetUser(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(user)
	}
}

func CreateUser(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user := &models.User{
			Username: req.Username,
			Name:     req.Name,
			Phone:    req.Phone,
			Role:     models.Role(req.Role),
			Password: hash,
			IsActive: true,
		}
		if err := st.CreateUser(user); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.Status(201).JSON(user)
	}
}

func UpdateUser(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := st.GetUser(c.Params("id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}

		var req UpdateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		user.Name = req.Name
		user.Phone = req.Phone
		user.Role = models.Role(req.Role)
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if err := st.UpdateUser(user); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(user)
	}
}

func DeleteUser(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, _ := c.Locals("user").(*models.User)
		if current != nil && current.ID == c.Params("id") {
			return c.Status(422).JSON(fiber.Map{"error": "Cannot delete your own account"})
		}
		if err := st.DeleteUser(c.Params("id")); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(fiber.Map{"message": "User deleted"})
	}
}
