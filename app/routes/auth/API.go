package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

func Login(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		user, err := st.GetUserByUsername(strings.TrimSpace(req.Username))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid username or password"})
			}
			return utils.ErrorResponse(c, err)
		}
		if !user.IsActive || !CheckPasswordHash(req.Password, user.Password) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid username or password"})
		}

		token, err := GenerateJWT(user)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}

		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    token,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"user":    user,
		})
	}
}

func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
		return c.JSON(fiber.Map{"message": "Logged out"})
	}
}

func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}
		return c.JSON(user)
	}
}

func ChangePassword(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}

		var req ChangePasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if !CheckPasswordHash(req.CurrentPassword, user.Password) {
			return c.Status(401).JSON(fiber.Map{"error": "Current password is incorrect"})
		}

		hash, err := HashPassword(req.NewPassword)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user.Password = hash
		if err := st.UpdateUser(user); err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(fiber.Map{"message": "Password updated"})
	}
}

// Middleware authenticates requests via the jwt_token cookie or an
// Authorization: Bearer header and loads the current user into c.Locals.
func Middleware(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("jwt_token")
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
		}

		claims, err := ValidateJWT(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := st.GetUser(claims.UserID)
		if err != nil || !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireAdmin allows only admin users past this point. Must run after Middleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok || user.Role != models.RoleAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Admin access required"})
		}
		return c.Next()
	}
}
