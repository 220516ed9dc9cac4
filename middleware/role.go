package middleware

import (
	"craftopia/repository"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the caller's stored role.
// Runs after JWTMiddleware; the store is consulted only for authenticated
// callers.
func RequireRole(users repository.UserRepository, requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized Access!",
				"data":    nil,
			})
		}

		user, err := users.FindByEmail(email)
		if err != nil || user.Role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "Forbidden access",
				"data":    nil,
			})
		}

		return c.Next()
	}
}
