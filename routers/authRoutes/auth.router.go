package authRoutes

import (
	authController "craftopia/controllers/auth"
	authValidator "craftopia/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authValidator.IssueToken(), authController.IssueToken)
}
