package authController

import (
	"craftopia/middleware"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs a session token for the supplied identity. Registration is
// handled separately; this endpoint only encodes the claims it is given.
func IssueToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClaims").(*struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email, reqData.Name)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued!", fiber.Map{
		"token": token,
	})
}
